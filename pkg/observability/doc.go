/*
Package observability exposes simulator activity as Prometheus metrics.

Metrics are collected through domain.LifecycleHooks, so the core evaluator stays
free of any metrics dependency:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	sim, err := automata.New(ctx, loader, automata.WithLifecycleHooks(metrics.Hooks()))
*/
package observability
