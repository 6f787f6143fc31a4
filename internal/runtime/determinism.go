package runtime

import "github.com/aretw0/automata/pkg/domain"

// CheckDeterminism inspects every key of the transition relation and reports
// the keys that map to more than one destination.
func CheckDeterminism(a *domain.Automaton) domain.DeterminismReport {
	report := domain.DeterminismReport{Deterministic: true}
	for _, key := range a.Keys() {
		dests := a.Destinations(key.State, key.Symbol)
		if len(dests) > 1 {
			report.Deterministic = false
			report.Ambiguities = append(report.Ambiguities, domain.Ambiguity{
				Key:          key,
				Destinations: dests,
			})
		}
	}
	return report
}

// IsDeterministic reports whether every (state, symbol) key has at most one destination.
func IsDeterministic(a *domain.Automaton) bool {
	for _, key := range a.Keys() {
		if len(a.Destinations(key.State, key.Symbol)) > 1 {
			return false
		}
	}
	return true
}
