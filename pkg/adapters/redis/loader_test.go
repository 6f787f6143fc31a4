package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/pkg/adapters/redis"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLoader_Contract(t *testing.T) {
	mr, client := setup(t)
	require.NoError(t, mr.Set(redis.DefaultKey, tests.LoaderFixture))

	tests.DescriptionLoaderContractTest(t, redis.NewFromClient(client))
}

func TestRedisLoader_CustomKeyAndFormat(t *testing.T) {
	mr, client := setup(t)
	require.NoError(t, mr.Set("fa:yaml", "states: [s, t]\nfinals: [t]\nalphabet: [x]\ntransitions: [s x t]\n"))

	loader := redis.NewFromClient(client, redis.WithKey("fa:yaml"), redis.WithFormat(compiler.FormatYAML))
	a, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.State{"t"}, a.Destinations("s", "x"))
}

func TestRedisLoader_MissingKey(t *testing.T) {
	_, client := setup(t)

	_, err := redis.NewFromClient(client, redis.WithKey("absent")).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDescriptionNotFound)
}

func TestRedisLoader_Publish(t *testing.T) {
	mr, client := setup(t)
	loader := redis.NewFromClient(client)

	require.NoError(t, loader.Publish(context.Background(), tests.LoaderFixture))

	stored, err := mr.Get(redis.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, tests.LoaderFixture, stored)

	a, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.State("q0"), a.Initial())
}

func TestRedisLoader_Malformed(t *testing.T) {
	mr, client := setup(t)
	require.NoError(t, mr.Set(redis.DefaultKey, "q0\n"))

	_, err := redis.NewFromClient(client).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedDescription)
}
