package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/config"
)

func TestNew_DisabledWithoutAddr(t *testing.T) {
	assert.Nil(t, New(config.RedisConfig{}, zap.NewNop()))
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.Nil(t, c.Get(ctx, "k"))
	c.Set(ctx, "k", []byte("v"))
	c.Delete(ctx, "k")
	assert.NoError(t, c.Close())
}

func TestRemember_NilClientAlwaysLoads(t *testing.T) {
	var c *Client
	calls := 0
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{1, 2}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := Remember(context.Background(), c, "key", load)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got)
	}
	assert.Equal(t, 2, calls)
}

func TestRemember_PropagatesLoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Remember(context.Background(), nil, "key", func(context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}
