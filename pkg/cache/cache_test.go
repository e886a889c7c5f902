package cache

import (
	"context"
	"testing"
	"time"

	"petadot/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Redis不可用时页面缓存退化为纯本地缓存
func TestPageCacheLocalOnly(t *testing.T) {
	pc := NewPageCache(nil, config.CacheConfig{
		Enabled:  true,
		PageTTL:  time.Minute,
		LocalTTL: time.Minute,
	})
	ctx := context.Background()

	payload := map[string]string{"title": "adoção"}
	require.NoError(t, pc.Set(ctx, "/adocao", payload))

	var got map[string]string
	require.NoError(t, pc.Get(ctx, "/adocao", &got))
	assert.Equal(t, "adoção", got["title"])

	require.NoError(t, pc.Invalidate(ctx, "/adocao"))
	assert.Error(t, pc.Get(ctx, "/adocao", &got))
}

func TestPageCacheDisabled(t *testing.T) {
	pc := NewPageCache(nil, config.CacheConfig{Enabled: false})
	ctx := context.Background()

	require.NoError(t, pc.Set(ctx, "/adocao", "x"))

	var got string
	assert.Error(t, pc.Get(ctx, "/adocao", &got))
	assert.NoError(t, pc.Invalidate(ctx, "/adocao"))
}

func TestPageCacheLocalTTLExpiry(t *testing.T) {
	pc := NewPageCache(nil, config.CacheConfig{
		Enabled:  true,
		LocalTTL: 10 * time.Millisecond,
	})
	ctx := context.Background()

	require.NoError(t, pc.Set(ctx, "/eventos", "x"))
	time.Sleep(30 * time.Millisecond)

	var got string
	assert.Error(t, pc.Get(ctx, "/eventos", &got))
}
