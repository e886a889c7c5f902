package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"petadot/pkg/config"

	"github.com/redis/go-redis/v9"
)

// PageCache 公共页面缓存：本地缓存优先，Redis兜底
// 渲染层按路由路径读写，提交管道在内容变化时按路径失效
type PageCache struct {
	redis    *redis.Client
	local    *LocalCache
	enabled  bool
	pageTTL  time.Duration // Redis层TTL
	localTTL time.Duration // 本地层TTL，回填时也用它
}

// LocalCache 本地缓存
type LocalCache struct {
	data map[string]*CacheItem
	mu   sync.RWMutex
}

// CacheItem 缓存项
type CacheItem struct {
	Value     []byte
	ExpiresAt time.Time
}

// NewPageCache 创建页面缓存，TTL和开关来自配置
func NewPageCache(redisClient *redis.Client, cfg config.CacheConfig) *PageCache {
	pageTTL := cfg.PageTTL
	if pageTTL <= 0 {
		pageTTL = 10 * time.Minute
	}
	localTTL := cfg.LocalTTL
	if localTTL <= 0 {
		localTTL = time.Minute
	}

	pc := &PageCache{
		redis: redisClient,
		local: &LocalCache{
			data: make(map[string]*CacheItem),
		},
		enabled:  cfg.Enabled,
		pageTTL:  pageTTL,
		localTTL: localTTL,
	}

	// 启动本地缓存清理协程
	go pc.cleanupLocalCache()

	return pc
}

// pageKey 路由路径对应的缓存键
func pageKey(path string) string {
	return "page:" + path
}

// Get 读取页面缓存，优先本地，然后Redis
func (pc *PageCache) Get(ctx context.Context, path string, dest interface{}) error {
	if !pc.enabled {
		return fmt.Errorf("cache disabled")
	}

	key := pageKey(path)

	if value, found := pc.getFromLocal(key); found {
		return json.Unmarshal(value, dest)
	}

	if pc.redis != nil {
		data, err := pc.redis.Get(ctx, key).Bytes()
		if err == nil {
			// 回填本地缓存
			pc.setToLocal(key, data, pc.localTTL)
			return json.Unmarshal(data, dest)
		}
	}

	return fmt.Errorf("cache miss")
}

// Set 写入页面缓存，本地和Redis各一份
func (pc *PageCache) Set(ctx context.Context, path string, value interface{}) error {
	if !pc.enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	pc.setToLocal(pageKey(path), data, pc.localTTL)

	if pc.redis != nil {
		go func() {
			pc.redis.Set(context.Background(), pageKey(path), data, pc.pageTTL)
		}()
	}

	return nil
}

// Invalidate 使一组路由路径的缓存失效
func (pc *PageCache) Invalidate(ctx context.Context, paths ...string) error {
	if !pc.enabled {
		return nil
	}

	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = pageKey(p)
		pc.deleteFromLocal(keys[i])
	}

	if pc.redis != nil && len(keys) > 0 {
		if err := pc.redis.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}

	return nil
}

func (pc *PageCache) getFromLocal(key string) ([]byte, bool) {
	pc.local.mu.RLock()
	defer pc.local.mu.RUnlock()

	item, exists := pc.local.data[key]
	if !exists || time.Now().After(item.ExpiresAt) {
		return nil, false
	}
	return item.Value, true
}

func (pc *PageCache) setToLocal(key string, data []byte, ttl time.Duration) {
	pc.local.mu.Lock()
	defer pc.local.mu.Unlock()

	pc.local.data[key] = &CacheItem{
		Value:     data,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func (pc *PageCache) deleteFromLocal(key string) {
	pc.local.mu.Lock()
	defer pc.local.mu.Unlock()

	delete(pc.local.data, key)
}

// cleanupLocalCache 定期清理过期的本地缓存
func (pc *PageCache) cleanupLocalCache() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		pc.local.mu.Lock()
		for key, item := range pc.local.data {
			if now.After(item.ExpiresAt) {
				delete(pc.local.data, key)
			}
		}
		pc.local.mu.Unlock()
	}
}
