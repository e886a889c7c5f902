package app_service

import (
	"context"
	"log"
	"sync"
	"time"

	"petadot/model/app_model"
	"petadot/pkg/cache"
	"petadot/pkg/config"
	"petadot/pkg/goroutinepool"
	"petadot/pkg/monitoring"
	"petadot/redis"
)

var (
	pageCache     *cache.PageCache
	pageCacheOnce sync.Once
)

// PageCacheInstance 全局页面缓存
func PageCacheInstance() *cache.PageCache {
	pageCacheOnce.Do(func() {
		pageCache = cache.NewPageCache(redis.GetClient(), config.GetConfig().Cache)
	})
	return pageCache
}

// categoryBasePath 各类别对应的公开列表路由
var categoryBasePath = map[string]string{
	app_model.CategoryAdoption: "/adocao",
	app_model.CategoryLost:     "/perdidos",
	app_model.CategoryFound:    "/encontrados",
	app_model.CategoryEvent:    "/eventos",
	app_model.CategoryStory:    "/historias",
}

// PublicRoutes 内容变化后需要失效的路由路径集合
// 固定包含首页、类别列表页和后台待审核列表，有slug时再加详情页
func PublicRoutes(category, slug string) []string {
	paths := []string{"/", "/admin/pending"}

	base, ok := categoryBasePath[category]
	if !ok {
		return paths
	}
	paths = append(paths, base)
	if slug != "" {
		paths = append(paths, base+"/"+slug)
	}
	return paths
}

// InvalidatePublicRoutes 异步失效类别相关页面缓存
// fire-and-forget：失败只记日志，绝不影响已经成功的提交
func InvalidatePublicRoutes(category, slug string) {
	paths := PublicRoutes(category, slug)

	err := goroutinepool.GetPool().SubmitFunc("invalidate:"+category, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := PageCacheInstance().Invalidate(ctx, paths...); err != nil {
			monitoring.RecordCacheInvalidation("failed")
			return err
		}
		monitoring.RecordCacheInvalidation("ok")
		return nil
	})
	if err != nil {
		log.Printf("缓存失效任务提交失败 category=%s: %v", category, err)
	}
}
