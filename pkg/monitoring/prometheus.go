package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus 指标定义
var (
	// HTTP 请求相关指标
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// 数据库相关指标
	dbConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "当前使用中的数据库连接数",
		},
	)

	// 业务相关指标
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petadot_submissions_total",
			Help: "内容提交总数",
		},
		[]string{"category", "outcome"}, // outcome: approved/pending/blocked/failed
	)

	moderationBlocksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petadot_moderation_blocks_total",
			Help: "命中违禁词被拦截的提交总数",
		},
	)

	slugCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petadot_slug_collisions_total",
			Help: "slug冲突重试总数",
		},
	)

	reviewActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petadot_review_actions_total",
			Help: "管理员审核操作总数",
		},
		[]string{"action"}, // approve/reject
	)

	cacheInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petadot_cache_invalidations_total",
			Help: "页面缓存失效操作总数",
		},
		[]string{"status"}, // ok/failed
	)

	userLogins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "用户登录总数",
		},
	)
)

// PrometheusMiddleware Gin中间件，用于收集HTTP指标
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusCode,
		).Inc()

		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

// 业务指标记录函数
func RecordSubmission(category, outcome string) {
	submissionsTotal.WithLabelValues(category, outcome).Inc()
}

func RecordModerationBlock() {
	moderationBlocksTotal.Inc()
}

func RecordSlugCollision() {
	slugCollisionsTotal.Inc()
}

func RecordReviewAction(action string) {
	reviewActionsTotal.WithLabelValues(action).Inc()
}

func RecordCacheInvalidation(status string) {
	cacheInvalidationsTotal.WithLabelValues(status).Inc()
}

func RecordUserLogin() {
	userLogins.Inc()
}

func UpdateDBConnections(inUse int) {
	dbConnectionsInUse.Set(float64(inUse))
}
