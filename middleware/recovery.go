package middleware

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"petadot/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery 自定义恢复中间件
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// 记录panic详细信息
		err := fmt.Sprintf("panic recovered: %v", recovered)
		stack := string(debug.Stack())

		log.Printf("[PANIC RECOVERY] %s\n%s", err, stack)

		// 根据环境返回不同的错误信息
		if gin.Mode() == gin.DebugMode {
			// 开发环境返回详细错误信息
			response.ErrorWithData(c, response.INTERNAL_ERROR, gin.H{
				"panic": recovered,
				"stack": stack,
			}, "服务器内部错误")
		} else {
			// 生产环境只返回通用错误信息
			response.Error(c, response.INTERNAL_ERROR, "服务器内部错误")
		}
	})
}

// ErrorHandler 统一错误处理中间件
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// 检查是否有错误
		if len(c.Errors) > 0 {
			handleContextErrors(c)
		}
	}
}

func handleContextErrors(c *gin.Context) {
	err := c.Errors.Last()

	// 记录错误
	log.Printf("[ERROR] %s %s - %v", c.Request.Method, c.Request.URL.Path, err.Err)

	// 如果还没有响应，则发送错误响应
	if !c.Writer.Written() {
		switch err.Type {
		case gin.ErrorTypeBind:
			response.Error(c, response.INVALID_PARAMS, "请求参数错误: "+err.Error())
		case gin.ErrorTypePublic:
			response.Error(c, response.ERROR, err.Error())
		default:
			response.Error(c, response.INTERNAL_ERROR, "内部服务错误")
		}
	}
}

// RateLimit 按客户端IP的简单限流，固定时间窗口计数
func RateLimit(maxRequests int, window ...time.Duration) gin.HandlerFunc {
	win := time.Minute
	if len(window) > 0 {
		win = window[0]
	}

	var (
		mu          sync.Mutex
		counts      = make(map[string]int)
		windowStart = time.Now()
	)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		mu.Lock()
		// 窗口到期整体重置
		if time.Since(windowStart) > win {
			counts = make(map[string]int)
			windowStart = time.Now()
		}
		counts[clientIP]++
		over := counts[clientIP] > maxRequests
		mu.Unlock()

		if over {
			response.Abort(c, response.TOO_MANY_REQUESTS, "请求过于频繁，请稍后再试")
			return
		}

		c.Next()
	}
}
