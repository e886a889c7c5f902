package middleware

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SetupLogFile 设置日志输出文件
func SetupLogFile(logDir string) *os.File {
	// 创建日志文件夹
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	// 创建日志文件，文件名包含日期
	logFile := filepath.Join(logDir, time.Now().Format("2006-01-02")+".log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	return file
}

// RequestLogger 通用请求日志中间件，每个请求分配一个请求ID
func RequestLogger(logDir string) gin.HandlerFunc {
	// 设置日志输出到指定文件
	logFile := SetupLogFile(logDir)
	logger := log.New(logFile, "", log.LstdFlags)

	return func(c *gin.Context) {
		// 开始时间
		start := time.Now()

		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		// 读取请求体
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		// 处理请求
		c.Next()

		latency := time.Since(start)
		method := c.Request.Method
		path := c.Request.URL.Path
		params := c.Request.URL.RawQuery
		clientIP := c.ClientIP()
		requestBody := string(bodyBytes)

		// 日志格式
		logger.Printf("%s %s %s %s %s %s %s", requestID, method, path, clientIP, params, requestBody, latency)
	}
}
