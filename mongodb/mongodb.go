package mongodb

import (
	"context"
	"log"
	"time"

	"petadot/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// InitMongoDB 初始化MongoDB连接（审核日志存储）
// 未配置 MONGO_URI 时跳过，审核日志降级为仅写普通日志
func InitMongoDB() {
	cfg := config.GetConfig()
	if cfg.MongoDB.URI == "" {
		log.Print("MongoDB未配置，审核日志存储已禁用")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		return
	}

	if err := c.Ping(ctx, nil); err != nil {
		log.Printf("MongoDB ping failed: %v", err)
		return
	}

	client = c
	log.Printf("MongoDB连接已初始化，数据库: %s", cfg.MongoDB.Database)
}

// AuditCollection 获取审核日志集合，未初始化时返回nil
func AuditCollection() *mongo.Collection {
	if client == nil {
		return nil
	}
	cfg := config.GetConfig()
	return client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
}

// Close 关闭MongoDB连接
func Close() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Failed to disconnect MongoDB: %v", err)
	}
}
