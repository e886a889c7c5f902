package app_service

import (
	"context"
	"log"
	"time"

	"petadot/mongodb"
	"petadot/pkg/goroutinepool"
)

// ModerationAudit 审核事件日志，写入MongoDB供后台追溯
type ModerationAudit struct {
	Action    string    `bson:"action"` // blocked / approved / rejected / fail_open
	Table     string    `bson:"table"`
	ItemID    uint      `bson:"item_id"`
	UserID    uint      `bson:"user_id"`
	Keyword   string    `bson:"keyword,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

// RecordModerationAudit 异步落一条审核事件
// MongoDB未配置时降级为普通日志
func RecordModerationAudit(action, table string, itemID, userID uint, keyword string) {
	entry := ModerationAudit{
		Action:    action,
		Table:     table,
		ItemID:    itemID,
		UserID:    userID,
		Keyword:   keyword,
		CreatedAt: time.Now(),
	}

	coll := mongodb.AuditCollection()
	if coll == nil {
		log.Printf("审核事件 action=%s table=%s item=%d user=%d keyword=%q",
			action, table, itemID, userID, keyword)
		return
	}

	err := goroutinepool.GetPool().SubmitFunc("audit:"+action, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := coll.InsertOne(ctx, entry)
		return err
	})
	if err != nil {
		log.Printf("审核事件写入任务提交失败: %v", err)
	}
}
