package app_model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// ReviewStatus 审核状态
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"  // 待审核
	StatusApproved ReviewStatus = "approved" // 已通过
	StatusRejected ReviewStatus = "rejected" // 已拒绝
)

// 宠物登记类别，同一张表按category区分
const (
	CategoryAdoption = "adoption" // 待领养
	CategoryLost     = "lost"     // 走失
	CategoryFound    = "found"    // 被发现
	CategoryEvent    = "event"
	CategoryStory    = "story"
)

// StringArray 字符串数组类型，用于存储图片URL数组
type StringArray []string

// Value 实现 driver.Valuer 接口
func (a StringArray) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan 实现 sql.Scanner 接口
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	}
	*a = StringArray{}
	return nil
}

// Pet 宠物登记（领养/走失/发现共用一张表）
type Pet struct {
	ID            uint         `json:"id" gorm:"primarykey"`
	Name          string       `json:"name" gorm:"size:100;not null"`
	Species       string       `json:"species" gorm:"size:50"`
	Breed         string       `json:"breed" gorm:"size:100"`
	Color         string       `json:"color" gorm:"size:50"`
	Size          string       `json:"size" gorm:"size:20"`
	Gender        string       `json:"gender" gorm:"size:20"`
	Description   string       `json:"description" gorm:"type:text"`
	Status        ReviewStatus `json:"status" gorm:"size:20;index;default:pending"`
	Category      string       `json:"category" gorm:"size:20;index;not null"`
	UserID        uint         `json:"user_id" gorm:"index"`
	OngID         uint         `json:"ong_id" gorm:"index"`
	City          string       `json:"city" gorm:"size:100"`
	State         string       `json:"state" gorm:"size:2"`
	Slug          string       `json:"slug" gorm:"size:255;uniqueIndex"`
	SlugFinalized bool         `json:"slug_finalized" gorm:"default:false"` // 两阶段slug写入的第二阶段是否完成
	MainImageURL  string       `json:"main_image_url" gorm:"size:500"`
	ImageURLs     StringArray  `json:"image_urls" gorm:"type:json"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName 指定表名
func (Pet) TableName() string {
	return "pets"
}
