package app_model

import "time"

// Event 活动（领养日、义诊等）
type Event struct {
	ID            uint         `json:"id" gorm:"primarykey"`
	Name          string       `json:"name" gorm:"size:200;not null"`
	Description   string       `json:"description" gorm:"type:text"`
	Date          time.Time    `json:"date"`
	Location      string       `json:"location" gorm:"size:255"`
	City          string       `json:"city" gorm:"size:100"`
	State         string       `json:"state" gorm:"size:2"`
	Status        ReviewStatus `json:"status" gorm:"size:20;index;default:pending"`
	UserID        uint         `json:"user_id" gorm:"index"`
	Slug          string       `json:"slug" gorm:"size:255;uniqueIndex"`
	SlugFinalized bool         `json:"slug_finalized" gorm:"default:false"`
	ImageURL      string       `json:"image_url" gorm:"size:500"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName 指定表名
func (Event) TableName() string {
	return "events"
}
