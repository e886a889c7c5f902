package app_model

import "time"

// Ong 公益机构档案
type Ong struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"` // 机构管理账号
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Email       string    `json:"email" gorm:"size:255"`
	Phone       string    `json:"phone" gorm:"size:20"`
	Website     string    `json:"website" gorm:"size:255"`
	City        string    `json:"city" gorm:"size:100"`
	State       string    `json:"state" gorm:"size:2"`
	Slug        string    `json:"slug" gorm:"size:255;uniqueIndex"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	LogoURL     string    `json:"logo_url" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Ong) TableName() string {
	return "ongs"
}
