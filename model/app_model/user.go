package app_model

import "time"

// 用户类型
const (
	UserTypeIndividual = "individual" // 个人
	UserTypeOng        = "ong"        // 公益机构
)

// AppUser 平台用户（个人或机构账号）
type AppUser struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Type       string    `json:"type" gorm:"size:20;default:individual"`
	IsAdmin    bool      `json:"is_admin" gorm:"default:false"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"` // 机构账号经管理员认证后为true
	Name       string    `json:"name" gorm:"size:100;not null"`
	Email      string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"size:100"`
	Phone      string    `json:"phone" gorm:"size:20"`
	City       string    `json:"city" gorm:"size:100"`
	State      string    `json:"state" gorm:"size:2"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 指定表名
func (AppUser) TableName() string {
	return "users"
}
