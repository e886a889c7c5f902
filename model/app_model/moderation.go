package app_model

import "time"

// ModerationKeyword 违禁词配置
type ModerationKeyword struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Keyword   string    `json:"keyword" gorm:"size:100;not null;uniqueIndex"` // 违禁词，匹配时不区分大小写
	IsActive  bool      `json:"is_active" gorm:"default:true"`                // 停用后保留记录但不参与匹配
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (ModerationKeyword) TableName() string {
	return "moderation_keywords"
}

// ModerationSetting 审核开关配置，按key单例upsert
type ModerationSetting struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	SettingKey   string    `json:"setting_key" gorm:"size:100;not null;uniqueIndex"`
	SettingValue string    `json:"setting_value" gorm:"type:json"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName 指定表名
func (ModerationSetting) TableName() string {
	return "moderation_settings"
}

// 审核开关setting_key
const SettingKeyModerationEnabled = "moderation_enabled"
