package app_service

import (
	"encoding/json"
	"errors"
	"strings"

	"petadot/db"
	"petadot/model/app_model"

	"gorm.io/gorm"
)

// ModerationConfig 一次提交所需的完整审核配置
// 由调用方在管道开头读取一次，显式传入检查函数，便于注入测试数据
type ModerationConfig struct {
	Enabled  bool
	Keywords []string
}

// CheckResult 违禁词检查结果
type CheckResult struct {
	Blocked        bool
	MatchedKeyword string
}

// LookupStatus 配置读取结果标记
// 读取失败时由调用方决定fail-open还是fail-closed，本包不隐式兜底
type LookupStatus int

const (
	LookupOk LookupStatus = iota
	LookupUnavailable
)

// enabledValue 审核开关的JSON取值
type enabledValue struct {
	Enabled bool `json:"enabled"`
}

// LoadModerationConfig 读取审核开关和当前生效的违禁词列表
// 开关记录不存在视为审核未启用；读取出错返回 LookupUnavailable
func LoadModerationConfig() (ModerationConfig, LookupStatus) {
	var setting app_model.ModerationSetting
	err := db.Dao.Where("setting_key = ?", app_model.SettingKeyModerationEnabled).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ModerationConfig{Enabled: false}, LookupOk
		}
		return ModerationConfig{}, LookupUnavailable
	}

	var v enabledValue
	if err := json.Unmarshal([]byte(setting.SettingValue), &v); err != nil {
		return ModerationConfig{}, LookupUnavailable
	}
	if !v.Enabled {
		return ModerationConfig{Enabled: false}, LookupOk
	}

	var words []app_model.ModerationKeyword
	if err := db.Dao.Where("is_active = ?", true).Order("id ASC").Find(&words).Error; err != nil {
		return ModerationConfig{}, LookupUnavailable
	}

	keywords := make([]string, 0, len(words))
	for _, w := range words {
		keywords = append(keywords, w.Keyword)
	}

	return ModerationConfig{Enabled: true, Keywords: keywords}, LookupOk
}

// CheckContent 对文本做违禁词检查
// 匹配不区分大小写，子串包含即命中（无词边界），按列表顺序返回第一个命中的词
func CheckContent(text string, cfg ModerationConfig) CheckResult {
	if !cfg.Enabled || len(cfg.Keywords) == 0 {
		return CheckResult{}
	}

	lowered := strings.ToLower(text)
	for _, kw := range cfg.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return CheckResult{Blocked: true, MatchedKeyword: kw}
		}
	}

	return CheckResult{}
}
