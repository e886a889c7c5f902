package admin_service

import (
	"encoding/json"
	"errors"
	"strings"

	"petadot/db"
	"petadot/inout"
	"petadot/model/app_model"

	"gorm.io/gorm"
)

var ErrKeywordExists = errors.New("违禁词已存在")

// isDuplicateErr 唯一索引冲突判断
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

type ModerationService struct {
}

// Keywords 违禁词列表（含停用的）
func (s *ModerationService) Keywords(params inout.KeywordListReq) (*inout.ListRes, error) {
	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 20)

	query := db.Dao.Model(&app_model.ModerationKeyword{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var keywords []app_model.ModerationKeyword
	offset := (params.Page - 1) * params.PageSize
	if err := query.Order("id ASC").Offset(offset).Limit(params.PageSize).Find(&keywords).Error; err != nil {
		return nil, err
	}

	return &inout.ListRes{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		List:     keywords,
	}, nil
}

// AddKeyword 新增违禁词，按唯一索引去重
func (s *ModerationService) AddKeyword(params inout.AddKeywordReq) (*app_model.ModerationKeyword, error) {
	keyword := &app_model.ModerationKeyword{
		Keyword:  params.Keyword,
		IsActive: true,
	}
	if params.IsActive != nil {
		keyword.IsActive = *params.IsActive
	}

	if err := db.Dao.Create(keyword).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrKeywordExists
		}
		return nil, err
	}

	return keyword, nil
}

// UpdateKeyword 更新违禁词文本或启用状态
func (s *ModerationService) UpdateKeyword(id uint, params inout.UpdateKeywordReq) (*app_model.ModerationKeyword, error) {
	var keyword app_model.ModerationKeyword
	if err := db.Dao.First(&keyword, id).Error; err != nil {
		return nil, err
	}

	if params.Keyword != "" {
		keyword.Keyword = params.Keyword
	}
	if params.IsActive != nil {
		keyword.IsActive = *params.IsActive
	}

	if err := db.Dao.Save(&keyword).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrKeywordExists
		}
		return nil, err
	}

	return &keyword, nil
}

// DeleteKeyword 删除违禁词
func (s *ModerationService) DeleteKeyword(id uint) error {
	result := db.Dao.Delete(&app_model.ModerationKeyword{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetSetting 读取审核开关，记录不存在视为未启用
func (s *ModerationService) GetSetting() (*inout.ModerationSettingRes, error) {
	var setting app_model.ModerationSetting
	err := db.Dao.Where("setting_key = ?", app_model.SettingKeyModerationEnabled).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &inout.ModerationSettingRes{Enabled: false}, nil
		}
		return nil, err
	}

	var v struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.Unmarshal([]byte(setting.SettingValue), &v); err != nil {
		return nil, err
	}

	return &inout.ModerationSettingRes{Enabled: v.Enabled}, nil
}

// UpdateSetting 审核开关upsert，按setting_key单例
func (s *ModerationService) UpdateSetting(params inout.UpdateModerationSettingReq) (*inout.ModerationSettingRes, error) {
	value, err := json.Marshal(map[string]bool{"enabled": *params.Enabled})
	if err != nil {
		return nil, err
	}

	var setting app_model.ModerationSetting
	err = db.Dao.Where("setting_key = ?", app_model.SettingKeyModerationEnabled).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = app_model.ModerationSetting{
			SettingKey:   app_model.SettingKeyModerationEnabled,
			SettingValue: string(value),
		}
		if err := db.Dao.Create(&setting).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		setting.SettingValue = string(value)
		if err := db.Dao.Save(&setting).Error; err != nil {
			return nil, err
		}
	}

	return &inout.ModerationSettingRes{Enabled: *params.Enabled}, nil
}
