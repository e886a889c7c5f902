package admin_service

import (
	"testing"

	"petadot/inout"
	"petadot/model/app_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func boolPtr(b bool) *bool { return &b }

func TestKeywordCRUD(t *testing.T) {
	gdb := setupTestDB(t)
	svc := &ModerationService{}

	kw, err := svc.AddKeyword(inout.AddKeywordReq{Keyword: "vendo"})
	require.NoError(t, err)
	assert.True(t, kw.IsActive)

	// 重复添加报已存在
	_, err = svc.AddKeyword(inout.AddKeywordReq{Keyword: "vendo"})
	assert.ErrorIs(t, err, ErrKeywordExists)

	// 停用后保留记录
	updated, err := svc.UpdateKeyword(kw.ID, inout.UpdateKeywordReq{IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	var got app_model.ModerationKeyword
	require.NoError(t, gdb.First(&got, kw.ID).Error)
	assert.False(t, got.IsActive)

	require.NoError(t, svc.DeleteKeyword(kw.ID))
	assert.ErrorIs(t, svc.DeleteKeyword(kw.ID), gorm.ErrRecordNotFound)
}

func TestModerationSettingUpsert(t *testing.T) {
	gdb := setupTestDB(t)
	svc := &ModerationService{}

	// 无记录时视为未启用
	res, err := svc.GetSetting()
	require.NoError(t, err)
	assert.False(t, res.Enabled)

	res, err = svc.UpdateSetting(inout.UpdateModerationSettingReq{Enabled: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, res.Enabled)

	res, err = svc.GetSetting()
	require.NoError(t, err)
	assert.True(t, res.Enabled)

	// 二次更新走同一行，不产生新记录
	_, err = svc.UpdateSetting(inout.UpdateModerationSettingReq{Enabled: boolPtr(false)})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&app_model.ModerationSetting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	res, err = svc.GetSetting()
	require.NoError(t, err)
	assert.False(t, res.Enabled)
}
