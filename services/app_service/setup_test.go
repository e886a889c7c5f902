package app_service

import (
	"testing"

	"petadot/db"
	"petadot/model/app_model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 每个用例用独立的内存库，替换全局Dao
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&app_model.AppUser{},
		&app_model.Ong{},
		&app_model.Pet{},
		&app_model.Event{},
		&app_model.PetStory{},
		&app_model.ModerationKeyword{},
		&app_model.ModerationSetting{},
	))

	prev := db.Dao
	db.Dao = gdb
	t.Cleanup(func() { db.Dao = prev })

	return gdb
}

// seedUser 创建测试用户
func seedUser(t *testing.T, gdb *gorm.DB, userType string, verified bool) app_model.AppUser {
	t.Helper()

	user := app_model.AppUser{
		Type:       userType,
		IsVerified: verified,
		Name:       "测试用户",
		Email:      "user-" + t.Name() + "@example.com",
		State:      "SP",
		City:       "Campinas",
	}
	require.NoError(t, gdb.Create(&user).Error)
	return user
}

// enableModeration 打开审核开关并写入违禁词
func enableModeration(t *testing.T, gdb *gorm.DB, keywords ...string) {
	t.Helper()

	require.NoError(t, gdb.Create(&app_model.ModerationSetting{
		SettingKey:   app_model.SettingKeyModerationEnabled,
		SettingValue: `{"enabled":true}`,
	}).Error)

	for _, kw := range keywords {
		require.NoError(t, gdb.Create(&app_model.ModerationKeyword{
			Keyword:  kw,
			IsActive: true,
		}).Error)
	}
}
