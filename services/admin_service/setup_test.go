package admin_service

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
