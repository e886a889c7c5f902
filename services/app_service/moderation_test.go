package app_service

import (
	"testing"

	"petadot/model/app_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckContent(t *testing.T) {
	cfg := ModerationConfig{Enabled: true, Keywords: []string{"vendo", "compro"}}

	tests := []struct {
		name    string
		text    string
		cfg     ModerationConfig
		blocked bool
		keyword string
	}{
		{"clean text", "Cachorro dócil procura um lar", cfg, false, ""},
		{"keyword hit", "Vendo este cachorro urgente", cfg, true, "vendo"},
		{"case insensitive", "VENDO FILHOTES", cfg, true, "vendo"},
		{"substring match", "revendo fotos antigas", cfg, true, "vendo"},
		{"first match wins", "compro e vendo", cfg, true, "vendo"},
		{"disabled passes everything", "vendo tudo", ModerationConfig{Enabled: false, Keywords: []string{"vendo"}}, false, ""},
		{"no keywords", "vendo tudo", ModerationConfig{Enabled: true}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckContent(tt.text, tt.cfg)
			assert.Equal(t, tt.blocked, result.Blocked)
			assert.Equal(t, tt.keyword, result.MatchedKeyword)
		})
	}
}

// 命中词按违禁词列表顺序决定，不按出现位置
func TestCheckContentMatchOrder(t *testing.T) {
	cfg := ModerationConfig{Enabled: true, Keywords: []string{"gato", "cachorro"}}
	result := CheckContent("cachorro e gato juntos", cfg)
	require.True(t, result.Blocked)
	assert.Equal(t, "gato", result.MatchedKeyword)
}

func TestLoadModerationConfigMissingSetting(t *testing.T) {
	setupTestDB(t)

	cfg, lookup := LoadModerationConfig()
	assert.Equal(t, LookupOk, lookup)
	assert.False(t, cfg.Enabled)
}

func TestLoadModerationConfigEnabled(t *testing.T) {
	gdb := setupTestDB(t)
	enableModeration(t, gdb, "vendo", "compro")

	// 停用的词不参与匹配
	require.NoError(t, gdb.Create(&app_model.ModerationKeyword{
		Keyword:  "doação",
		IsActive: false,
	}).Error)

	cfg, lookup := LoadModerationConfig()
	require.Equal(t, LookupOk, lookup)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, []string{"vendo", "compro"}, cfg.Keywords)
}

func TestLoadModerationConfigDisabled(t *testing.T) {
	gdb := setupTestDB(t)
	require.NoError(t, gdb.Create(&app_model.ModerationSetting{
		SettingKey:   app_model.SettingKeyModerationEnabled,
		SettingValue: `{"enabled":false}`,
	}).Error)

	cfg, lookup := LoadModerationConfig()
	assert.Equal(t, LookupOk, lookup)
	assert.False(t, cfg.Enabled)
}

func TestLoadModerationConfigBadJSON(t *testing.T) {
	gdb := setupTestDB(t)
	require.NoError(t, gdb.Create(&app_model.ModerationSetting{
		SettingKey:   app_model.SettingKeyModerationEnabled,
		SettingValue: `not-json`,
	}).Error)

	_, lookup := LoadModerationConfig()
	assert.Equal(t, LookupUnavailable, lookup)
}
