package app_service

import (
	"testing"

	"petadot/model/app_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseSlug(t *testing.T) {
	tests := []struct {
		name string
		n    string
		city string
		id   uint
		want string
	}{
		{"name and city", "Bolinha", "Campinas", 0, "bolinha-campinas"},
		{"with id", "Bolinha", "Campinas", 42, "bolinha-campinas-42"},
		{"diacritics folded", "Cão", "São Paulo", 0, "cao-sao-paulo"},
		{"name only", "Rex", "", 7, "rex-7"},
		{"nothing usable", "!!!", "", 0, "item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseSlug(tt.n, tt.city, tt.id))
		})
	}
}

func TestUniqueSlugSuffixes(t *testing.T) {
	gdb := setupTestDB(t)

	slug, err := UniqueSlug(gdb, "pets", "rex-campinas", 0)
	require.NoError(t, err)
	assert.Equal(t, "rex-campinas", slug)

	require.NoError(t, gdb.Create(&app_model.Pet{
		Name: "Rex", Description: "d", Category: app_model.CategoryLost,
		City: "Campinas", State: "SP", Slug: "rex-campinas",
	}).Error)

	slug, err = UniqueSlug(gdb, "pets", "rex-campinas", 0)
	require.NoError(t, err)
	assert.Equal(t, "rex-campinas-2", slug)

	require.NoError(t, gdb.Create(&app_model.Pet{
		Name: "Rex", Description: "d", Category: app_model.CategoryLost,
		City: "Campinas", State: "SP", Slug: "rex-campinas-2",
	}).Error)

	slug, err = UniqueSlug(gdb, "pets", "rex-campinas", 0)
	require.NoError(t, err)
	assert.Equal(t, "rex-campinas-3", slug)
}

// 更新场景排除自身，保留原slug不算冲突
func TestUniqueSlugExcludesSelf(t *testing.T) {
	gdb := setupTestDB(t)

	pet := app_model.Pet{
		Name: "Rex", Description: "d", Category: app_model.CategoryLost,
		City: "Campinas", State: "SP", Slug: "rex-campinas",
	}
	require.NoError(t, gdb.Create(&pet).Error)

	slug, err := UniqueSlug(gdb, "pets", "rex-campinas", pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "rex-campinas", slug)
}

func TestIsDuplicateSlugErr(t *testing.T) {
	gdb := setupTestDB(t)

	require.NoError(t, gdb.Create(&app_model.Pet{
		Name: "Rex", Description: "d", Category: app_model.CategoryLost,
		City: "Campinas", State: "SP", Slug: "rex-campinas",
	}).Error)

	err := gdb.Create(&app_model.Pet{
		Name: "Rex", Description: "d", Category: app_model.CategoryLost,
		City: "Campinas", State: "SP", Slug: "rex-campinas",
	}).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateSlugErr(err))
	assert.False(t, IsDuplicateSlugErr(nil))
}
