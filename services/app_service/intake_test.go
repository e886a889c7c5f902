package app_service

import (
	"fmt"
	"testing"

	"petadot/inout"
	"petadot/model/app_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitLostPetGoesPending(t *testing.T) {
	gdb := setupTestDB(t)
	enableModeration(t, gdb, "vendo")
	user := seedUser(t, gdb, app_model.UserTypeIndividual, false)

	svc := &PetService{}
	result, err := svc.Create(user.ID, app_model.CategoryLost, inout.CreatePetReq{
		Name:        "Bolinha",
		Description: "Cachorro pequeno desaparecido no centro",
		City:        "Campinas",
		State:       "SP",
	})
	require.NoError(t, err)

	assert.Equal(t, app_model.StatusPending, result.Status)
	assert.Equal(t, fmt.Sprintf("bolinha-campinas-%d", result.ID), result.Slug)

	var pet app_model.Pet
	require.NoError(t, gdb.First(&pet, result.ID).Error)
	assert.Equal(t, app_model.StatusPending, pet.Status)
	assert.Equal(t, result.Slug, pet.Slug)
	assert.True(t, pet.SlugFinalized)
	assert.Equal(t, user.ID, pet.UserID)
}

func TestSubmitBlockedByKeyword(t *testing.T) {
	gdb := setupTestDB(t)
	enableModeration(t, gdb, "vendo")
	user := seedUser(t, gdb, app_model.UserTypeIndividual, false)

	svc := &PetService{}
	_, err := svc.Create(user.ID, app_model.CategoryAdoption, inout.CreatePetReq{
		Name:        "Totó",
		Description: "Vendo este cachorro de raça",
		City:        "Campinas",
		State:       "SP",
	})

	var blocked *ModerationBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "vendo", blocked.Keyword)

	// 被拦下的内容一行都不落库
	var count int64
	require.NoError(t, gdb.Model(&app_model.Pet{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitOngAutoApproved(t *testing.T) {
	gdb := setupTestDB(t)
	enableModeration(t, gdb, "vendo")
	user := seedUser(t, gdb, app_model.UserTypeOng, true)

	svc := &PetService{}
	result, err := svc.Create(user.ID, app_model.CategoryAdoption, inout.CreatePetReq{
		Name:        "Luna",
		Description: "Gata castrada e vacinada para adoção",
		City:        "Campinas",
		State:       "SP",
	})
	require.NoError(t, err)
	assert.Equal(t, app_model.StatusApproved, result.Status)
}

// 免审只看账号类型，机构是否经过管理员认证不影响
func TestSubmitOngAutoApprovedWithoutVerification(t *testing.T) {
	gdb := setupTestDB(t)
	user := seedUser(t, gdb, app_model.UserTypeOng, false)

	svc := &PetService{}
	result, err := svc.Create(user.ID, app_model.CategoryAdoption, inout.CreatePetReq{
		Name:        "Thor",
		Description: "Cachorro grande e brincalhão",
		City:        "Campinas",
		State:       "SP",
	})
	require.NoError(t, err)
	assert.Equal(t, app_model.StatusApproved, result.Status)

	var pet app_model.Pet
	require.NoError(t, gdb.First(&pet, result.ID).Error)
	assert.Equal(t, app_model.StatusApproved, pet.Status)
}

// 审核配置损坏时放行提交，不因配置库故障误杀正常内容
func TestSubmitFailOpenOnBrokenConfig(t *testing.T) {
	gdb := setupTestDB(t)
	require.NoError(t, gdb.Create(&app_model.ModerationSetting{
		SettingKey:   app_model.SettingKeyModerationEnabled,
		SettingValue: `not-json`,
	}).Error)
	user := seedUser(t, gdb, app_model.UserTypeIndividual, false)

	svc := &PetService{}
	result, err := svc.Create(user.ID, app_model.CategoryLost, inout.CreatePetReq{
		Name:        "Mel",
		Description: "Vendo por aí uma cadela parecida",
		City:        "Campinas",
		State:       "SP",
	})
	require.NoError(t, err)
	assert.Equal(t, app_model.StatusPending, result.Status)
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	setupTestDB(t)

	svc := &PetService{}
	_, err := svc.Create(0, app_model.CategoryLost, inout.CreatePetReq{
		Name:        "Bolinha",
		Description: "d",
		City:        "Campinas",
		State:       "SP",
	})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// 同名同城的提交靠id后缀分叉，slug互不相同
func TestSubmitSameNameSameCityDiverge(t *testing.T) {
	gdb := setupTestDB(t)
	user := seedUser(t, gdb, app_model.UserTypeIndividual, false)

	svc := &PetService{}
	first, err := svc.Create(user.ID, app_model.CategoryLost, inout.CreatePetReq{
		Name: "Rex", Description: "d", City: "Campinas", State: "SP",
	})
	require.NoError(t, err)

	second, err := svc.Create(user.ID, app_model.CategoryLost, inout.CreatePetReq{
		Name: "Rex", Description: "d", City: "Campinas", State: "SP",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Equal(t, fmt.Sprintf("rex-campinas-%d", first.ID), first.Slug)
	assert.Equal(t, fmt.Sprintf("rex-campinas-%d", second.ID), second.Slug)
}

// 故事没有slug字段，走不带slug的插入分支
func TestSubmitStoryHasNoSlug(t *testing.T) {
	gdb := setupTestDB(t)
	user := seedUser(t, gdb, app_model.UserTypeIndividual, false)

	pet, err := (&PetService{}).Create(user.ID, app_model.CategoryAdoption, inout.CreatePetReq{
		Name: "Luna", Description: "d", City: "Campinas", State: "SP",
	})
	require.NoError(t, err)

	result, err := (&StoryService{}).Create(user.ID, inout.CreateStoryReq{
		PetID:   pet.ID,
		Title:   "Final feliz",
		Content: "Luna encontrou um lar",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Slug)
	assert.Equal(t, app_model.StatusPending, result.Status)

	var story app_model.PetStory
	require.NoError(t, gdb.First(&story, result.ID).Error)
	assert.Equal(t, app_model.StatusPending, story.Status)
}
