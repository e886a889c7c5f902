package admin_service

import (
	"testing"

	"petadot/inout"
	"petadot/model/app_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPendingPet(t *testing.T, gdb *gorm.DB, category string) app_model.Pet {
	t.Helper()

	pet := app_model.Pet{
		Name:          "Bolinha",
		Description:   "Cachorro pequeno",
		Status:        app_model.StatusPending,
		Category:      category,
		UserID:        1,
		City:          "Campinas",
		State:         "SP",
		Slug:          "bolinha-campinas-1",
		SlugFinalized: true,
	}
	require.NoError(t, gdb.Create(&pet).Error)
	return pet
}

func TestApproveThenReject(t *testing.T) {
	gdb := setupTestDB(t)
	pet := seedPendingPet(t, gdb, app_model.CategoryLost)

	svc := &ReviewService{}
	require.NoError(t, svc.Approve(99, inout.ReviewItemReq{ItemID: pet.ID, Type: app_model.CategoryLost}))

	var got app_model.Pet
	require.NoError(t, gdb.First(&got, pet.ID).Error)
	assert.Equal(t, app_model.StatusApproved, got.Status)

	// 已过审的内容仍可驳回下架
	require.NoError(t, svc.Reject(99, inout.ReviewItemReq{ItemID: pet.ID, Type: app_model.CategoryLost}))

	require.NoError(t, gdb.First(&got, pet.ID).Error)
	assert.Equal(t, app_model.StatusRejected, got.Status)
}

// 类别和id必须同时匹配，防止用event类型审到pets行
func TestReviewTypeMustMatchCategory(t *testing.T) {
	gdb := setupTestDB(t)
	pet := seedPendingPet(t, gdb, app_model.CategoryLost)

	svc := &ReviewService{}
	err := svc.Approve(99, inout.ReviewItemReq{ItemID: pet.ID, Type: app_model.CategoryAdoption})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Approve(99, inout.ReviewItemReq{ItemID: pet.ID, Type: "unknown"})
	assert.ErrorIs(t, err, ErrUnknownItemType)
}

func TestReviewStory(t *testing.T) {
	gdb := setupTestDB(t)
	story := app_model.PetStory{
		Title:   "Final feliz",
		Content: "texto",
		Status:  app_model.StatusPending,
		UserID:  1,
	}
	require.NoError(t, gdb.Create(&story).Error)

	svc := &ReviewService{}
	require.NoError(t, svc.Approve(99, inout.ReviewItemReq{ItemID: story.ID, Type: app_model.CategoryStory}))

	var got app_model.PetStory
	require.NoError(t, gdb.First(&got, story.ID).Error)
	assert.Equal(t, app_model.StatusApproved, got.Status)
}

func TestPendingQueueOldestFirst(t *testing.T) {
	gdb := setupTestDB(t)
	first := seedPendingPet(t, gdb, app_model.CategoryLost)

	second := app_model.Pet{
		Name: "Rex", Description: "d", Status: app_model.StatusPending,
		Category: app_model.CategoryAdoption, UserID: 2,
		City: "Campinas", State: "SP", Slug: "rex-campinas-2", SlugFinalized: true,
	}
	require.NoError(t, gdb.Create(&second).Error)

	// 已过审内容不进队列
	approved := app_model.Pet{
		Name: "Luna", Description: "d", Status: app_model.StatusApproved,
		Category: app_model.CategoryAdoption, UserID: 3,
		City: "Campinas", State: "SP", Slug: "luna-campinas-3", SlugFinalized: true,
	}
	require.NoError(t, gdb.Create(&approved).Error)

	svc := &ReviewService{}
	res, err := svc.Pending(inout.PendingListReq{Type: "pet"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Total)

	pets, ok := res.List.([]app_model.Pet)
	require.True(t, ok)
	require.Len(t, pets, 2)
	assert.Equal(t, first.ID, pets[0].ID)
	assert.Equal(t, second.ID, pets[1].ID)
}

func TestVerifyOng(t *testing.T) {
	gdb := setupTestDB(t)

	user := app_model.AppUser{Type: app_model.UserTypeOng, Name: "Abrigo", Email: "abrigo@example.com"}
	require.NoError(t, gdb.Create(&user).Error)

	ong := app_model.Ong{Name: "Abrigo Amigo", UserID: user.ID, Slug: "abrigo-amigo-1", City: "Campinas", State: "SP"}
	require.NoError(t, gdb.Create(&ong).Error)

	svc := &ReviewService{}
	require.NoError(t, svc.VerifyOng(99, ong.ID))

	var gotOng app_model.Ong
	require.NoError(t, gdb.First(&gotOng, ong.ID).Error)
	assert.True(t, gotOng.IsVerified)

	var gotUser app_model.AppUser
	require.NoError(t, gdb.First(&gotUser, user.ID).Error)
	assert.True(t, gotUser.IsVerified)
}

// 卡在第一阶段的记录由后台sweep补写id后缀slug
func TestReconcileSlugs(t *testing.T) {
	gdb := setupTestDB(t)

	stuck := app_model.Pet{
		Name: "Bolinha", Description: "d", Status: app_model.StatusPending,
		Category: app_model.CategoryLost, UserID: 1,
		City: "Campinas", State: "SP", Slug: "bolinha-campinas", SlugFinalized: false,
	}
	require.NoError(t, gdb.Create(&stuck).Error)

	done := app_model.Pet{
		Name: "Rex", Description: "d", Status: app_model.StatusPending,
		Category: app_model.CategoryLost, UserID: 1,
		City: "Campinas", State: "SP", Slug: "rex-campinas-2", SlugFinalized: true,
	}
	require.NoError(t, gdb.Create(&done).Error)

	svc := &ReviewService{}
	fixed, err := svc.ReconcileSlugs()
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	var got app_model.Pet
	require.NoError(t, gdb.First(&got, stuck.ID).Error)
	assert.True(t, got.SlugFinalized)
	assert.Contains(t, got.Slug, "bolinha-campinas")
	assert.NotEqual(t, "bolinha-campinas", got.Slug)

	// 已终写的记录不被动
	var gotDone app_model.Pet
	require.NoError(t, gdb.First(&gotDone, done.ID).Error)
	assert.Equal(t, "rex-campinas-2", gotDone.Slug)
}
