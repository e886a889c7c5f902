package app_service

import (
	"petadot/db"
	"petadot/inout"
	"petadot/model/app_model"

	"gorm.io/gorm"
)

type StoryService struct {
}

// Create 发布领养故事，走同一条提交管道（无slug阶段）
func (s *StoryService) Create(uid uint, params inout.CreateStoryReq) (*IntakeResult, error) {
	sub, err := SubmitterFromUser(uid)
	if err != nil {
		return nil, err
	}

	// 关联的宠物必须存在
	if params.PetID != 0 {
		var count int64
		if err := db.Dao.Model(&app_model.Pet{}).Where("id = ?", params.PetID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	story := &app_model.PetStory{
		Title:   params.Title,
		Content: params.Content,
		UserID:  sub.ID,
		PetID:   params.PetID,
	}

	return SubmitContent(storyRow{story}, sub)
}

// List 公开故事列表，只返回已过审内容
func (s *StoryService) List(params inout.StoryListReq) (*inout.ListRes, error) {
	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 10)

	query := db.Dao.Model(&app_model.PetStory{}).Where("status = ?", app_model.StatusApproved)
	if params.UserID > 0 {
		query = query.Where("user_id = ?", params.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var stories []app_model.PetStory
	offset := (params.Page - 1) * params.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(params.PageSize).Find(&stories).Error; err != nil {
		return nil, err
	}

	return &inout.ListRes{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		List:     stories,
	}, nil
}

// Like 点赞计数，原子自增
func (s *StoryService) Like(storyID uint) (int, error) {
	result := db.Dao.Model(&app_model.PetStory{}).
		Where("id = ? AND status = ?", storyID, app_model.StatusApproved).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var story app_model.PetStory
	if err := db.Dao.First(&story, storyID).Error; err != nil {
		return 0, err
	}
	return story.Likes, nil
}
