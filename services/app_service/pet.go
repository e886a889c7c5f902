package app_service

import (
	"errors"

	"petadot/db"
	"petadot/inout"
	"petadot/model/app_model"

	"gorm.io/gorm"
)

type PetService struct {
}

// Create 宠物登记，类别由控制层按路由传入
func (s *PetService) Create(uid uint, category string, params inout.CreatePetReq) (*IntakeResult, error) {
	sub, err := SubmitterFromUser(uid)
	if err != nil {
		return nil, err
	}

	pet := &app_model.Pet{
		Name:         params.Name,
		Species:      params.Species,
		Breed:        params.Breed,
		Color:        params.Color,
		Size:         params.Size,
		Gender:       params.Gender,
		Description:  params.Description,
		Category:     category,
		UserID:       sub.ID,
		City:         params.City,
		State:        params.State,
		MainImageURL: params.MainImageURL,
		ImageURLs:    app_model.StringArray(params.ImageURLs),
	}

	// 机构账号的登记挂到自己的机构档案下
	if sub.Role == app_model.UserTypeOng {
		var ong app_model.Ong
		if err := db.Dao.Where("user_id = ?", sub.ID).First(&ong).Error; err == nil {
			pet.OngID = ong.ID
		}
	}

	return SubmitContent(petRow{pet}, sub)
}

// List 公开宠物列表，只返回已过审内容
func (s *PetService) List(params inout.PetListReq) (*inout.ListRes, error) {
	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 10)

	query := db.Dao.Model(&app_model.Pet{}).Where("status = ?", app_model.StatusApproved)
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.City != "" {
		query = query.Where("city = ?", params.City)
	}
	if params.State != "" {
		query = query.Where("state = ?", params.State)
	}
	if params.Species != "" {
		query = query.Where("species = ?", params.Species)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var pets []app_model.Pet
	offset := (params.Page - 1) * params.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(params.PageSize).Find(&pets).Error; err != nil {
		return nil, err
	}

	return &inout.ListRes{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		List:     pets,
	}, nil
}

// Detail 按slug取详情，未过审内容只有提交者本人可见
func (s *PetService) Detail(slug string, viewerID uint) (*app_model.Pet, error) {
	var pet app_model.Pet
	if err := db.Dao.Where("slug = ?", slug).First(&pet).Error; err != nil {
		return nil, err
	}

	if pet.Status != app_model.StatusApproved && pet.UserID != viewerID {
		return nil, gorm.ErrRecordNotFound
	}

	return &pet, nil
}

// MyList 提交者自己的登记列表（含待审核和已拒绝）
func (s *PetService) MyList(uid uint, page, pageSize int) (*inout.ListRes, error) {
	if uid == 0 {
		return nil, errors.New("用户未登录")
	}
	page = max(page, 1)
	pageSize = max(pageSize, 10)

	query := db.Dao.Model(&app_model.Pet{}).Where("user_id = ?", uid)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var pets []app_model.Pet
	if err := query.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&pets).Error; err != nil {
		return nil, err
	}

	return &inout.ListRes{Total: total, Page: page, PageSize: pageSize, List: pets}, nil
}
