package app_service

import (
	"petadot/db"
	"petadot/inout"
	"petadot/model/app_model"

	"gorm.io/gorm"
)

type EventService struct {
}

// Create 活动登记
func (s *EventService) Create(uid uint, params inout.CreateEventReq) (*IntakeResult, error) {
	sub, err := SubmitterFromUser(uid)
	if err != nil {
		return nil, err
	}

	event := &app_model.Event{
		Name:        params.Name,
		Description: params.Description,
		Date:        params.Date,
		Location:    params.Location,
		City:        params.City,
		State:       params.State,
		UserID:      sub.ID,
		ImageURL:    params.ImageURL,
	}

	return SubmitContent(eventRow{event}, sub)
}

// List 公开活动列表，只返回已过审内容，按活动日期升序
func (s *EventService) List(params inout.EventListReq) (*inout.ListRes, error) {
	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 10)

	query := db.Dao.Model(&app_model.Event{}).Where("status = ?", app_model.StatusApproved)
	if params.City != "" {
		query = query.Where("city = ?", params.City)
	}
	if params.State != "" {
		query = query.Where("state = ?", params.State)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var events []app_model.Event
	offset := (params.Page - 1) * params.PageSize
	if err := query.Order("date ASC").Offset(offset).Limit(params.PageSize).Find(&events).Error; err != nil {
		return nil, err
	}

	return &inout.ListRes{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		List:     events,
	}, nil
}

// Detail 按slug取活动详情，未过审内容只有提交者本人可见
func (s *EventService) Detail(slug string, viewerID uint) (*app_model.Event, error) {
	var event app_model.Event
	if err := db.Dao.Where("slug = ?", slug).First(&event).Error; err != nil {
		return nil, err
	}

	if event.Status != app_model.StatusApproved && event.UserID != viewerID {
		return nil, gorm.ErrRecordNotFound
	}

	return &event, nil
}
