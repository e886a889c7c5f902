package admin_service

import (
	"errors"
	"log"

	"petadot/db"
	"petadot/inout"
	"petadot/model/app_model"
	"petadot/pkg/monitoring"
	"petadot/services/app_service"
)

var ErrUnknownItemType = errors.New("未知的审核内容类型")

type ReviewService struct {
}

// Approve 过审，内容进入公开列表
func (s *ReviewService) Approve(adminID uint, params inout.ReviewItemReq) error {
	return s.review(adminID, params, app_model.StatusApproved, "approved")
}

// Reject 驳回，无论当前处于什么状态
func (s *ReviewService) Reject(adminID uint, params inout.ReviewItemReq) error {
	return s.review(adminID, params, app_model.StatusRejected, "rejected")
}

func (s *ReviewService) review(adminID uint, params inout.ReviewItemReq, status app_model.ReviewStatus, action string) error {
	switch params.Type {
	case app_model.CategoryAdoption, app_model.CategoryLost, app_model.CategoryFound:
		var pet app_model.Pet
		err := db.Dao.Where("id = ? AND category = ?", params.ItemID, params.Type).First(&pet).Error
		if err != nil {
			return err
		}
		if err := db.Dao.Model(&pet).Update("status", status).Error; err != nil {
			return err
		}
		app_service.InvalidatePublicRoutes(pet.Category, pet.Slug)
		app_service.RecordModerationAudit(action, pet.TableName(), pet.ID, adminID, "")

	case app_model.CategoryEvent:
		var event app_model.Event
		if err := db.Dao.First(&event, params.ItemID).Error; err != nil {
			return err
		}
		if err := db.Dao.Model(&event).Update("status", status).Error; err != nil {
			return err
		}
		app_service.InvalidatePublicRoutes(app_model.CategoryEvent, event.Slug)
		app_service.RecordModerationAudit(action, event.TableName(), event.ID, adminID, "")

	case app_model.CategoryStory:
		var story app_model.PetStory
		if err := db.Dao.First(&story, params.ItemID).Error; err != nil {
			return err
		}
		if err := db.Dao.Model(&story).Update("status", status).Error; err != nil {
			return err
		}
		app_service.InvalidatePublicRoutes(app_model.CategoryStory, "")
		app_service.RecordModerationAudit(action, story.TableName(), story.ID, adminID, "")

	default:
		return ErrUnknownItemType
	}

	monitoring.RecordReviewAction(action)
	return nil
}

// Pending 待审核队列
func (s *ReviewService) Pending(params inout.PendingListReq) (*inout.ListRes, error) {
	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 10)
	offset := (params.Page - 1) * params.PageSize

	var total int64
	var list interface{}

	switch params.Type {
	case "pet":
		query := db.Dao.Model(&app_model.Pet{}).Where("status = ?", app_model.StatusPending)
		if err := query.Count(&total).Error; err != nil {
			return nil, err
		}
		var pets []app_model.Pet
		if err := query.Order("created_at ASC").Offset(offset).Limit(params.PageSize).Find(&pets).Error; err != nil {
			return nil, err
		}
		list = pets

	case "event":
		query := db.Dao.Model(&app_model.Event{}).Where("status = ?", app_model.StatusPending)
		if err := query.Count(&total).Error; err != nil {
			return nil, err
		}
		var events []app_model.Event
		if err := query.Order("created_at ASC").Offset(offset).Limit(params.PageSize).Find(&events).Error; err != nil {
			return nil, err
		}
		list = events

	case "story":
		query := db.Dao.Model(&app_model.PetStory{}).Where("status = ?", app_model.StatusPending)
		if err := query.Count(&total).Error; err != nil {
			return nil, err
		}
		var stories []app_model.PetStory
		if err := query.Order("created_at ASC").Offset(offset).Limit(params.PageSize).Find(&stories).Error; err != nil {
			return nil, err
		}
		list = stories

	default:
		return nil, ErrUnknownItemType
	}

	return &inout.ListRes{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		List:     list,
	}, nil
}

// VerifyOng 认证机构，认证标记作为公开的信任标识展示
func (s *ReviewService) VerifyOng(adminID, ongID uint) error {
	var ong app_model.Ong
	if err := db.Dao.First(&ong, ongID).Error; err != nil {
		return err
	}

	if err := db.Dao.Model(&ong).Update("is_verified", true).Error; err != nil {
		return err
	}
	if err := db.Dao.Model(&app_model.AppUser{}).Where("id = ?", ong.UserID).
		Update("is_verified", true).Error; err != nil {
		return err
	}

	app_service.RecordModerationAudit("ong_verified", ong.TableName(), ong.ID, adminID, "")
	return nil
}

// ReconcileSlugs 补写卡在第一阶段的slug
// 插入和slug终写之间崩溃会留下slug_finalized=false的记录，这里重跑第二阶段
func (s *ReviewService) ReconcileSlugs() (int, error) {
	fixed := 0

	var pets []app_model.Pet
	if err := db.Dao.Where("slug_finalized = ?", false).Find(&pets).Error; err != nil {
		return 0, err
	}
	for i := range pets {
		pet := &pets[i]
		slug, err := app_service.UniqueSlug(db.Dao, pet.TableName(),
			app_service.BaseSlug(pet.Name, pet.City, pet.ID), pet.ID)
		if err != nil {
			log.Printf("slug补写失败 pets id=%d: %v", pet.ID, err)
			continue
		}
		if err := db.Dao.Model(pet).
			Updates(map[string]interface{}{"slug": slug, "slug_finalized": true}).Error; err != nil {
			log.Printf("slug补写失败 pets id=%d: %v", pet.ID, err)
			continue
		}
		fixed++
	}

	var events []app_model.Event
	if err := db.Dao.Where("slug_finalized = ?", false).Find(&events).Error; err != nil {
		return fixed, err
	}
	for i := range events {
		event := &events[i]
		slug, err := app_service.UniqueSlug(db.Dao, event.TableName(),
			app_service.BaseSlug(event.Name, event.City, event.ID), event.ID)
		if err != nil {
			log.Printf("slug补写失败 events id=%d: %v", event.ID, err)
			continue
		}
		if err := db.Dao.Model(event).
			Updates(map[string]interface{}{"slug": slug, "slug_finalized": true}).Error; err != nil {
			log.Printf("slug补写失败 events id=%d: %v", event.ID, err)
			continue
		}
		fixed++
	}

	return fixed, nil
}
