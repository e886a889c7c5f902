package app_service

import (
	"errors"
	"log"

	"petadot/db"
	"petadot/inout"
	"petadot/model/app_model"

	"gorm.io/gorm"
)

var (
	ErrOngExists   = errors.New("该账号已注册过机构")
	ErrNotOngOwner = errors.New("无权操作该机构")
)

type OngService struct {
}

// Create 机构注册，名称和简介同样过违禁词检查，slug两阶段分配
// 新机构默认未认证，认证由管理员操作
func (s *OngService) Create(uid uint, params inout.CreateOngReq) (*app_model.Ong, error) {
	sub, err := SubmitterFromUser(uid)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Dao.Model(&app_model.Ong{}).Where("user_id = ?", sub.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrOngExists
	}

	cfg, lookup := LoadModerationConfig()
	if lookup == LookupUnavailable {
		log.Printf("审核配置读取失败，机构注册放行 user=%d", sub.ID)
		RecordModerationAudit("fail_open", app_model.Ong{}.TableName(), 0, sub.ID, "")
	} else if result := CheckContent(params.Name+" "+params.Description, cfg); result.Blocked {
		RecordModerationAudit("blocked", app_model.Ong{}.TableName(), 0, sub.ID, result.MatchedKeyword)
		return nil, &ModerationBlockedError{Keyword: result.MatchedKeyword}
	}

	ong := &app_model.Ong{
		UserID:      sub.ID,
		Name:        params.Name,
		Description: params.Description,
		Email:       params.Email,
		Phone:       params.Phone,
		Website:     params.Website,
		City:        params.City,
		State:       params.State,
		LogoURL:     params.LogoURL,
	}

	// 与内容提交相同的两阶段slug写入
	base := BaseSlug(ong.Name, ong.City, 0)
	slug, err := UniqueSlug(db.Dao, ong.TableName(), base, 0)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}
	ong.Slug = slug

	if err := db.Dao.Create(ong).Error; err != nil {
		log.Printf("机构注册插入失败 user=%d: %v", sub.ID, err)
		return nil, &PersistenceError{Err: err}
	}

	final, err := UniqueSlug(db.Dao, ong.TableName(), BaseSlug(ong.Name, ong.City, ong.ID), ong.ID)
	if err == nil {
		if err := db.Dao.Model(ong).Update("slug", final).Error; err != nil {
			log.Printf("机构slug终写失败 id=%d: %v", ong.ID, err)
		} else {
			ong.Slug = final
		}
	}

	// 将账号标记为机构类型
	if err := db.Dao.Model(&app_model.AppUser{}).Where("id = ?", sub.ID).Update("type", app_model.UserTypeOng).Error; err != nil {
		log.Printf("账号类型更新失败 user=%d: %v", sub.ID, err)
	}

	InvalidatePublicRoutes("", "")
	return ong, nil
}

// Update 机构资料更新，仅机构所有者可操作，文本字段重新过违禁词检查
func (s *OngService) Update(uid, ongID uint, params inout.UpdateOngReq) (*app_model.Ong, error) {
	var ong app_model.Ong
	if err := db.Dao.First(&ong, ongID).Error; err != nil {
		return nil, err
	}
	if ong.UserID != uid {
		return nil, ErrNotOngOwner
	}

	name := ong.Name
	if params.Name != "" {
		name = params.Name
	}
	description := ong.Description
	if params.Description != "" {
		description = params.Description
	}

	cfg, lookup := LoadModerationConfig()
	if lookup == LookupUnavailable {
		log.Printf("审核配置读取失败，机构更新放行 ong=%d", ongID)
	} else if result := CheckContent(name+" "+description, cfg); result.Blocked {
		RecordModerationAudit("blocked", ong.TableName(), ong.ID, uid, result.MatchedKeyword)
		return nil, &ModerationBlockedError{Keyword: result.MatchedKeyword}
	}

	ong.Name = name
	ong.Description = description
	if params.Email != "" {
		ong.Email = params.Email
	}
	if params.Phone != "" {
		ong.Phone = params.Phone
	}
	if params.Website != "" {
		ong.Website = params.Website
	}
	if params.City != "" {
		ong.City = params.City
	}
	if params.State != "" {
		ong.State = params.State
	}
	if params.LogoURL != "" {
		ong.LogoURL = params.LogoURL
	}

	// 名称或城市变了就重算slug，id已存在所以一步到位
	if params.Name != "" || params.City != "" {
		slug, err := UniqueSlug(db.Dao, ong.TableName(), BaseSlug(ong.Name, ong.City, ong.ID), ong.ID)
		if err == nil {
			ong.Slug = slug
		}
	}

	if err := db.Dao.Save(&ong).Error; err != nil {
		log.Printf("机构更新失败 id=%d: %v", ong.ID, err)
		return nil, &PersistenceError{Err: err}
	}

	return &ong, nil
}

// Delete 注销机构，仅机构所有者可操作
func (s *OngService) Delete(uid, ongID uint) error {
	result := db.Dao.Where("id = ? AND user_id = ?", ongID, uid).Delete(&app_model.Ong{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// 账号退回个人类型
	if err := db.Dao.Model(&app_model.AppUser{}).Where("id = ?", uid).
		Updates(map[string]interface{}{"type": app_model.UserTypeIndividual, "is_verified": false}).Error; err != nil {
		log.Printf("账号类型回退失败 user=%d: %v", uid, err)
	}
	return nil
}

// List 公开机构列表
func (s *OngService) List(params inout.OngListReq) (*inout.ListRes, error) {
	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 10)

	query := db.Dao.Model(&app_model.Ong{})
	if params.City != "" {
		query = query.Where("city = ?", params.City)
	}
	if params.State != "" {
		query = query.Where("state = ?", params.State)
	}
	if params.Verified != nil {
		query = query.Where("is_verified = ?", *params.Verified)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var ongs []app_model.Ong
	offset := (params.Page - 1) * params.PageSize
	if err := query.Order("name ASC").Offset(offset).Limit(params.PageSize).Find(&ongs).Error; err != nil {
		return nil, err
	}

	return &inout.ListRes{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		List:     ongs,
	}, nil
}

// Detail 按slug取机构详情
func (s *OngService) Detail(slug string) (*app_model.Ong, error) {
	var ong app_model.Ong
	if err := db.Dao.Where("slug = ?", slug).First(&ong).Error; err != nil {
		return nil, err
	}
	return &ong, nil
}
