package app_service

import (
	"errors"
	"fmt"
	"log"

	"petadot/db"
	"petadot/model/app_model"
	"petadot/pkg/monitoring"

	"gorm.io/gorm"
)

// Submitter 提交者身份，由控制层从JWT上下文解析
type Submitter struct {
	ID   uint
	Role string // individual 或 ong
}

// SubmissionRow 经过提交管道的内容行
// pets/events/pet_stories通过各自的适配器实现
type SubmissionRow interface {
	TableName() string
	Model() interface{}
	RowID() uint
	Category() string
	ModeratedText() string
	HasSlug() bool
	SlugSource() (name, city string)
	CurrentSlug() string
	ApplySlug(slug string, finalized bool)
	ApplyStatus(status app_model.ReviewStatus)
}

// IntakeResult 提交成功的结果
type IntakeResult struct {
	ID     uint
	Slug   string
	Status app_model.ReviewStatus
}

// SubmitterFromUser 从用户记录构造提交者身份
func SubmitterFromUser(uid uint) (Submitter, error) {
	if uid == 0 {
		return Submitter{}, ErrNotAuthenticated
	}

	var user app_model.AppUser
	if err := db.Dao.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Submitter{}, ErrNotAuthenticated
		}
		return Submitter{}, err
	}

	return Submitter{ID: user.ID, Role: user.Type}, nil
}

// SubmitContent 内容提交管道
// 顺序固定：身份 → 违禁词检查 → 状态判定 → 基础slug+插入 → 最终slug → 缓存失效
// 插入成功之后的任何失败都不再让提交失败
func SubmitContent(row SubmissionRow, sub Submitter) (*IntakeResult, error) {
	if sub.ID == 0 {
		return nil, ErrNotAuthenticated
	}

	// 违禁词检查。配置读取失败时选择fail-open：
	// 配置库不可用绝不能拦下正常内容，只记日志和审核事件
	cfg, lookup := LoadModerationConfig()
	if lookup == LookupUnavailable {
		log.Printf("审核配置读取失败，本次提交放行 table=%s user=%d", row.TableName(), sub.ID)
		RecordModerationAudit("fail_open", row.TableName(), 0, sub.ID, "")
	} else if result := CheckContent(row.ModeratedText(), cfg); result.Blocked {
		monitoring.RecordModerationBlock()
		monitoring.RecordSubmission(row.Category(), "blocked")
		RecordModerationAudit("blocked", row.TableName(), 0, sub.ID, result.MatchedKeyword)
		return nil, &ModerationBlockedError{Keyword: result.MatchedKeyword}
	}

	// 机构账号的提交直接过审，个人提交进入待审核队列
	status := app_model.StatusPending
	if sub.Role == app_model.UserTypeOng {
		status = app_model.StatusApproved
	}
	row.ApplyStatus(status)

	// 第一阶段：不含id的slug插入（此时id还不存在）
	// 没有slug字段的内容（故事）直接插入
	name, city := row.SlugSource()
	var insertErr error
	if row.HasSlug() {
		insertErr = insertWithUniqueSlug(row, BaseSlug(name, city, 0))
	} else {
		insertErr = db.Dao.Create(row.Model()).Error
	}
	if insertErr != nil {
		monitoring.RecordSubmission(row.Category(), "failed")
		log.Printf("内容插入失败 table=%s user=%d: %v", row.TableName(), sub.ID, insertErr)
		return nil, &PersistenceError{Err: insertErr}
	}

	// 第二阶段：用自身id重写slug，保证同名同城的并发提交最终必然分叉
	// 失败不致命，记录保持基础slug可达，等后台reconcile补写
	var slug string
	if row.HasSlug() {
		var err error
		slug, err = finalizeSlug(row, BaseSlug(name, city, row.RowID()))
		if err != nil {
			log.Printf("slug终写失败，记录保持基础slug table=%s id=%d: %v",
				row.TableName(), row.RowID(), err)
			slug = row.CurrentSlug()
		}
	}

	InvalidatePublicRoutes(row.Category(), slug)
	monitoring.RecordSubmission(row.Category(), string(status))

	return &IntakeResult{ID: row.RowID(), Slug: slug, Status: status}, nil
}

// insertWithUniqueSlug 预检查选slug后插入
// 预检查和插入之间并发提交可能撞车，唯一索引报冲突就换下一个后缀重来
func insertWithUniqueSlug(row SubmissionRow, base string) error {
	for attempt := 0; attempt < 5; attempt++ {
		slug, err := UniqueSlug(db.Dao, row.TableName(), base, 0)
		if err != nil {
			return err
		}
		row.ApplySlug(slug, false)

		err = db.Dao.Create(row.Model()).Error
		if err == nil {
			return nil
		}
		if !IsDuplicateSlugErr(err) {
			return err
		}
		monitoring.RecordSlugCollision()
	}
	return fmt.Errorf("slug冲突重试次数用尽: %s", base)
}

// finalizeSlug 第二阶段slug更新，同样按唯一索引冲突重试
func finalizeSlug(row SubmissionRow, base string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		slug, err := UniqueSlug(db.Dao, row.TableName(), base, row.RowID())
		if err != nil {
			return "", err
		}

		err = db.Dao.Table(row.TableName()).
			Where("id = ?", row.RowID()).
			Updates(map[string]interface{}{"slug": slug, "slug_finalized": true}).Error
		if err == nil {
			row.ApplySlug(slug, true)
			return slug, nil
		}
		if !IsDuplicateSlugErr(err) {
			return "", err
		}
		monitoring.RecordSlugCollision()
	}
	return "", fmt.Errorf("slug终写冲突重试次数用尽: %s", base)
}
