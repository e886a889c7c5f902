package app_service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"petadot/pkg/monitoring"
	"petadot/utils"

	"gorm.io/gorm"
)

// BaseSlug 从名称、城市和可选id派生slug
// 首次插入时id尚不存在（传0），入库后用自身id重新派生一次
func BaseSlug(name, city string, id uint) string {
	parts := make([]string, 0, 3)
	if s := utils.Slugify(name); s != "" {
		parts = append(parts, s)
	}
	if s := utils.Slugify(city); s != "" {
		parts = append(parts, s)
	}
	if id > 0 {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	if len(parts) == 0 {
		return "item"
	}
	return strings.Join(parts, "-")
}

// UniqueSlug 在目标表内解决slug冲突：已占用时追加 -2、-3 递增后缀
// excludeID 用于更新场景排除自身记录
func UniqueSlug(tx *gorm.DB, table, base string, excludeID uint) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		query := tx.Table(table).Where("slug = ?", candidate)
		if excludeID > 0 {
			query = query.Where("id <> ?", excludeID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}

		monitoring.RecordSlugCollision()
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// IsDuplicateSlugErr 判断写入错误是否为slug唯一索引冲突
// 预检查到写入之间存在竞态窗口，唯一索引是最终兜底，冲突作为换后缀重试的信号
func IsDuplicateSlugErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
