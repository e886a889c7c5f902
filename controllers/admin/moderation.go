package admin

import (
	"errors"
	"strconv"

	"petadot/inout"
	"petadot/pkg/response"
	"petadot/services/admin_service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var moderationService = &admin_service.ModerationService{}

// GetKeywords 违禁词列表
func GetKeywords(c *gin.Context) {
	var req inout.KeywordListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	data, err := moderationService.Keywords(req)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}

	response.Success(c, data)
}

// AddKeyword 新增违禁词
func AddKeyword(c *gin.Context) {
	var req inout.AddKeywordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	keyword, err := moderationService.AddKeyword(req)
	if err != nil {
		if errors.Is(err, admin_service.ErrKeywordExists) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		response.Error(c, response.ERROR, err.Error())
		return
	}

	response.Success(c, keyword)
}

// UpdateKeyword 更新违禁词
func UpdateKeyword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, "无效的违禁词ID")
		return
	}

	var req inout.UpdateKeywordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	keyword, err := moderationService.UpdateKeyword(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, response.NOT_FOUND)
		case errors.Is(err, admin_service.ErrKeywordExists):
			response.Error(c, response.INVALID_PARAMS, err.Error())
		default:
			response.Error(c, response.ERROR, err.Error())
		}
		return
	}

	response.Success(c, keyword)
}

// DeleteKeyword 删除违禁词
func DeleteKeyword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, "无效的违禁词ID")
		return
	}

	if err := moderationService.DeleteKeyword(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, response.NOT_FOUND)
			return
		}
		response.Error(c, response.ERROR, err.Error())
		return
	}

	response.Success(c, true)
}

// GetModerationSetting 审核开关状态
func GetModerationSetting(c *gin.Context) {
	data, err := moderationService.GetSetting()
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}

	response.Success(c, data)
}

// UpdateModerationSetting 审核开关upsert
func UpdateModerationSetting(c *gin.Context) {
	var req inout.UpdateModerationSettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	data, err := moderationService.UpdateSetting(req)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}

	response.Success(c, data)
}
