package app

import (
	"errors"
	"strconv"

	"petadot/inout"
	"petadot/pkg/response"
	"petadot/services/app_service"

	"github.com/gin-gonic/gin"
)

var ongService = &app_service.OngService{}

// CreateOng 机构注册
func CreateOng(c *gin.Context) {
	var req inout.CreateOngReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	ong, err := ongService.Create(c.GetUint("uid"), req)
	if err != nil {
		if errors.Is(err, app_service.ErrOngExists) {
			response.Error(c, response.INVALID_PARAMS, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	response.Success(c, ong)
}

// UpdateOng 机构资料更新
func UpdateOng(c *gin.Context) {
	ongID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, "无效的机构ID")
		return
	}

	var req inout.UpdateOngReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	ong, err := ongService.Update(c.GetUint("uid"), uint(ongID), req)
	if err != nil {
		if errors.Is(err, app_service.ErrNotOngOwner) {
			response.Error(c, response.FORBIDDEN, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	response.Success(c, ong)
}

// DeleteOng 机构注销
func DeleteOng(c *gin.Context) {
	ongID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, "无效的机构ID")
		return
	}

	if err := ongService.Delete(c.GetUint("uid"), uint(ongID)); err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, true)
}

// GetOngList 公开机构列表
func GetOngList(c *gin.Context) {
	var req inout.OngListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	data, err := ongService.List(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, data)
}

// GetOngDetail 按slug获取机构详情
func GetOngDetail(c *gin.Context) {
	ong, err := ongService.Detail(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, ong)
}
