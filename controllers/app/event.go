package app

import (
	"petadot/inout"
	"petadot/pkg/response"
	"petadot/services/app_service"

	"github.com/gin-gonic/gin"
)

var eventService = &app_service.EventService{}

// CreateEvent 活动登记
func CreateEvent(c *gin.Context) {
	var req inout.CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	result, err := eventService.Create(c.GetUint("uid"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, inout.SubmissionRes{
		ID:     result.ID,
		Slug:   result.Slug,
		Status: string(result.Status),
	})
}

// GetEventList 公开活动列表
func GetEventList(c *gin.Context) {
	var req inout.EventListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	data, err := eventService.List(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, data)
}

// GetEventDetail 按slug获取活动详情
func GetEventDetail(c *gin.Context) {
	event, err := eventService.Detail(c.Param("slug"), c.GetUint("uid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, event)
}
