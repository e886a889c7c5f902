package app

import (
	"strconv"

	"petadot/inout"
	"petadot/pkg/response"
	"petadot/services/app_service"

	"github.com/gin-gonic/gin"
)

var storyService = &app_service.StoryService{}

// CreateStory 发布领养故事
func CreateStory(c *gin.Context) {
	var req inout.CreateStoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	result, err := storyService.Create(c.GetUint("uid"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, inout.SubmissionRes{
		ID:     result.ID,
		Status: string(result.Status),
	})
}

// GetStoryList 公开故事列表
func GetStoryList(c *gin.Context) {
	var req inout.StoryListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	data, err := storyService.List(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, data)
}

// LikeStory 点赞
func LikeStory(c *gin.Context) {
	storyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, "无效的故事ID")
		return
	}

	likes, err := storyService.Like(uint(storyID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"likes": likes})
}
