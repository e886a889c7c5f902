package app

import (
	"errors"

	"petadot/pkg/response"
	"petadot/services/app_service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondServiceError 把服务层错误映射为统一响应码
func respondServiceError(c *gin.Context, err error) {
	var blocked *app_service.ModerationBlockedError
	var persist *app_service.PersistenceError

	switch {
	case errors.Is(err, app_service.ErrNotAuthenticated):
		response.Error(c, response.AUTH_ERROR, err.Error())
	case errors.As(err, &blocked):
		// 拦截信息带上命中的词，提交者能看到拦截原因
		response.Error(c, response.MODERATION_BLOCKED, blocked.Error())
	case errors.As(err, &persist):
		response.Error(c, response.ERROR, persist.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, response.NOT_FOUND)
	default:
		response.Error(c, response.ERROR, err.Error())
	}
}
