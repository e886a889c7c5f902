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

var reviewService = &admin_service.ReviewService{}

// GetPendingList 待审核队列
func GetPendingList(c *gin.Context) {
	var req inout.PendingListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	data, err := reviewService.Pending(req)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}

	response.Success(c, data)
}

// ApproveItem 过审
func ApproveItem(c *gin.Context) {
	reviewItem(c, reviewService.Approve)
}

// RejectItem 驳回
func RejectItem(c *gin.Context) {
	reviewItem(c, reviewService.Reject)
}

func reviewItem(c *gin.Context, fn func(uint, inout.ReviewItemReq) error) {
	var req inout.ReviewItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	if err := fn(c.GetUint("uid"), req); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, response.NOT_FOUND)
		case errors.Is(err, admin_service.ErrUnknownItemType):
			response.Error(c, response.INVALID_PARAMS, err.Error())
		default:
			response.Error(c, response.ERROR, err.Error())
		}
		return
	}

	response.Success(c, true)
}

// VerifyOng 机构认证
func VerifyOng(c *gin.Context) {
	ongID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, "无效的机构ID")
		return
	}

	if err := reviewService.VerifyOng(c.GetUint("uid"), uint(ongID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, response.NOT_FOUND)
			return
		}
		response.Error(c, response.ERROR, err.Error())
		return
	}

	response.Success(c, true)
}

// ReconcileSlugs 补写未完成第二阶段的slug
func ReconcileSlugs(c *gin.Context) {
	fixed, err := reviewService.ReconcileSlugs()
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}

	response.Success(c, gin.H{"fixed": fixed})
}
