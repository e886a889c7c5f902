package inout

import "time"

// CreateEventReq 活动登记请求
type CreateEventReq struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required,max=255"`
	City        string    `json:"city" binding:"required,max=100"`
	State       string    `json:"state" binding:"required,uf"`
	ImageURL    string    `json:"image_url" binding:"omitempty,url,max=500"`
}

// EventListReq 活动列表请求
type EventListReq struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=50"`
	City     string `form:"city" binding:"omitempty,max=100"`
	State    string `form:"state" binding:"omitempty,uf"`
}
