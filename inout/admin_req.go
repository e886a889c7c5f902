package inout

// ReviewItemReq 审核请求（approve/reject通用）
// Type 取值：adoption、lost、found映射pets表，event映射events表，story映射pet_stories表
type ReviewItemReq struct {
	ItemID uint   `json:"item_id" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=adoption lost found event story"`
}

// PendingListReq 待审核队列请求
type PendingListReq struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=50"`
	Type     string `form:"type" binding:"required,oneof=pet event story"`
}

// AddKeywordReq 新增违禁词请求
type AddKeywordReq struct {
	Keyword  string `json:"keyword" binding:"required,max=100"`
	IsActive *bool  `json:"is_active" binding:"omitempty"`
}

// UpdateKeywordReq 更新违禁词请求
type UpdateKeywordReq struct {
	Keyword  string `json:"keyword" binding:"omitempty,max=100"`
	IsActive *bool  `json:"is_active" binding:"omitempty"`
}

// KeywordListReq 违禁词列表请求
type KeywordListReq struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UpdateModerationSettingReq 审核开关更新请求
type UpdateModerationSettingReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
