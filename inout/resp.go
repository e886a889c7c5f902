package inout

// ListRes 分页列表响应
type ListRes struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	List     interface{} `json:"list"`
}

// SubmissionRes 内容提交响应
type SubmissionRes struct {
	ID     uint   `json:"id"`
	Slug   string `json:"slug"`
	Status string `json:"status"`
}

// ModerationSettingRes 审核开关响应
type ModerationSettingRes struct {
	Enabled bool `json:"enabled"`
}
