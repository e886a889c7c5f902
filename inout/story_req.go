package inout

// CreateStoryReq 领养故事发布请求
type CreateStoryReq struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
	PetID   uint   `json:"pet_id" binding:"omitempty"`
}

// StoryListReq 领养故事列表请求
type StoryListReq struct {
	Page     int  `form:"page" binding:"omitempty,min=1"`
	PageSize int  `form:"page_size" binding:"omitempty,min=1,max=50"`
	UserID   uint `form:"user_id" binding:"omitempty"`
}
