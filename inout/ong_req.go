package inout

// CreateOngReq 机构注册请求
type CreateOngReq struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	Website     string `json:"website" binding:"omitempty,url,max=255"`
	City        string `json:"city" binding:"required,max=100"`
	State       string `json:"state" binding:"required,uf"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url,max=500"`
}

// UpdateOngReq 机构资料更新请求
type UpdateOngReq struct {
	Name        string `json:"name" binding:"omitempty,max=200"`
	Description string `json:"description" binding:"omitempty"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	Website     string `json:"website" binding:"omitempty,url,max=255"`
	City        string `json:"city" binding:"omitempty,max=100"`
	State       string `json:"state" binding:"omitempty,uf"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url,max=500"`
}

// OngListReq 机构列表请求
type OngListReq struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=50"`
	City     string `form:"city" binding:"omitempty,max=100"`
	State    string `form:"state" binding:"omitempty,uf"`
	Verified *bool  `form:"verified" binding:"omitempty"`
}
