package inout

// CreatePetReq 宠物登记请求（领养/走失/发现共用，类别由路由决定）
type CreatePetReq struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Species      string   `json:"species" binding:"omitempty,max=50"`
	Breed        string   `json:"breed" binding:"omitempty,max=100"`
	Color        string   `json:"color" binding:"omitempty,max=50"`
	Size         string   `json:"size" binding:"omitempty,oneof=small medium large"`
	Gender       string   `json:"gender" binding:"omitempty,oneof=male female unknown"`
	Description  string   `json:"description" binding:"required"`
	City         string   `json:"city" binding:"required,max=100"`
	State        string   `json:"state" binding:"required,uf"`
	MainImageURL string   `json:"main_image_url" binding:"omitempty,url,max=500"`
	ImageURLs    []string `json:"image_urls" binding:"omitempty,max=9,dive,url"`
}

// PetListReq 宠物列表请求
type PetListReq struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=50"`
	Category string `form:"category" binding:"omitempty,oneof=adoption lost found"`
	City     string `form:"city" binding:"omitempty,max=100"`
	State    string `form:"state" binding:"omitempty,uf"`
	Species  string `form:"species" binding:"omitempty,max=50"`
}
