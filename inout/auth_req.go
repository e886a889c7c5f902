package inout

// LoginReq 登录请求
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Captcha  string `json:"captcha" binding:"required"`
}

// RegisterReq 注册请求
type RegisterReq struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Type     string `json:"type" binding:"omitempty,oneof=individual ong"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	City     string `json:"city" binding:"omitempty,max=100"`
	State    string `json:"state" binding:"omitempty,uf"`
}

// RefreshReq 令牌刷新请求
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LoginRes 登录响应，刷新令牌有效期更长
type LoginRes struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	IsAdmin      bool   `json:"isAdmin"`
}
