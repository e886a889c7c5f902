package api

import (
	"errors"
	"net/http"

	"petadot/db"
	"petadot/inout"
	"petadot/model/app_model"
	"petadot/pkg/config"
	"petadot/pkg/jwt"
	"petadot/pkg/monitoring"
	"petadot/pkg/response"
	"petadot/pkg/security"
	"petadot/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var Auth = &auth{}

type auth struct {
}

// Captcha 登录验证码，code存在cookie会话里
func (auth) Captcha(c *gin.Context) {
	svg, code := utils.GenerateSVG(80, 40)
	session := sessions.Default(c)
	session.Set("captch", code)
	session.Save()
	c.Header("Content-Type", "image/svg+xml; charset=utf-8")
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

// Register 用户注册
func (auth) Register(c *gin.Context) {
	var params inout.RegisterReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	hash, err := security.HashPassword(params.Password)
	if err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	userType := params.Type
	if userType == "" {
		userType = app_model.UserTypeIndividual
	}

	user := app_model.AppUser{
		Type:     userType,
		Name:     params.Name,
		Email:    params.Email,
		Password: hash,
		Phone:    params.Phone,
		City:     params.City,
		State:    params.State,
	}

	if err := db.Dao.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(c, response.INVALID_PARAMS, "邮箱已被注册")
			return
		}
		response.Error(c, response.ERROR, "注册失败")
		return
	}

	response.Success(c, gin.H{"id": user.ID})
}

// Login 登录，通过后签发App端JWT；管理员额外签发管理端JWT
func (auth) Login(c *gin.Context) {
	var params inout.LoginReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	session := sessions.Default(c)
	if params.Captcha != session.Get("captch") {
		response.Error(c, response.INVALID_PARAMS, "验证码不正确")
		return
	}

	var user app_model.AppUser
	if err := db.Dao.Where("email = ?", params.Email).First(&user).Error; err != nil {
		response.Error(c, response.AUTH_ERROR, "账号或密码不正确")
		return
	}

	if !security.CheckPasswordHash(params.Password, user.Password) {
		response.Error(c, response.AUTH_ERROR, "账号或密码不正确")
		return
	}

	tokenType := jwt.TokenTypeApp
	if user.IsAdmin {
		tokenType = jwt.TokenTypeAdmin
	}
	manager := jwt.NewJWTManager(tokenType)
	token, err := manager.GenerateToken(user.ID, user.Type, user.IsAdmin)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, "生成令牌失败")
		return
	}
	refresh, err := manager.GenerateToken(user.ID, user.Type, user.IsAdmin, config.GetConfig().JWT.RefreshExpiry)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, "生成令牌失败")
		return
	}

	monitoring.RecordUserLogin()
	response.Success(c, inout.LoginRes{
		AccessToken:  token,
		RefreshToken: refresh,
		IsAdmin:      user.IsAdmin,
	})
}

// Refresh 用刷新令牌换取新的一对令牌
func (auth) Refresh(c *gin.Context) {
	var params inout.RefreshReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	tokenType := jwt.TokenTypeApp
	claims, err := jwt.ParseAppToken(params.RefreshToken)
	if err != nil {
		tokenType = jwt.TokenTypeAdmin
		claims, err = jwt.ParseAdminToken(params.RefreshToken)
	}
	if err != nil {
		response.Error(c, response.AUTH_ERROR, "刷新令牌无效或已过期")
		return
	}

	manager := jwt.NewJWTManager(tokenType)
	token, err := manager.GenerateToken(claims.UID, claims.Role, claims.IsAdmin)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, "生成令牌失败")
		return
	}
	refresh, err := manager.GenerateToken(claims.UID, claims.Role, claims.IsAdmin, config.GetConfig().JWT.RefreshExpiry)
	if err != nil {
		response.Error(c, response.INTERNAL_ERROR, "生成令牌失败")
		return
	}

	response.Success(c, inout.LoginRes{
		AccessToken:  token,
		RefreshToken: refresh,
		IsAdmin:      claims.IsAdmin,
	})
}

// Logout 登出，JWT无状态，仅清掉会话
func (auth) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	response.Success(c, true)
}
