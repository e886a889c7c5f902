package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"petadot/api"
	"petadot/controllers/admin"
	"petadot/controllers/app"
	"petadot/middleware"
)

func Init(r *gin.Engine) {
	// 使用 cookie 存储会话数据
	r.Use(sessions.Sessions("mysession", cookie.NewStore([]byte("captch"))))
	r.Use(middleware.Cors())

	// 公开接口，无需登录
	publicGroup := r.Group("")
	{
		publicGroup.POST("/auth/register", api.Auth.Register)
		publicGroup.POST("/auth/login", api.Auth.Login)
		publicGroup.POST("/auth/refresh", api.Auth.Refresh)
		publicGroup.GET("/auth/captcha", api.Auth.Captcha)

		publicGroup.GET("/pets", app.GetPetList)
		publicGroup.GET("/events", app.GetEventList)
		publicGroup.GET("/ongs", app.GetOngList)
		publicGroup.GET("/ongs/:slug", app.GetOngDetail)
		publicGroup.GET("/stories", app.GetStoryList)

		// 详情页可选鉴权：内容归属人可以看到自己待审核的内容
		publicGroup.GET("/pets/:slug", middleware.JwtOptional(), app.GetPetDetail)
		publicGroup.GET("/events/:slug", middleware.JwtOptional(), app.GetEventDetail)
	}

	// App端接口，需登录
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.JwtAPP())
	{
		apiGroup.POST("/auth/logout", api.Auth.Logout)

		apiGroup.POST("/pets/adoption", app.CreateAdoptionPet)
		apiGroup.POST("/pets/lost", app.CreateLostPet)
		apiGroup.POST("/pets/found", app.CreateFoundPet)
		apiGroup.GET("/pets/mine", app.GetMyPets)

		apiGroup.POST("/events", app.CreateEvent)

		apiGroup.POST("/ongs", app.CreateOng)
		apiGroup.PATCH("/ongs/:id", app.UpdateOng)
		apiGroup.DELETE("/ongs/:id", app.DeleteOng)

		apiGroup.POST("/stories", app.CreateStory)
		apiGroup.POST("/stories/:id/like", app.LikeStory)
	}

	// 管理端接口，需管理员身份
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.Jwt())
	{
		adminGroup.GET("/pending", admin.GetPendingList)
		adminGroup.POST("/review/approve", admin.ApproveItem)
		adminGroup.POST("/review/reject", admin.RejectItem)

		adminGroup.GET("/moderation/keywords", admin.GetKeywords)
		adminGroup.POST("/moderation/keywords", admin.AddKeyword)
		adminGroup.PATCH("/moderation/keywords/:id", admin.UpdateKeyword)
		adminGroup.DELETE("/moderation/keywords/:id", admin.DeleteKeyword)
		adminGroup.GET("/moderation/setting", admin.GetModerationSetting)
		adminGroup.PATCH("/moderation/setting", admin.UpdateModerationSetting)

		adminGroup.POST("/ongs/:id/verify", admin.VerifyOng)
		adminGroup.POST("/slugs/reconcile", admin.ReconcileSlugs)
	}
}
