package middleware

import (
	"petadot/pkg/jwt"
	"petadot/pkg/response"

	"github.com/gin-gonic/gin"
)

// Jwt 管理端中间件，检查token并要求管理员身份
func Jwt() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("Authorization")
		if token == "" {
			response.Abort(c, response.AUTH_ERROR, "请求未携带token，无权限访问")
			return
		}
		// 去掉Bearer前缀
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}
		claims, err := jwt.ParseAdminToken(token)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Abort(c, response.AUTH_ERROR, "授权已过期")
				return
			}
			response.Abort(c, response.AUTH_ERROR, err.Error())
			return
		}

		if !claims.IsAdmin {
			response.Abort(c, response.FORBIDDEN, "需要管理员权限")
			return
		}

		// 继续交由下一个路由处理,并将解析出的信息传递下去
		c.Set("uid", claims.UID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
