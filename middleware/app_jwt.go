package middleware

import (
	"petadot/pkg/jwt"
	"petadot/pkg/response"

	"github.com/gin-gonic/gin"
)

// JwtAPP App端中间件，检查token
func JwtAPP() gin.HandlerFunc {
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
		claims, err := jwt.ParseAppToken(token)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Abort(c, response.AUTH_ERROR, "授权已过期")
				return
			}
			response.Abort(c, response.AUTH_ERROR, err.Error())
			return
		}

		// 继续交由下一个路由处理,并将解析出的信息传递下去
		c.Set("uid", claims.UID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// JwtOptional 可选鉴权，带token则解析出uid，不带照常放行。
// 详情接口需要它来区分游客和内容归属人。
func JwtOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("Authorization")
		if token == "" {
			c.Next()
			return
		}
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}
		claims, err := jwt.ParseAppToken(token)
		if err != nil {
			// token无效按游客处理
			c.Next()
			return
		}
		c.Set("uid", claims.UID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
