package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rizkydarmawan/goblog/internal/application"
	"github.com/rizkydarmawan/goblog/pkg/helpers"
	"github.com/rizkydarmawan/goblog/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID    = "userID"
	CtxUserName  = "userName"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// Auth validates the access-token cookie and ensures a live session exists
// in Redis whose session id matches the token's. On success the resolved
// identity is placed in the Gin context; handlers never consult any global
// "current user" state.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}

		data, err := rdb.HGetAll(c.Request.Context(), application.SessionKey(claims.UserID)).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		uid, err := strconv.ParseInt(data["user_id"], 10, 64)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "corrupt session", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserID, uid)
		c.Set(CtxUserName, data["name"])
		c.Set(CtxUserEmail, data["email"])
		c.Set(CtxUserRole, data["role"])
		c.Next()
	}
}
