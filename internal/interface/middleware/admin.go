package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	"github.com/rizkydarmawan/goblog/pkg/response"
)

// AdminRequired gates the post-management routes. It must run after Auth;
// any identity without the admin role is rejected before the handler body,
// so a forbidden request never touches persistence.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRole) != string(entity.RoleAdmin) {
			response.Error[any](c, http.StatusForbidden, "forbidden", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
