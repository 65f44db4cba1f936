package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/rizkydarmawan/goblog/internal/container"
	handlers "github.com/rizkydarmawan/goblog/internal/interface/http"
	"github.com/rizkydarmawan/goblog/internal/interface/middleware"
	"github.com/rizkydarmawan/goblog/pkg/helpers"
)

// BlogModule wires the post and comment routes.
// Public: GET /api/posts, GET /api/posts/:id
// Authenticated: POST /api/posts/:id/comments
// Admin: POST/PUT/DELETE /api/posts, POST /api/posts/cover-image
type BlogModule struct {
	Posts    *handlers.PostHandler
	Comments *handlers.CommentHandler
	JWT      *helpers.JWTManager
}

func NewBlogModule(posts *handlers.PostHandler, comments *handlers.CommentHandler, jwt *helpers.JWTManager) *BlogModule {
	return &BlogModule{Posts: posts, Comments: comments, JWT: jwt}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", m.Posts.List)
	rg.GET("/posts/:id", m.Posts.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/posts/:id/comments", m.Comments.Create)

		// Post management requires the admin role; the guard runs before the
		// handlers so a forbidden request performs no persistence work.
		admin := auth.Group("/")
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("/posts", m.Posts.Create)
			admin.PUT("/posts/:id", m.Posts.Update)
			admin.DELETE("/posts/:id", m.Posts.Delete)
			admin.POST("/posts/cover-image", m.Posts.UploadCoverImage)
		}
	}
}
