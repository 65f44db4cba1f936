package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkydarmawan/goblog/internal/application"
	"github.com/rizkydarmawan/goblog/internal/interface/middleware"
	"github.com/rizkydarmawan/goblog/pkg/response"
	"github.com/rizkydarmawan/goblog/pkg/validation"
)

// CommentHandler serves comment submission. Reading comments happens on the
// post detail route; comments are never edited or deleted.
type CommentHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.BlogService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type commentRequest struct {
	Body string `json:"body" binding:"required"`
}

// Create persists a comment bound to the authenticated identity and the
// target post. Unauthenticated submissions never reach this handler; the
// Auth middleware rejects them and the comment is discarded.
func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.AddComment(c.Request.Context(), postID, c.GetInt64(middleware.CtxUserID), req.Body)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("post_id", postID).Error("add comment failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to add comment", nil)
		return
	}
	cm.AuthorName = c.GetString(middleware.CtxUserName)
	response.Success(c, http.StatusCreated, commentJSON(cm), "comment added", nil)
}
