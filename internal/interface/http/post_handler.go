package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkydarmawan/goblog/internal/application"
	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	"github.com/rizkydarmawan/goblog/internal/interface/middleware"
	"github.com/rizkydarmawan/goblog/pkg/response"
	"github.com/rizkydarmawan/goblog/pkg/validation"
)

// PostHandler serves the public listing/detail routes and the admin-only
// create/edit/delete routes.
type PostHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.BlogService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle" binding:"required"`
	Body     string `json:"body" binding:"required"`
	ImgURL   string `json:"img_url" binding:"required"`
}

func (r postRequest) input() application.PostInput {
	return application.PostInput{Title: r.Title, Subtitle: r.Subtitle, Body: r.Body, ImgURL: r.ImgURL}
}

func postJSON(p *entity.Post) gin.H {
	return gin.H{
		"id":        p.ID,
		"title":     p.Title,
		"subtitle":  p.Subtitle,
		"body":      p.Body,
		"img_url":   p.ImgURL,
		"date":      p.Date,
		"author_id": p.AuthorID,
	}
}

func commentJSON(cm *entity.Comment) gin.H {
	return gin.H{
		"id":          cm.ID,
		"body":        cm.Body,
		"author_id":   cm.AuthorID,
		"author_name": cm.AuthorName,
		"post_id":     cm.PostID,
		"created_at":  cm.CreatedAt,
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid post id", nil)
		return 0, false
	}
	return id, true
}

// List returns every post, storage-natural order, no pagination.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load posts", nil)
		return
	}
	out := make([]gin.H, 0, len(posts))
	for i := range posts {
		out = append(out, postJSON(&posts[i]))
	}
	response.Success(c, http.StatusOK, out, "posts", gin.H{"count": len(out)})
}

// Get returns one post together with its own comments.
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, comments, err := h.Svc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("post_id", id).Error("get post failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load post", nil)
		return
	}
	cs := make([]gin.H, 0, len(comments))
	for i := range comments {
		cs = append(cs, commentJSON(&comments[i]))
	}
	body := postJSON(p)
	body["comments"] = cs
	response.Success(c, http.StatusOK, body, "post", nil)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.CreatePost(c.Request.Context(), req.input(), c.GetInt64(middleware.CtxUserID))
	if err != nil {
		if errors.Is(err, application.ErrTitleTaken) {
			response.Error[any](c, http.StatusConflict, "a post with that title already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("create post failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create post", nil)
		return
	}
	response.Success(c, http.StatusCreated, postJSON(p), "post created", nil)
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.UpdatePost(c.Request.Context(), id, req.input())
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
		case errors.Is(err, application.ErrTitleTaken):
			response.Error[any](c, http.StatusConflict, "a post with that title already exists", nil)
		default:
			h.Logger.WithError(err).WithField("post_id", id).Error("update post failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to update post", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, postJSON(p), "post updated", nil)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error[any](c, http.StatusNotFound, "post not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("post_id", id).Error("delete post failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete post", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "post deleted", nil)
}

// UploadCoverImage accepts a multipart "image" file, stores it in GCS and
// returns the public URL to use as a post's img_url.
func (h *PostHandler) UploadCoverImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadCoverImage(c.Request.Context(), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).Error("cover image upload failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to store image", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"img_url": url}, "image uploaded", nil)
}
