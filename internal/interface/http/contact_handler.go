package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkydarmawan/goblog/config"
	"github.com/rizkydarmawan/goblog/pkg/helpers"
	"github.com/rizkydarmawan/goblog/pkg/mailer"
	"github.com/rizkydarmawan/goblog/pkg/response"
	"github.com/rizkydarmawan/goblog/pkg/validation"
)

// ContactHandler serves the contact form and the static about page.
type ContactHandler struct {
	Pub    *helpers.RabbitPublisher
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewContactHandler(pub *helpers.RabbitPublisher, cfg *config.Config, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Pub: pub, Cfg: cfg, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit enqueues an operator notification for the submission. Delivery is
// fire-and-forget: a broken queue is logged and the submission still
// succeeds, so a slow or failing mail transport never stalls the request.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if h.Pub != nil && h.Cfg.MailSendEnabled {
		job := mailer.NewContactJob(h.Cfg.OperatorEmail, mailer.ContactSubmission{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		})
		if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
			h.Logger.WithError(err).Warn("contact notification enqueue failed")
		}
	}

	response.Success[any](c, http.StatusAccepted, gin.H{"received": true}, "message received", nil)
}

// About returns the static site blurb.
func (h *ContactHandler) About(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"name":        h.Cfg.AppName,
		"description": "A small multi-user blog: read posts, sign up to comment.",
	}, "about", nil)
}
