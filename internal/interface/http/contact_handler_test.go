package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/rizkydarmawan/goblog/config"
	handlers "github.com/rizkydarmawan/goblog/internal/interface/http"
	"github.com/rizkydarmawan/goblog/pkg/validation"
)

func newContactRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	h := handlers.NewContactHandler(nil, cfg, logger)
	r := gin.New()
	r.POST("/api/contact", h.Submit)
	r.GET("/api/about", h.About)
	return r
}

func TestContactSubmitAcceptedWithoutPublisher(t *testing.T) {
	r := newContactRouter(&config.Config{MailSendEnabled: false})

	body := `{"name":"Ada","email":"ada@example.com","phone":"+44 123","message":"hello"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "message received")
}

func TestContactSubmitRejectsInvalidPayload(t *testing.T) {
	r := newContactRouter(&config.Config{MailSendEnabled: false})

	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"name":"Ada"}`},
		{"bad email", `{"name":"Ada","email":"not-an-email","phone":"1","message":"hi"}`},
		{"malformed json", `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAboutPage(t *testing.T) {
	r := newContactRouter(&config.Config{AppName: "goblog"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/about", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "goblog")
}
