package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/rizkydarmawan/goblog/internal/interface/http"
)

// ContactModule wires the public pages: the about blurb and the contact
// form.
type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	rg.GET("/about", m.Handler.About)
	rg.POST("/contact", m.Handler.Submit)
}
