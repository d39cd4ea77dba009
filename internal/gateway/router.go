package gateway

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-services/internal/adapter/gin/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

// SetupRouter configures and returns the gateway router with its HTML
// templates and the full dispatch table.
func SetupRouter(h *Handler, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", h.Index)
	r.GET("/:service/", h.List)
	r.GET("/:service/create", h.CreateForm)
	r.POST("/:service/create", h.CreateSubmit)
	r.GET("/:service/:id", h.Detail)
	r.GET("/:service/edit/:id", h.EditForm)
	r.POST("/:service/edit/:id", h.EditSubmit)
	r.GET("/:service/delete/:id", h.Delete)

	return r
}
