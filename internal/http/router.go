// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"menuboard/internal/assistant"
	"menuboard/internal/catalog"
	"menuboard/internal/http/handlers"
	"menuboard/internal/http/middleware"
)

type RouterDeps struct {
	Assistant   *assistant.Service
	Catalog     *catalog.Service
	Store       *catalog.Store
	AdminKey    string
	TurnTimeout time.Duration
	Logger      *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(deps.Logger), middleware.Recovery(deps.Logger))

	chat := handlers.NewChatHandler(deps.Assistant, deps.TurnTimeout)
	r.POST("/api/chat/sessions", chat.Open)
	r.POST("/api/chat/sessions/:id/messages", chat.Submit)
	r.GET("/api/chat/sessions/:id/messages", chat.History)
	r.DELETE("/api/chat/sessions/:id", chat.Close)

	menu := handlers.NewMenuHandler(deps.Catalog)
	r.GET("/api/menu", menu.Menu)

	admin := handlers.NewAdminHandler(deps.Store, deps.Catalog)
	g := r.Group("/api/admin", middleware.AdminKey(deps.AdminKey))
	g.POST("/categories", admin.AddCategory)
	g.PUT("/categories/:id", admin.UpdateCategory)
	g.DELETE("/categories/:id", admin.DeleteCategory)
	g.POST("/items", admin.AddItem)
	g.PUT("/items/:id", admin.UpdateItem)
	g.DELETE("/items/:id", admin.DeleteItem)
	g.POST("/sections", admin.AddSection)
	g.PUT("/sections/:id", admin.UpdateSection)
	g.DELETE("/sections/:id", admin.DeleteSection)
	g.PUT("/season", admin.SetSeason)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
