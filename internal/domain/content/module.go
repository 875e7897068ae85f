package content

import (
	"stars_admin/internal/domain/content/client"
	"stars_admin/internal/domain/content/handler"
	"stars_admin/internal/domain/content/service"
	"stars_admin/internal/pkg/middleware"
	"stars_admin/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type ContentModule struct{}

func init() {
	registry.Register(&ContentModule{})
}

func (m *ContentModule) Name() string {
	return "content"
}

func (m *ContentModule) Priority() int {
	return 3
}

func (m *ContentModule) Init(ctx *registry.ModuleContext) error {
	contentClient := client.NewContentClient(ctx.Upstream)
	contentService := service.NewContentService(contentClient)
	contentHandler := handler.NewContentHandler(contentService)

	setupRoutes(ctx.Router, contentHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.ContentHandler) {
	reelGroup := r.Group("/api/reels")
	reelGroup.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		reelGroup.GET("/", h.ListReels)
		reelGroup.GET("/analytics/most-liked", h.MostLiked)
		reelGroup.GET("/:id", h.GetReel)
		reelGroup.GET("/:id/reports", h.ReelReports)
	}
}
