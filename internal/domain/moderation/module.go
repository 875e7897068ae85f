package moderation

import (
	contentclient "stars_admin/internal/domain/content/client"
	"stars_admin/internal/domain/moderation/handler"
	service "stars_admin/internal/domain/moderation/service"
	postclient "stars_admin/internal/domain/post/client"
	"stars_admin/internal/pkg/middleware"
	"stars_admin/internal/pkg/notify"
	"stars_admin/internal/pkg/registry"
	"stars_admin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ModerationModule struct{}

func init() {
	registry.Register(&ModerationModule{})
}

func (m *ModerationModule) Name() string {
	return "moderation"
}

func (m *ModerationModule) Priority() int {
	return 4
}

func (m *ModerationModule) Init(ctx *registry.ModuleContext) error {
	posts := postclient.NewPostClient(ctx.Upstream)
	reels := contentclient.NewContentClient(ctx.Upstream)

	// The recorder keeps a window of recent notifications for the
	// dashboard toast history.
	recorder := notify.NewRecorder(ctx.Notifier, 50)
	selection := service.NewSelection()

	var auditSink service.Recorder
	if ctx.Audit != nil {
		auditSink = ctx.Audit
	}

	dispatcher := service.NewDispatcher(posts, reels, recorder, selection, auditSink, logger.Log)
	moderationHandler := handler.NewModerationHandler(dispatcher, selection, recorder)

	setupRoutes(ctx.Router, moderationHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.ModerationHandler) {
	group := r.Group("/api/moderation")
	group.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		group.POST("/dispatch", h.Dispatch)
		group.POST("/selection", h.Select)
		group.GET("/selection", h.Selection)
		group.DELETE("/selection", h.ClearSelection)
		group.GET("/notifications", h.Notifications)
	}
}
