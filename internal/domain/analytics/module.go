package analytics

import (
	"stars_admin/internal/domain/analytics/handler"
	"stars_admin/internal/domain/analytics/service"
	contentclient "stars_admin/internal/domain/content/client"
	postclient "stars_admin/internal/domain/post/client"
	userclient "stars_admin/internal/domain/user/client"
	"stars_admin/internal/pkg/middleware"
	"stars_admin/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type AnalyticsModule struct{}

func init() {
	registry.Register(&AnalyticsModule{})
}

func (m *AnalyticsModule) Name() string {
	return "analytics"
}

func (m *AnalyticsModule) Priority() int {
	return 5
}

func (m *AnalyticsModule) Init(ctx *registry.ModuleContext) error {
	users := userclient.NewUserClient(ctx.Upstream)
	posts := postclient.NewPostClient(ctx.Upstream)
	content := contentclient.NewContentClient(ctx.Upstream)

	analyticsService := service.NewAnalyticsService(users, posts, content)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	setupRoutes(ctx.Router, analyticsHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.AnalyticsHandler) {
	group := r.Group("/api/analytics")
	group.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		group.GET("/overview", h.Overview)
		group.GET("/engagement", h.Engagement)
		group.GET("/users", h.UserCharts)
	}
}
