package post

import (
	"stars_admin/internal/domain/post/client"
	"stars_admin/internal/domain/post/handler"
	"stars_admin/internal/domain/post/service"
	"stars_admin/internal/pkg/middleware"
	"stars_admin/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type PostModule struct{}

func init() {
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	return 2
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	postClient := client.NewPostClient(ctx.Upstream)
	postService := service.NewPostService(postClient)
	postHandler := handler.NewPostHandler(postService)

	setupRoutes(ctx.Router, postHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PostHandler) {
	postGroup := r.Group("/api/posts")
	postGroup.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		postGroup.GET("/", h.ListPosts)
		postGroup.GET("/stats", h.Stats)
		postGroup.GET("/:id/reports", h.PostReports)
	}
}
