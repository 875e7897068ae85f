package user

import (
	"stars_admin/internal/domain/user/client"
	"stars_admin/internal/domain/user/handler"
	"stars_admin/internal/domain/user/service"
	"stars_admin/internal/pkg/middleware"
	"stars_admin/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type UserModule struct{}

func init() {
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	userClient := client.NewUserClient(ctx.Upstream)
	userService := service.NewUserService(userClient)
	userHandler := handler.NewUserHandler(userService)

	setupRoutes(ctx.Router, userHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UserHandler) {
	userGroup := r.Group("/api/users")
	userGroup.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		userGroup.GET("/", h.ListUsers)
		userGroup.GET("/:id", h.GetUser)
		userGroup.PUT("/:id/status", h.UpdateStatus)
		userGroup.DELETE("/:id", h.DeleteUser)
	}
}
