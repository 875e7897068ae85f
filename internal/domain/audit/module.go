package audit

import (
	"stars_admin/internal/domain/audit/handler"
	"stars_admin/internal/domain/audit/repository"
	"stars_admin/internal/pkg/middleware"
	"stars_admin/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

type AuditModule struct{}

func init() {
	registry.Register(&AuditModule{})
}

func (m *AuditModule) Name() string {
	return "audit"
}

func (m *AuditModule) Priority() int {
	return 6
}

func (m *AuditModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewAuditRepository(ctx.DB)
	auditHandler := handler.NewAuditHandler(repo)

	setupRoutes(ctx.Router, auditHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.AuditHandler) {
	group := r.Group("/api/audit")
	group.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		group.GET("/", h.List)
	}
}
