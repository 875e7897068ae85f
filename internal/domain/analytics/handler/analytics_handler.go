package handler

import (
	"stars_admin/internal/domain/analytics/service"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the dashboard statistics tabs.
type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Overview returns the platform counters and headline rankings.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	sess := session.FromContext(c)

	overview, err := h.service.Overview(c.Request.Context(), sess)
	if err != nil {
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, overview)
}

// Engagement returns the creator ranking and reported-content shortlist.
func (h *AnalyticsHandler) Engagement(c *gin.Context) {
	sess := session.FromContext(c)

	engagement, err := h.service.Engagement(c.Request.Context(), sess)
	if err != nil {
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, engagement)
}

// UserCharts returns the user-base histograms.
func (h *AnalyticsHandler) UserCharts(c *gin.Context) {
	sess := session.FromContext(c)

	charts, err := h.service.UserCharts(c.Request.Context(), sess)
	if err != nil {
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, charts)
}
