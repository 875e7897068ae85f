package handler

import (
	"net/http"
	"strconv"

	"stars_admin/internal/domain/audit/model"
	"stars_admin/internal/domain/audit/repository"
	"stars_admin/pkg/pagination"
	"stars_admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the moderation audit trail.
type AuditHandler struct {
	repo repository.AuditRepository
}

func NewAuditHandler(repo repository.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List returns one page of audit records, newest first. Pass entity and
// entityId to scope the trail to one target.
func (h *AuditHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	p := pagination.Pagination{Page: page, Limit: limit}
	offset, _ := p.Normalize()

	entity := c.Query("entity")
	entityID := c.Query("entityId")

	var (
		rows  []model.ActionRecord
		total int64
		err   error
	)
	if entity != "" && entityID != "" {
		rows, total, err = h.repo.ListByEntity(entity, entityID, offset, p.Limit)
	} else {
		rows, total, err = h.repo.List(offset, p.Limit)
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to load audit records")
		return
	}

	response.Success(c, gin.H{
		"data":  rows,
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
	})
}
