package handler

import (
	"net/http"
	"strconv"
	"time"

	"stars_admin/internal/domain/content/model"
	"stars_admin/internal/domain/content/service"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/pagination"
	"stars_admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the reel moderation screens.
type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ListReels returns one filtered, sorted page of reels along with the
// cursor state the pagination tracker derived for this admin.
func (h *ContentHandler) ListReels(c *gin.Context) {
	sess := session.FromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	criteria := service.Criteria{
		Search:       c.Query("search"),
		Status:       c.Query("status"),
		Label:        c.Query("label"),
		Score:        model.ScoreBucket(c.Query("score")),
		ReportedOnly: c.Query("reported") == "true",
		From:         parseDate(c.Query("from")),
		To:           parseDate(c.Query("to")),
	}
	sortSpec := service.SortSpec{
		Field: service.SortField(c.DefaultQuery("sortBy", string(service.SortByCreatedAt))),
		Desc:  c.DefaultQuery("order", "desc") == "desc",
	}

	result, err := h.service.List(c.Request.Context(), sess, pagination.Pagination{Page: page, Limit: limit}, criteria, sortSpec)
	if err != nil {
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, result)
}

// GetReel returns one reel with its full detail.
func (h *ContentHandler) GetReel(c *gin.Context) {
	sess := session.FromContext(c)

	item, err := h.service.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		if upstream.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.ErrContentNotFound, "Reel not found")
			return
		}
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, item)
}

// ReelReports returns the reports filed against one reel.
func (h *ContentHandler) ReelReports(c *gin.Context) {
	sess := session.FromContext(c)

	reports, err := h.service.Reports(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		if upstream.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.ErrContentNotFound, "Reel not found")
			return
		}
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, reports)
}

// MostLiked returns the most liked reels ranking.
func (h *ContentHandler) MostLiked(c *gin.Context) {
	sess := session.FromContext(c)

	items, err := h.service.MostLiked(c.Request.Context(), sess)
	if err != nil {
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, items)
}
