package handler

import (
	"net/http"
	"strconv"
	"time"

	"stars_admin/internal/domain/post/service"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/pagination"
	"stars_admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// PostHandler serves the post moderation screens.
type PostHandler struct {
	service service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// parseDate accepts YYYY-MM-DD; a zero time means no constraint.
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

// ListPosts returns one filtered, sorted page of posts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	sess := session.FromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	criteria := service.Criteria{
		Search:       c.Query("search"),
		Status:       c.Query("status"),
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

// PostReports returns the reports filed against one post.
func (h *PostHandler) PostReports(c *gin.Context) {
	sess := session.FromContext(c)

	reports, err := h.service.Reports(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		if upstream.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.ErrPostNotFound, "Post not found")
			return
		}
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, reports)
}

// Stats returns the platform-wide entity counters.
func (h *PostHandler) Stats(c *gin.Context) {
	sess := session.FromContext(c)

	stats, err := h.service.Stats(c.Request.Context(), sess)
	if err != nil {
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, stats)
}
