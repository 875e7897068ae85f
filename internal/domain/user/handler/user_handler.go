package handler

import (
	"net/http"
	"strconv"

	"stars_admin/internal/domain/user/service"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/pagination"
	"stars_admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the user management screens.
type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// StatusInput updates a user's account status.
type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

// ListUsers returns one filtered, sorted window of the user directory.
func (h *UserHandler) ListUsers(c *gin.Context) {
	sess := session.FromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	criteria := service.Criteria{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
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

// GetUser returns one user profile.
func (h *UserHandler) GetUser(c *gin.Context) {
	sess := session.FromContext(c)

	user, err := h.service.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		if upstream.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
			return
		}
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateStatus suspends or restores a user account.
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	sess := session.FromContext(c)

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), sess, c.Param("id"), input.Status); err != nil {
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Status updated"})
}

// DeleteUser removes a user account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	sess := session.FromContext(c)

	if err := h.service.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		if upstream.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
			return
		}
		upstream.RespondError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "User deleted"})
}
