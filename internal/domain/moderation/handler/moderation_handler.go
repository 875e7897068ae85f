package handler

import (
	"errors"
	"net/http"

	service "stars_admin/internal/domain/moderation/service"
	"stars_admin/internal/pkg/notify"
	"stars_admin/internal/pkg/session"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// ModerationHandler exposes the action dispatcher and the per-admin
// selection state.
type ModerationHandler struct {
	dispatcher *service.Dispatcher
	selection  *service.Selection
	recorder   *notify.Recorder
}

func NewModerationHandler(dispatcher *service.Dispatcher, selection *service.Selection, recorder *notify.Recorder) *ModerationHandler {
	return &ModerationHandler{dispatcher: dispatcher, selection: selection, recorder: recorder}
}

// SelectInput marks one entity as the pending moderation target.
type SelectInput struct {
	Entity string `json:"entity" binding:"required"`
	ID     string `json:"id" binding:"required"`
}

// DispatchInput runs a moderation action against a target.
type DispatchInput struct {
	Entity string `json:"entity" binding:"required"`
	ID     string `json:"id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// Select stores the admin's pending target, replacing any previous one.
func (h *ModerationHandler) Select(c *gin.Context) {
	sess := session.FromContext(c)

	var input SelectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	h.selection.Set(sess.UserID, service.Target{
		Entity: service.Entity(input.Entity),
		ID:     input.ID,
	})
	response.Success(c, gin.H{"message": "Target selected"})
}

// Selection returns the admin's pending target, if any.
func (h *ModerationHandler) Selection(c *gin.Context) {
	sess := session.FromContext(c)

	target, ok := h.selection.Get(sess.UserID)
	if !ok {
		response.Success(c, nil)
		return
	}
	response.Success(c, target)
}

// ClearSelection drops the admin's pending target.
func (h *ModerationHandler) ClearSelection(c *gin.Context) {
	sess := session.FromContext(c)

	h.selection.Clear(sess.UserID)
	response.Success(c, gin.H{"message": "Selection cleared"})
}

// Dispatch runs one moderation action. Unknown actions are absorbed by the
// dispatcher and reported as success with no effect.
func (h *ModerationHandler) Dispatch(c *gin.Context) {
	sess := session.FromContext(c)

	var input DispatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	target := service.Target{
		Entity: service.Entity(input.Entity),
		ID:     input.ID,
	}
	err := h.dispatcher.Dispatch(c.Request.Context(), sess, target, input.Action)
	if err != nil {
		if errors.Is(err, service.ErrActionInFlight) {
			response.Error(c, http.StatusConflict, response.ErrActionFailed, "An action is already running for this target")
			return
		}
		if upstream.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.ErrContentNotFound, "Target not found")
			return
		}
		response.Error(c, http.StatusBadGateway, response.ErrActionFailed, "Moderation action failed")
		return
	}
	response.Success(c, gin.H{"message": "Action processed"})
}

// Notifications returns the most recent operator notifications.
func (h *ModerationHandler) Notifications(c *gin.Context) {
	response.Success(c, h.recorder.Recent())
}
