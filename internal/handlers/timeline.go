package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/services"
)

type TimelineHandler struct {
	log             *logger.Logger
	timelineService services.TimelineService
}

func NewTimelineHandler(log *logger.Logger, timelineService services.TimelineService) *TimelineHandler {
	return &TimelineHandler{
		log:             log.With("handler", "TimelineHandler"),
		timelineService: timelineService,
	}
}

type eventCreateRequest struct {
	Title              string   `json:"title" binding:"required"`
	DisplayDate        string   `json:"display_date"`
	Description        string   `json:"description"`
	EraID              string   `json:"era_id" binding:"required"`
	Tags               []string `json:"tags"`
	LinkedCharacterIDs []string `json:"linked_character_ids"`
	LinkedWritingIDs   []string `json:"linked_writing_ids"`
}

type eventUpdateRequest struct {
	Title              *string   `json:"title"`
	DisplayDate        *string   `json:"display_date"`
	Description        *string   `json:"description"`
	EraID              *string   `json:"era_id"`
	Tags               *[]string `json:"tags"`
	LinkedCharacterIDs *[]string `json:"linked_character_ids"`
	LinkedWritingIDs   *[]string `json:"linked_writing_ids"`
}

func (h *TimelineHandler) Create(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req eventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	event, err := h.timelineService.Create(c.Request.Context(), projectID, services.TimelineEventCreate{
		Title:              req.Title,
		DisplayDate:        req.DisplayDate,
		Description:        req.Description,
		EraID:              req.EraID,
		Tags:               req.Tags,
		LinkedCharacterIDs: req.LinkedCharacterIDs,
		LinkedWritingIDs:   req.LinkedWritingIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"event": event})
}

func (h *TimelineHandler) List(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	events, err := h.timelineService.List(c.Request.Context(), projectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"events": events})
}

func (h *TimelineHandler) Update(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req eventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	event, err := h.timelineService.Update(c.Request.Context(), projectID, c.Param("eventID"), services.TimelineEventPatch{
		Title:              req.Title,
		DisplayDate:        req.DisplayDate,
		Description:        req.Description,
		EraID:              req.EraID,
		Tags:               req.Tags,
		LinkedCharacterIDs: req.LinkedCharacterIDs,
		LinkedWritingIDs:   req.LinkedWritingIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"event": event})
}

func (h *TimelineHandler) Delete(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.timelineService.Delete(c.Request.Context(), projectID, c.Param("eventID")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "deleted"})
}

func (h *TimelineHandler) Reorder(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	events, err := h.timelineService.Reorder(c.Request.Context(), projectID, req.OrderedIDs)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"events": events})
}
