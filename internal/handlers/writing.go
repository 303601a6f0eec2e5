package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/services"
)

type WritingHandler struct {
	log            *logger.Logger
	writingService services.WritingService
}

func NewWritingHandler(log *logger.Logger, writingService services.WritingService) *WritingHandler {
	return &WritingHandler{
		log:            log.With("handler", "WritingHandler"),
		writingService: writingService,
	}
}

type writingCreateRequest struct {
	Title              string   `json:"title" binding:"required"`
	Content            string   `json:"content"`
	Tags               []string `json:"tags"`
	LinkedCharacterIDs []string `json:"linked_character_ids"`
	LinkedWorldID      *string  `json:"linked_world_id"`
	LinkedEventIDs     []string `json:"linked_event_ids"`
}

type writingUpdateRequest struct {
	Title              *string   `json:"title"`
	Content            *string   `json:"content"`
	Tags               *[]string `json:"tags"`
	LinkedCharacterIDs *[]string `json:"linked_character_ids"`
	LinkedWorldID      *string   `json:"linked_world_id"`
	LinkedEventIDs     *[]string `json:"linked_event_ids"`
}

func (h *WritingHandler) Create(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req writingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	writing, err := h.writingService.Create(c.Request.Context(), projectID, services.WritingCreate{
		Title:              req.Title,
		Content:            req.Content,
		Tags:               req.Tags,
		LinkedCharacterIDs: req.LinkedCharacterIDs,
		LinkedWorldID:      req.LinkedWorldID,
		LinkedEventIDs:     req.LinkedEventIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"writing": writing})
}

func (h *WritingHandler) List(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	writings, err := h.writingService.List(c.Request.Context(), projectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"writings": writings})
}

func (h *WritingHandler) Update(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req writingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	writing, err := h.writingService.Update(c.Request.Context(), projectID, c.Param("writingID"), services.WritingPatch{
		Title:              req.Title,
		Content:            req.Content,
		Tags:               req.Tags,
		LinkedCharacterIDs: req.LinkedCharacterIDs,
		LinkedWorldID:      req.LinkedWorldID,
		LinkedEventIDs:     req.LinkedEventIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"writing": writing})
}

func (h *WritingHandler) Delete(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.writingService.Delete(c.Request.Context(), projectID, c.Param("writingID")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "deleted"})
}
