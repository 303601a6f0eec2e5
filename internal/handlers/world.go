package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/services"
)

type WorldHandler struct {
	log          *logger.Logger
	worldService services.WorldService
}

func NewWorldHandler(log *logger.Logger, worldService services.WorldService) *WorldHandler {
	return &WorldHandler{
		log:          log.With("handler", "WorldHandler"),
		worldService: worldService,
	}
}

type worldCreateRequest struct {
	Name               string   `json:"name" binding:"required"`
	Theme              string   `json:"theme"`
	Setting            string   `json:"setting"`
	Description        string   `json:"description"`
	LinkedCharacterIDs []string `json:"linked_character_ids"`
	LinkedWritingIDs   []string `json:"linked_writing_ids"`
	LinkedEventIDs     []string `json:"linked_event_ids"`
}

type worldUpdateRequest struct {
	Name               *string   `json:"name"`
	Theme              *string   `json:"theme"`
	Setting            *string   `json:"setting"`
	Description        *string   `json:"description"`
	LinkedCharacterIDs *[]string `json:"linked_character_ids"`
	LinkedWritingIDs   *[]string `json:"linked_writing_ids"`
	LinkedEventIDs     *[]string `json:"linked_event_ids"`
}

func (h *WorldHandler) Create(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req worldCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	world, err := h.worldService.Create(c.Request.Context(), projectID, services.WorldCreate{
		Name:               req.Name,
		Theme:              req.Theme,
		Setting:            req.Setting,
		Description:        req.Description,
		LinkedCharacterIDs: req.LinkedCharacterIDs,
		LinkedWritingIDs:   req.LinkedWritingIDs,
		LinkedEventIDs:     req.LinkedEventIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"world": world})
}

func (h *WorldHandler) List(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	worlds, err := h.worldService.List(c.Request.Context(), projectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"worlds": worlds})
}

func (h *WorldHandler) Update(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req worldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	world, err := h.worldService.Update(c.Request.Context(), projectID, c.Param("worldID"), services.WorldPatch{
		Name:               req.Name,
		Theme:              req.Theme,
		Setting:            req.Setting,
		Description:        req.Description,
		LinkedCharacterIDs: req.LinkedCharacterIDs,
		LinkedWritingIDs:   req.LinkedWritingIDs,
		LinkedEventIDs:     req.LinkedEventIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"world": world})
}

func (h *WorldHandler) Delete(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.worldService.Delete(c.Request.Context(), projectID, c.Param("worldID")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "deleted"})
}
