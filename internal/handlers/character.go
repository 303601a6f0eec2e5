package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/services"
	"github.com/loreweave/loreweave-backend/internal/types"
)

type CharacterHandler struct {
	log              *logger.Logger
	characterService services.CharacterService
}

func NewCharacterHandler(log *logger.Logger, characterService services.CharacterService) *CharacterHandler {
	return &CharacterHandler{
		log:              log.With("handler", "CharacterHandler"),
		characterService: characterService,
	}
}

type characterCreateRequest struct {
	Name             string                 `json:"name" binding:"required"`
	Species          string                 `json:"species"`
	Traits           []types.CharacterTrait `json:"traits"`
	LinkedWorldID    *string                `json:"linked_world_id"`
	LinkedEventIDs   []string               `json:"linked_event_ids"`
	LinkedWritingIDs []string               `json:"linked_writing_ids"`
}

type characterUpdateRequest struct {
	Name             *string                 `json:"name"`
	Species          *string                 `json:"species"`
	Traits           *[]types.CharacterTrait `json:"traits"`
	LinkedWorldID    *string                 `json:"linked_world_id"`
	LinkedEventIDs   *[]string               `json:"linked_event_ids"`
	LinkedWritingIDs *[]string               `json:"linked_writing_ids"`
}

func (h *CharacterHandler) Create(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req characterCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	character, err := h.characterService.Create(c.Request.Context(), projectID, services.CharacterCreate{
		Name:             req.Name,
		Species:          req.Species,
		Traits:           req.Traits,
		LinkedWorldID:    req.LinkedWorldID,
		LinkedEventIDs:   req.LinkedEventIDs,
		LinkedWritingIDs: req.LinkedWritingIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"character": character})
}

func (h *CharacterHandler) List(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	characters, err := h.characterService.List(c.Request.Context(), projectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"characters": characters})
}

func (h *CharacterHandler) Update(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req characterUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	character, err := h.characterService.Update(c.Request.Context(), projectID, c.Param("characterID"), services.CharacterPatch{
		Name:             req.Name,
		Species:          req.Species,
		Traits:           req.Traits,
		LinkedWorldID:    req.LinkedWorldID,
		LinkedEventIDs:   req.LinkedEventIDs,
		LinkedWritingIDs: req.LinkedWritingIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"character": character})
}

func (h *CharacterHandler) Delete(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.characterService.Delete(c.Request.Context(), projectID, c.Param("characterID")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "deleted"})
}
