package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/services"
)

type CatalogueHandler struct {
	log              *logger.Logger
	catalogueService services.CatalogueService
}

func NewCatalogueHandler(log *logger.Logger, catalogueService services.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{
		log:              log.With("handler", "CatalogueHandler"),
		catalogueService: catalogueService,
	}
}

type catalogueCreateRequest struct {
	Name               string   `json:"name" binding:"required"`
	Category           string   `json:"category"`
	Description        string   `json:"description"`
	LinkedCharacterIDs []string `json:"linked_character_ids"`
	LinkedWorldID      *string  `json:"linked_world_id"`
	LinkedEventIDs     []string `json:"linked_event_ids"`
	LinkedWritingIDs   []string `json:"linked_writing_ids"`
}

type catalogueUpdateRequest struct {
	Name               *string   `json:"name"`
	Category           *string   `json:"category"`
	Description        *string   `json:"description"`
	LinkedCharacterIDs *[]string `json:"linked_character_ids"`
	LinkedWorldID      *string   `json:"linked_world_id"`
	LinkedEventIDs     *[]string `json:"linked_event_ids"`
	LinkedWritingIDs   *[]string `json:"linked_writing_ids"`
}

func (h *CatalogueHandler) Create(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req catalogueCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	item, err := h.catalogueService.Create(c.Request.Context(), projectID, services.CatalogueItemCreate{
		Name:               req.Name,
		Category:           req.Category,
		Description:        req.Description,
		LinkedCharacterIDs: req.LinkedCharacterIDs,
		LinkedWorldID:      req.LinkedWorldID,
		LinkedEventIDs:     req.LinkedEventIDs,
		LinkedWritingIDs:   req.LinkedWritingIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"item": item})
}

func (h *CatalogueHandler) List(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	items, err := h.catalogueService.List(c.Request.Context(), projectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *CatalogueHandler) Update(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req catalogueUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	item, err := h.catalogueService.Update(c.Request.Context(), projectID, c.Param("itemID"), services.CatalogueItemPatch{
		Name:               req.Name,
		Category:           req.Category,
		Description:        req.Description,
		LinkedCharacterIDs: req.LinkedCharacterIDs,
		LinkedWorldID:      req.LinkedWorldID,
		LinkedEventIDs:     req.LinkedEventIDs,
		LinkedWritingIDs:   req.LinkedWritingIDs,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"item": item})
}

func (h *CatalogueHandler) Delete(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogueService.Delete(c.Request.Context(), projectID, c.Param("itemID")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "deleted"})
}
