package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/services"
)

type EraHandler struct {
	log        *logger.Logger
	eraService services.EraService
}

func NewEraHandler(log *logger.Logger, eraService services.EraService) *EraHandler {
	return &EraHandler{
		log:        log.With("handler", "EraHandler"),
		eraService: eraService,
	}
}

type eraCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type eraUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type reorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
}

func (h *EraHandler) Create(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req eraCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	era, err := h.eraService.Create(c.Request.Context(), projectID, services.EraCreate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"era": era})
}

func (h *EraHandler) List(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	eras, err := h.eraService.List(c.Request.Context(), projectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"eras": eras})
}

func (h *EraHandler) Update(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req eraUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	era, err := h.eraService.Update(c.Request.Context(), projectID, c.Param("eraID"), services.EraPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"era": era})
}

func (h *EraHandler) Delete(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	if err := h.eraService.Delete(c.Request.Context(), projectID, c.Param("eraID")); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "deleted"})
}

func (h *EraHandler) Reorder(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	eras, err := h.eraService.Reorder(c.Request.Context(), projectID, req.OrderedIDs)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"eras": eras})
}
