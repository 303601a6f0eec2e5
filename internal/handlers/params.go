package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func projectIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("projectID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return uuid.Nil, false
	}
	return id, true
}
