package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbonx/internal/application"
)

type adminListResponse struct {
	Count        int                   `json:"count"`
	Participants []participantResponse `json:"participants"`
}

// AdminList returns every record, newest first. One bulk read, no
// pagination — fine at single-event scale.
func (h *Handler) AdminList(c *gin.Context) {
	participants, err := h.rosterUseCase.ListParticipants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: h.translate(c, "errors.generic")})
		return
	}
	resp := adminListResponse{
		Count:        len(participants),
		Participants: make([]participantResponse, len(participants)),
	}
	for i := range participants {
		resp.Participants[i] = toParticipantResponse(&participants[i])
	}
	c.JSON(http.StatusOK, resp)
}

// AdminExport streams the roster as a CSV download.
func (h *Handler) AdminExport(c *gin.Context) {
	csv, err := h.rosterUseCase.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: h.translate(c, "errors.generic")})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", application.ExportFilename))
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
