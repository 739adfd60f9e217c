package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/entitycsv"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/service"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/xlsxexport"
)

// SessionHandler handles the document session endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions
// @Summary Upload a document and open a session
// @Description Upload a plain-text or PDF document (multipart "file" field); the document is normalized to text and held in memory for this session
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	session, err := h.sessionService.Upload(c.Request.Context(), service.UploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session.Summarize())
}

// Get handles GET /api/v1/sessions/:id
// @Summary Get a session summary
// @Tags sessions
// @Produce json
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	session, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session.Summarize())
}

// Extract handles POST /api/v1/sessions/:id/extract
// @Summary Run entity extraction on the session document
// @Description Sends the normalized text to the extraction service; any previous records and reconciliation result are discarded first
// @Tags sessions
// @Produce json
// @Router /sessions/{id}/extract [post]
func (h *SessionHandler) Extract(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	records, err := h.sessionService.Extract(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, records)
}

// Records handles GET /api/v1/sessions/:id/records
// @Summary Get the most recent extraction output
// @Tags sessions
// @Produce json
// @Router /sessions/{id}/records [get]
func (h *SessionHandler) Records(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	session, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	records := session.Records
	if records == nil {
		records = []domain.EntityRecord{}
	}
	RespondOK(c, records)
}

// Export handles GET /api/v1/sessions/:id/export?format=csv|xlsx
// @Summary Download the extracted records
// @Tags sessions
// @Produce text/csv
// @Router /sessions/{id}/export [get]
func (h *SessionHandler) Export(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		data, err := h.sessionService.ExportCSV(c.Request.Context(), id)
		if err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+entitycsv.FileName+`"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "xlsx":
		data, err := h.sessionService.ExportXLSX(c.Request.Context(), id)
		if err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+xlsxexport.FileName+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}

// Verify handles POST /api/v1/sessions/:id/verify
// @Summary Reconcile extracted records against a ground-truth CSV
// @Description Upload a ground-truth CSV (multipart "file" field) with PAN, Entity Name, and Entity Type columns in any order
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Router /sessions/{id}/verify [post]
func (h *SessionHandler) Verify(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	csvBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	result, err := h.sessionService.Verify(c.Request.Context(), id, csvBytes)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Delete handles DELETE /api/v1/sessions/:id
// @Summary Drop a session
// @Tags sessions
// @Produce json
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// parseSessionID parses the :id path parameter, writing a 400 response on
// failure.
func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "session id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
