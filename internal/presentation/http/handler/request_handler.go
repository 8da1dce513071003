package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/middleware"
)

const requestsPath = "/adm/service-requests/"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RequestHandler handles triage of submitted service requests
type RequestHandler struct {
	leadService   *service.LeadService
	exportService *service.ExportService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(leadService *service.LeadService, exportService *service.ExportService) *RequestHandler {
	return &RequestHandler{
		leadService:   leadService,
		exportService: exportService,
	}
}

// List renders all requests, newest first
func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.leadService.ListRequests(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_requests.html", gin.H{
		"Title":    "Service requests",
		"Requests": requests,
	})
}

// MarkCompleted closes a request. Completing a closed request is a no-op.
func (h *RequestHandler) MarkCompleted(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	request, err := h.leadService.MarkCompleted(c.Request.Context(), GetActor(c), id)
	if err != nil {
		renderError(c, err)
		return
	}

	middleware.AddFlash(c, fmt.Sprintf("Request from %s marked as completed.", request.Name))
	c.Redirect(http.StatusSeeOther, requestsPath)
}

// Export downloads every request as an XLSX workbook
func (h *RequestHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.WriteServiceRequests(c.Request.Context(), &buf); err != nil {
		renderError(c, err)
		return
	}

	filename := fmt.Sprintf("service-requests-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
