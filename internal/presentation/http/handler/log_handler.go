package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/pkg/pagination"
)

// LogHandler renders the read-only audit trail
type LogHandler struct {
	auditService *service.AuditService
}

// NewLogHandler creates a new log handler
func NewLogHandler(auditService *service.AuditService) *LogHandler {
	return &LogHandler{auditService: auditService}
}

// List renders one page of audit entries, newest first
func (h *LogHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	_ = c.ShouldBindQuery(params)

	result, err := h.auditService.List(c.Request.Context(), params)
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_logs.html", gin.H{
		"Title":      "Admin activity",
		"Logs":       result.Items,
		"Pagination": result.Pagination,
	})
}
