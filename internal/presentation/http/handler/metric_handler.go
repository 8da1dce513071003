package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/dto/request"
	"github.com/sangkips/solarpower/pkg/validation"
)

// MetricHandler handles monthly business metric screens
type MetricHandler struct {
	metricService *service.MetricService
	validator     *validation.Validator
}

// NewMetricHandler creates a new metric handler
func NewMetricHandler(metricService *service.MetricService, validator *validation.Validator) *MetricHandler {
	return &MetricHandler{
		metricService: metricService,
		validator:     validator,
	}
}

// List renders the metrics, newest month first, with totals and growth
func (h *MetricHandler) List(c *gin.Context) {
	overview, err := h.metricService.ListMetrics(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_metrics.html", gin.H{
		"Title":    "Monthly metrics",
		"Overview": overview,
	})
}

// New renders an empty metric form
func (h *MetricHandler) New(c *gin.Context) {
	renderMetricForm(c, &request.MetricForm{}, nil)
}

// Create handles the add metric form
func (h *MetricHandler) Create(c *gin.Context) {
	var form request.MetricForm
	_ = c.ShouldBind(&form)

	input, err := form.Parse(h.validator, GetActor(c))
	if err == nil {
		_, err = h.metricService.CreateMetric(c.Request.Context(), input)
	}
	if err != nil {
		errs, ok := formErrors(err)
		if !ok {
			renderError(c, err)
			return
		}
		renderMetricForm(c, &form, errs)
		return
	}

	c.Redirect(http.StatusSeeOther, "/adm/metrics/")
}

func renderMetricForm(c *gin.Context, form *request.MetricForm, errs map[string][]string) {
	render(c, http.StatusOK, "admin_metric_form.html", gin.H{
		"Title":  "Add monthly metric",
		"Form":   form,
		"Errors": errs,
	})
}
