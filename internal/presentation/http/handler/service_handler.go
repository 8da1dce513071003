package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/dto/request"
	"github.com/sangkips/solarpower/pkg/storage"
	"github.com/sangkips/solarpower/pkg/validation"
)

// ServiceHandler handles back-office service catalog screens
type ServiceHandler struct {
	catalogService *service.CatalogService
	storage        *storage.LocalStorage
	validator      *validation.Validator
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(catalogService *service.CatalogService, storage *storage.LocalStorage, validator *validation.Validator) *ServiceHandler {
	return &ServiceHandler{
		catalogService: catalogService,
		storage:        storage,
		validator:      validator,
	}
}

// List renders every service in display order
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_services.html", gin.H{
		"Title":    "Services",
		"Services": services,
	})
}

// Edit renders the edit form of a service
func (h *ServiceHandler) Edit(c *gin.Context) {
	svc, err := h.catalogService.GetService(c.Request.Context(), c.Param("slug"))
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_service_form.html", gin.H{
		"Title":   "Edit service",
		"Service": svc,
		"Form":    request.NewServiceForm(svc),
	})
}

// Update handles the service edit form
func (h *ServiceHandler) Update(c *gin.Context) {
	slug := c.Param("slug")
	svc, err := h.catalogService.GetService(c.Request.Context(), slug)
	if err != nil {
		renderError(c, err)
		return
	}

	var form request.ServiceForm
	_ = c.ShouldBind(&form)

	rerender := func(err error) {
		errs, ok := formErrors(err)
		if !ok {
			renderError(c, err)
			return
		}
		render(c, http.StatusOK, "admin_service_form.html", gin.H{
			"Title":   "Edit service",
			"Service": svc,
			"Form":    &form,
			"Errors":  errs,
		})
	}

	input, err := form.Parse(h.validator, GetActor(c), slug)
	if err != nil {
		rerender(err)
		return
	}

	if input.Image, err = saveUpload(c, h.storage, "image", "services"); err != nil {
		rerender(err)
		return
	}

	if _, err := h.catalogService.UpdateService(c.Request.Context(), input); err != nil {
		discardUpload(h.storage, input.Image)
		rerender(err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/adm/services/")
}
