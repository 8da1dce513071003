package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/dto/request"
	"github.com/sangkips/solarpower/pkg/storage"
	"github.com/sangkips/solarpower/pkg/validation"
)

const caseStudiesPath = "/adm/case-studies/"

// CaseStudyHandler handles back-office case study screens
type CaseStudyHandler struct {
	caseStudyService *service.CaseStudyService
	catalogService   *service.CatalogService
	storage          *storage.LocalStorage
	validator        *validation.Validator
}

// NewCaseStudyHandler creates a new case study handler
func NewCaseStudyHandler(
	caseStudyService *service.CaseStudyService,
	catalogService *service.CatalogService,
	storage *storage.LocalStorage,
	validator *validation.Validator,
) *CaseStudyHandler {
	return &CaseStudyHandler{
		caseStudyService: caseStudyService,
		catalogService:   catalogService,
		storage:          storage,
		validator:        validator,
	}
}

// List renders every case study
func (h *CaseStudyHandler) List(c *gin.Context) {
	caseStudies, err := h.caseStudyService.ListCaseStudies(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_case_studies.html", gin.H{
		"Title":       "Case studies",
		"CaseStudies": caseStudies,
	})
}

// New renders an empty case study form
func (h *CaseStudyHandler) New(c *gin.Context) {
	h.renderForm(c, "Add case study", nil, &request.CaseStudyForm{}, nil)
}

// Create handles the add case study form
func (h *CaseStudyHandler) Create(c *gin.Context) {
	var form request.CaseStudyForm
	_ = c.ShouldBind(&form)

	input, err := form.Parse(h.validator, GetActor(c))
	if err == nil {
		input.FeaturedImage, err = saveUpload(c, h.storage, "featured_image", "case_studies")
	}
	if err == nil {
		if _, err = h.caseStudyService.CreateCaseStudy(c.Request.Context(), input); err != nil {
			discardUpload(h.storage, input.FeaturedImage)
		}
	}
	if err != nil {
		h.formFailed(c, "Add case study", nil, &form, err)
		return
	}

	c.Redirect(http.StatusSeeOther, caseStudiesPath)
}

// Edit renders the edit form of a case study
func (h *CaseStudyHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	caseStudy, err := h.caseStudyService.GetCaseStudy(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	h.renderForm(c, "Edit case study", &id, request.NewCaseStudyForm(caseStudy), nil)
}

// Update handles the edit case study form
func (h *CaseStudyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	if _, err := h.caseStudyService.GetCaseStudy(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	var form request.CaseStudyForm
	_ = c.ShouldBind(&form)

	input, err := form.Parse(h.validator, GetActor(c))
	if err == nil {
		input.FeaturedImage, err = saveUpload(c, h.storage, "featured_image", "case_studies")
	}
	if err == nil {
		if _, err = h.caseStudyService.UpdateCaseStudy(c.Request.Context(), id, input); err != nil {
			discardUpload(h.storage, input.FeaturedImage)
		}
	}
	if err != nil {
		h.formFailed(c, "Edit case study", &id, &form, err)
		return
	}

	c.Redirect(http.StatusSeeOther, caseStudiesPath)
}

// ConfirmDelete renders the delete confirmation page
func (h *CaseStudyHandler) ConfirmDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	caseStudy, err := h.caseStudyService.GetCaseStudy(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_case_study_delete.html", gin.H{
		"Title":     "Delete case study",
		"CaseStudy": caseStudy,
	})
}

// Delete removes a case study
func (h *CaseStudyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	if err := h.caseStudyService.DeleteCaseStudy(c.Request.Context(), GetActor(c), id); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, caseStudiesPath)
}

func (h *CaseStudyHandler) formFailed(c *gin.Context, title string, id *uint, form *request.CaseStudyForm, err error) {
	errs, ok := formErrors(err)
	if !ok {
		renderError(c, err)
		return
	}
	h.renderForm(c, title, id, form, errs)
}

func (h *CaseStudyHandler) renderForm(c *gin.Context, title string, id *uint, form *request.CaseStudyForm, errs map[string][]string) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_case_study_form.html", gin.H{
		"Title":    title,
		"ID":       id,
		"Form":     form,
		"Errors":   errs,
		"Services": services,
	})
}
