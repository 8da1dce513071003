package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/dto/request"
	"github.com/sangkips/solarpower/pkg/validation"
)

const projectsPath = "/adm/projects/"

// ProjectHandler handles installation project screens
type ProjectHandler struct {
	projectService *service.ProjectService
	catalogService *service.CatalogService
	validator      *validation.Validator
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, catalogService *service.CatalogService, validator *validation.Validator) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		catalogService: catalogService,
		validator:      validator,
	}
}

// List renders projects with revenue totals and year-over-year growth
func (h *ProjectHandler) List(c *gin.Context) {
	overview, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_projects.html", gin.H{
		"Title":    "Installation projects",
		"Overview": overview,
	})
}

// New renders an empty project form
func (h *ProjectHandler) New(c *gin.Context) {
	h.renderForm(c, "Add project", nil, &request.ProjectForm{}, nil)
}

// Create handles the add project form
func (h *ProjectHandler) Create(c *gin.Context) {
	var form request.ProjectForm
	_ = c.ShouldBind(&form)

	input, err := form.Parse(h.validator, GetActor(c))
	if err == nil {
		_, err = h.projectService.CreateProject(c.Request.Context(), input)
	}
	if err != nil {
		h.formFailed(c, "Add project", nil, &form, err)
		return
	}

	c.Redirect(http.StatusSeeOther, projectsPath)
}

// Edit renders the edit form of a project
func (h *ProjectHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	h.renderForm(c, "Edit project", &id, request.NewProjectForm(project), nil)
}

// Update handles the edit project form
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	var form request.ProjectForm
	_ = c.ShouldBind(&form)

	input, err := form.Parse(h.validator, GetActor(c))
	if err == nil {
		_, err = h.projectService.UpdateProject(c.Request.Context(), id, input)
	}
	if err != nil {
		h.formFailed(c, "Edit project", &id, &form, err)
		return
	}

	c.Redirect(http.StatusSeeOther, projectsPath)
}

func (h *ProjectHandler) formFailed(c *gin.Context, title string, id *uint, form *request.ProjectForm, err error) {
	errs, ok := formErrors(err)
	if !ok {
		renderError(c, err)
		return
	}
	h.renderForm(c, title, id, form, errs)
}

func (h *ProjectHandler) renderForm(c *gin.Context, title string, id *uint, form *request.ProjectForm, errs map[string][]string) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_project_form.html", gin.H{
		"Title":    title,
		"ID":       id,
		"Form":     form,
		"Errors":   errs,
		"Services": services,
	})
}
