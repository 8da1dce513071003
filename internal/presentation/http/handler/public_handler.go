package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/dto/request"
	"github.com/sangkips/solarpower/internal/presentation/http/middleware"
	"github.com/sangkips/solarpower/internal/presentation/http/requestid"
	"github.com/sangkips/solarpower/pkg/validation"
)

const (
	// LeadSubmittedMessage is flashed after a successful contact page submission
	LeadSubmittedMessage = "Your request has been submitted successfully!"
	// LeadFailedMessage is shown when a valid lead could not be stored
	LeadFailedMessage = "An error occurred while submitting your request. Please try again."
)

// PublicHandler serves the marketing site and the lead form
type PublicHandler struct {
	siteService *service.SiteService
	leadService *service.LeadService
	validator   *validation.Validator
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(siteService *service.SiteService, leadService *service.LeadService, validator *validation.Validator) *PublicHandler {
	return &PublicHandler{
		siteService: siteService,
		leadService: leadService,
		validator:   validator,
	}
}

// Home renders the landing page
func (h *PublicHandler) Home(c *gin.Context) {
	h.renderHome(c, &request.LeadForm{}, nil, "")
}

// SubmitHome handles the lead form on the landing page
func (h *PublicHandler) SubmitHome(c *gin.Context) {
	var form request.LeadForm
	_ = c.ShouldBind(&form)

	if errs, formErr := h.submitLead(c, &form); errs != nil || formErr != "" {
		h.renderHome(c, &form, errs, formErr)
		return
	}

	c.Redirect(http.StatusSeeOther, "/booking-success/")
}

func (h *PublicHandler) renderHome(c *gin.Context, form *request.LeadForm, errs map[string][]string, formErr string) {
	page, err := h.siteService.GetHomePage(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "home.html", gin.H{
		"Title":       "Home",
		"Services":    page.Services,
		"CaseStudies": page.CaseStudies,
		"Form":        form,
		"Errors":      errs,
		"FormError":   formErr,
	})
}

// BookingSuccess renders the confirmation page shown after a lead is stored
func (h *PublicHandler) BookingSuccess(c *gin.Context) {
	render(c, http.StatusOK, "booking_success.html", gin.H{"Title": "Booking received"})
}

// Services renders the service catalog
func (h *PublicHandler) Services(c *gin.Context) {
	page, err := h.siteService.GetServicesPage(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "services.html", gin.H{
		"Title":       "Our Services",
		"Services":    page.Services,
		"CaseStudies": page.CaseStudies,
	})
}

// CaseStudyDetail renders one case study with its savings figures
func (h *PublicHandler) CaseStudyDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	caseStudy, err := h.siteService.GetCaseStudy(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "case_study_detail.html", gin.H{
		"Title":             caseStudy.Title,
		"CaseStudy":         caseStudy,
		"EnergySavings":     caseStudy.EnergySavings(),
		"SavingsPercentage": caseStudy.SavingsPercentage(),
	})
}

// Contact renders the contact page
func (h *PublicHandler) Contact(c *gin.Context) {
	renderContact(c, &request.LeadForm{}, nil, "")
}

// SubmitContact handles the lead form on the contact page
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var form request.LeadForm
	_ = c.ShouldBind(&form)

	if errs, formErr := h.submitLead(c, &form); errs != nil || formErr != "" {
		renderContact(c, &form, errs, formErr)
		return
	}

	middleware.AddFlash(c, LeadSubmittedMessage)
	c.Redirect(http.StatusSeeOther, "/")
}

func renderContact(c *gin.Context, form *request.LeadForm, errs map[string][]string, formErr string) {
	render(c, http.StatusOK, "contact.html", gin.H{
		"Title":     "Contact Us",
		"Form":      form,
		"Errors":    errs,
		"FormError": formErr,
	})
}

// submitLead validates and stores the form. It returns the field errors or a
// form level message when the submission did not go through.
func (h *PublicHandler) submitLead(c *gin.Context, form *request.LeadForm) (map[string][]string, string) {
	input, err := form.Parse(h.validator)
	if err != nil {
		errs, _ := formErrors(err)
		return errs, ""
	}

	lead, err := h.leadService.Submit(c.Request.Context(), input)
	if err != nil {
		slog.Error("failed to submit service request",
			"request_id", requestid.Get(c),
			"error", err,
		)
		return nil, LeadFailedMessage
	}

	middleware.IncrementLeadsSubmitted(lead.Service.String())
	return nil, ""
}

// StaticPage renders a page that needs no data
func StaticPage(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, name, gin.H{"Title": title})
	}
}

// NotFound renders the 404 page for unmatched routes
func NotFound(c *gin.Context) {
	renderNotFound(c)
}
