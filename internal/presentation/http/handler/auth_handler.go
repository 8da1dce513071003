package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/dto/request"
	"github.com/sangkips/solarpower/internal/presentation/http/middleware"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/sangkips/solarpower/pkg/utils"
	"github.com/sangkips/solarpower/pkg/validation"
)

const dashboardPath = "/adm/dashboard/"

// AuthHandler handles staff login and logout
type AuthHandler struct {
	authService  *service.AuthService
	jwtManager   *utils.JWTManager
	validator    *validation.Validator
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, jwtManager *utils.JWTManager, validator *validation.Validator, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		jwtManager:   jwtManager,
		validator:    validator,
		secureCookie: secureCookie,
	}
}

// LoginPage renders the login form, or skips it for an existing session
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if _, err := h.jwtManager.ValidateSessionToken(token); err == nil {
			c.Redirect(http.StatusFound, dashboardPath)
			return
		}
	}

	render(c, http.StatusOK, "admin_login.html", gin.H{
		"Title": "Staff login",
		"Form":  &request.LoginForm{Next: c.Query("next")},
	})
}

// Login handles the login form
func (h *AuthHandler) Login(c *gin.Context) {
	var form request.LoginForm
	_ = c.ShouldBind(&form)
	form.Normalize()

	if errs := h.validator.Struct(&form); len(errs) > 0 {
		h.renderLogin(c, &form, apperror.NewValidationError(errs).FieldMessages(), "")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: form.Username,
		Password: form.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			h.renderLogin(c, &form, nil, apperror.ErrInvalidCredentials.Message)
			return
		}
		renderError(c, err)
		return
	}

	middleware.SetSessionCookie(c, output.SessionToken, h.jwtManager.Expiry(), h.secureCookie)
	c.Redirect(http.StatusSeeOther, form.SafeNext(dashboardPath))
}

func (h *AuthHandler) renderLogin(c *gin.Context, form *request.LoginForm, errs map[string][]string, formErr string) {
	form.Password = ""
	render(c, http.StatusOK, "admin_login.html", gin.H{
		"Title":     "Staff login",
		"Form":      form,
		"Errors":    errs,
		"FormError": formErr,
	})
}

// Logout ends the staff session
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.secureCookie)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
