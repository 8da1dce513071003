package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/middleware"
	"github.com/sangkips/solarpower/internal/presentation/http/requestid"
	"github.com/sangkips/solarpower/pkg/apperror"
	"github.com/sangkips/solarpower/pkg/storage"
)

// GetActor returns the staff identity and client IP recorded in audit entries
func GetActor(c *gin.Context) service.Actor {
	return service.Actor{
		Username: middleware.GetStaffUsername(c),
		IP:       c.ClientIP(),
	}
}

// render executes a page template with the data every page expects
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Staff"] = middleware.GetStaffUsername(c)
	data["Flashes"] = middleware.Flashes(c)
	data["Path"] = c.Request.URL.Path
	c.HTML(status, name, data)
}

// renderError renders the 404 page for missing resources and logs anything else as a 500
func renderError(c *gin.Context, err error) {
	if apperror.IsNotFound(err) {
		renderNotFound(c)
		return
	}

	appErr := apperror.GetAppError(err)
	if appErr.Code == http.StatusConflict || appErr.Code == http.StatusBadRequest {
		render(c, appErr.Code, "error.html", gin.H{"Title": "Request refused", "Message": appErr.Message})
		return
	}

	slog.Error("request failed",
		"request_id", requestid.Get(c),
		"path", c.Request.URL.Path,
		"error", err,
	)
	_ = c.Error(err)
	render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Server error",
		"Message": "Something went wrong on our side. Please try again later.",
	})
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Page not found"})
}

// formErrors returns the per-field messages of a validation error
func formErrors(err error) (map[string][]string, bool) {
	if !apperror.IsValidation(err) {
		return nil, false
	}
	return apperror.GetAppError(err).FieldMessages(), true
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// saveUpload stores the optional image posted in field. It returns nil when no file was sent.
func saveUpload(c *gin.Context, store *storage.LocalStorage, field, dir string) (*string, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewFieldError(field, "Upload a valid image.")
	}

	stored, err := store.SaveImage(fh, dir)
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		return nil, apperror.NewFieldError(field, "The file is too large.")
	case errors.Is(err, storage.ErrUnsupportedType):
		return nil, apperror.NewFieldError(field, "Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	case err != nil:
		return nil, err
	}
	return &stored, nil
}

// discardUpload removes an image stored for a form the service then rejected
func discardUpload(store *storage.LocalStorage, stored *string) {
	if stored == nil {
		return
	}
	if err := store.Remove(*stored); err != nil {
		slog.Warn("Failed to remove orphaned upload", "path", *stored, "error", err)
	}
}
