package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// IsSlug reports whether s only contains letters, digits, underscores or hyphens
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// UploadFileName returns a random file name keeping the lower-cased extension of original
func UploadFileName(original string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(original))
}
