package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("installation_services-2"))
	assert.False(t, IsSlug("with space"))
	assert.False(t, IsSlug(""))
}

func TestUploadFileNameKeepsExtension(t *testing.T) {
	name := UploadFileName("Roof Photo.JPG")

	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Len(t, name, 36+len(".jpg"))
	assert.NotEqual(t, name, UploadFileName("Roof Photo.JPG"))
}
