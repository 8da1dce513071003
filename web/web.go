// Package web embeds the HTML templates and static assets served by the site.
package web

import "embed"

// Templates holds every page template, parsed once at startup
//
//go:embed templates/*.html
var Templates embed.FS

// Static holds the stylesheet and scripts served under /static/
//
//go:embed static
var Static embed.FS
