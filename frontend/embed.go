// Package frontend holds the embedded dashboard page and its assets.
package frontend

import "embed"

// StaticFiles bundles the page template and the static assets
//
//go:embed templates static
var StaticFiles embed.FS
