// Package web embeds the HTML templates served by the index page.
package web

import "embed"

//go:embed views/*.html
var FS embed.FS
