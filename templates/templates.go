// Package templates embeds the html templates of the jury console.
package templates

import "embed"

// FS holds the layout and every page template
//
//go:embed *.html
var FS embed.FS
