// Package templates embeds the page templates so the server and its tests
// render the same files regardless of working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
