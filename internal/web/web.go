// Package web embeds the single-page client served at the site root. The
// client is plain HTML/JS consuming the JSON API with the bearer token kept
// in browser storage.
package web

import "embed"

//go:embed static
var Assets embed.FS
