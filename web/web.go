// Package web embeds the profile template and static assets.
package web

import "embed"

//go:embed profile.html static
var FS embed.FS
