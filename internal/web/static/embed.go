// Package static embeds the site's assets.
package static

import "embed"

//go:embed styles.css
var FS embed.FS
