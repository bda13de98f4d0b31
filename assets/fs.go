// Package assets embeds static resources shipped with the binaries:
// email templates and database migrations.
package assets

import "embed"

//go:embed templates migrations
var FS embed.FS
