package appfs

import "embed"

// FS holds the templates, static files and assets shipped within the binary.
//go:embed assets templates static
var FS embed.FS
