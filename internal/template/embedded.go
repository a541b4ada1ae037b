package template

import "embed"

// defaults holds the bundled default template bodies, one file per
// control-file kind.
//
//go:embed defaults/*.tmpl
var defaults embed.FS
