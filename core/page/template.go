package page

import _ "embed"

// DefaultTemplate is the page used when no template file is configured.
// Its mount point is "#blog-content".
//
//go:embed template.html
var DefaultTemplate []byte
