package schemas

import "embed"

//go:embed requests
var SchemasFS embed.FS
