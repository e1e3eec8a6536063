package migrations

import "embed"

// Files holds the ordered schema migrations compiled into the binary so a
// fresh deployment needs nothing beyond the executable.
//
//go:embed *.sql
var Files embed.FS
