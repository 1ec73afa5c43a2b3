package hooks

import "embed"

// templatesFS holds the hook scripts installed into the template directory.
//
//go:embed templates/*
var templatesFS embed.FS
