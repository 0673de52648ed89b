package main

import (
	"path/filepath"
	"strings"
)

// outputPath picks the file the rendered tabs are written to. Without an
// explicit out path the input's stem gets an "-output" suffix. The configured
// extension is forced either way.
func outputPath(in, out, extension string) string {
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + "-output"
	}
	return strings.TrimSuffix(out, filepath.Ext(out)) + extension
}
