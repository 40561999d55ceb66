// Package web holds the embedded single-page front end.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
