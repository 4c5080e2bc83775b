// Package buildinfo exposes version metadata injected at link time.
//
// Build with:
//
//	go build -ldflags "-X todoapp/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X todoapp/internal/buildinfo.buildDate=2026-08-30 \
//	  -X todoapp/internal/buildinfo.buildCommit=abc1234"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
