// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags during CI/CD. Empty values are reported
// as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// IsReleased reports whether a version was stamped into the binary.
func (a AppBuildInfo) IsReleased() bool {
	return a.buildVersion != notAvailable
}

// Print writes the build banner to w.
func (a AppBuildInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", a.buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", a.buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", a.buildCommit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
