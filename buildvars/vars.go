// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars holds values injected at link time, e.g.
//
//	go build -ldflags "-X github.com/toeirei/dataentry/buildvars.Version=v1.0.0 \
//	  -X github.com/toeirei/dataentry/buildvars.Commit=$(git rev-parse --short HEAD)"
package buildvars

// Version is empty for local and development builds.
var Version string

// Commit is the short VCS revision, if the build provided one.
var Commit string

// Date is the RFC3339 build time, if the build provided one.
var Date string

// VersionOrDefault returns Version if set, otherwise def.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}
