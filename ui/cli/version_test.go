// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"runtime/debug"
	"testing"

	"github.com/toeirei/dataentry/buildvars"
)

func withBuildvars(t *testing.T, version, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := buildvars.Version, buildvars.Commit, buildvars.Date
	buildvars.Version, buildvars.Commit, buildvars.Date = version, commit, date
	t.Cleanup(func() {
		buildvars.Version, buildvars.Commit, buildvars.Date = oldV, oldC, oldD
	})
}

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	withBuildvars(t, "", "", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != "" || d != "" {
		t.Fatalf("expected empty commit and date, got %q %q", c, d)
	}
}

func TestResolveBuildVersion_LinkTimeWins(t *testing.T) {
	withBuildvars(t, "v9.0.0", "abc123", "2026-01-02T03:04:05Z")
	info := &debug.BuildInfo{
		Main:     debug.Module{Path: modulePath, Version: "v1.2.3"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fff"}},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v9.0.0" || c != "abc123" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected %q %q %q", v, c, d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	withBuildvars(t, "", "", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: modulePath, Version: "v0.3.1-0.20260101000000-d1692e4643ee"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v0.3.1-0.20260101000000-d1692e4643ee" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_VCSSettings(t *testing.T) {
	withBuildvars(t, "", "", "")
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "d1692e4"},
			{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "d1692e4" {
		t.Fatalf("expected commit as version fallback got %s", v)
	}
	if c != "d1692e4" || d != "2026-03-04T05:06:07Z" {
		t.Fatalf("unexpected commit/date %q %q", c, d)
	}
}

func TestResolveBuildVersion_NothingKnown(t *testing.T) {
	withBuildvars(t, "", "", "")
	v, c, _ := resolveBuildVersion(&debug.BuildInfo{})
	if v != "dev" || c != "" {
		t.Fatalf("expected dev with no commit, got %q %q", v, c)
	}
}
