// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.
package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected default, got %q", got)
	}
	Version = "v1.2.3"
	if got := VersionOrDefault("dev"); got != "v1.2.3" {
		t.Fatalf("expected injected version, got %q", got)
	}
}
