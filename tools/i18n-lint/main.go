// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-lint checks that every translation key used in the Go sources exists
// in the English locale and that every other locale carries the same keys.
//
//	go run ./tools/i18n-lint
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
)

// keyLiteral matches i18n.T("a.b") calls and bare "group.key" literals, so
// IDs handed to helpers (storageErrorResult("result.error_save", ...)) count
// as used too.
var keyLiteral = regexp.MustCompile(`i18n\.T\("([^"]+)"|"((?:result|tui|cli)\.[a-z_]+)"`)

// report collects the findings of one lint run.
type report struct {
	Undefined []string            // used in code, absent from the primary locale
	Orphaned  []string            // in the primary locale, never used
	Missing   map[string][]string // locale file -> keys it lacks
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	r, err := lint(".", localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-lint: %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, dir string) (report, error) {
	r := report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeys(filepath.Join(dir, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}

	for k := range used {
		if _, ok := primary[k]; !ok {
			r.Undefined = append(r.Undefined, k)
		}
	}
	for k := range primary {
		if _, ok := used[k]; !ok {
			r.Orphaned = append(r.Orphaned, k)
		}
	}
	slices.Sort(r.Undefined)
	slices.Sort(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, f := range files {
		if filepath.Base(f) == primaryLocale {
			continue
		}
		keys, err := loadKeys(f)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", f, err)
		}
		var missing []string
		for k := range primary {
			if _, ok := keys[k]; !ok {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			r.Missing[filepath.Base(f)] = missing
		}
	}
	return r, nil
}

// findUsedKeys scans non-test .go files below root, skipping tools/.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := map[string]struct{}{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyLiteral.FindAllStringSubmatch(string(content), -1) {
			if m[1] != "" {
				keys[m[1]] = struct{}{}
			} else if m[2] != "" {
				keys[m[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeys reads a flat locale file. Nested maps are flattened with dots so
// either layout works.
func loadKeys(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := map[string]struct{}{}
	flatten("", data, keys)
	return keys, nil
}

func flatten(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flatten(k, v, keys)
	}
}

func printReport(w io.Writer, r report) {
	section := func(title string, items []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(items) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, k := range items {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
	section("Undefined keys (used in code, missing from "+primaryLocale+")", r.Undefined)
	section("Orphaned keys (never used)", r.Orphaned)

	locales := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		locales = append(locales, f)
	}
	slices.Sort(locales)
	for _, f := range locales {
		section("Missing in "+f, r.Missing[f])
	}
	if r.failed() {
		fmt.Fprintln(w, "Found issues that need to be addressed.")
	} else {
		fmt.Fprintln(w, "All translation files are consistent.")
	}
}
