// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BuildIndex returns the source of a barrel module importing every named
// component from its sibling file and re-exporting them all. Names are
// sorted and deduplicated; no names gives a bare "export {};".
func BuildIndex(names []string, cfg *Config) string {
	names = uniqueSorted(names)
	f := NewFormatter(cfg.Prettier)

	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "import %s from %s;\n", n, f.quote("./"+n))
	}
	b.WriteString(f.wrapList("export ", names, ";"))
	b.WriteByte('\n')
	return b.String()
}

// ScanIndex returns the component names of the files with extension ext
// currently in outputDir. Names follow the same first-dot rule as
// ComponentName.
func ScanIndex(outputDir, ext string) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", outputDir, err)
	}

	suffix := "." + strings.ToLower(ext)
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), suffix) {
			continue
		}
		if name := ComponentName(e.Name()); name != "" {
			names = append(names, name)
		}
	}
	return uniqueSorted(names), nil
}

// WriteIndex writes content to outputDir/indexFile and returns the path.
func WriteIndex(outputDir, indexFile, content string) (string, error) {
	path := filepath.Join(outputDir, indexFile)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("write index: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write index: %w", err)
	}
	return path, nil
}

func uniqueSorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if i > 0 && s == out[n-1] {
			continue
		}
		out[n] = s
		n++
	}
	return out[:n]
}
