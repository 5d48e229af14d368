// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Asset is a source SVG file to convert.
type Asset struct {
	// Path is the file path, joined onto the source directory.
	Path string
	// Base is the file name without its extension.
	Base string
}

// Discover returns every file below sourceDir matching pattern, sorted by
// path. Walk errors are returned, not skipped.
func Discover(ctx context.Context, sourceDir, pattern string) ([]Asset, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source directory: %s is not a directory", sourceDir)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(sourceDir), pattern, func(path string, d os.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() {
			matches = append(matches, path)
		}
		return nil
	}, doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", sourceDir, err)
	}
	sort.Strings(matches)

	assets := make([]Asset, 0, len(matches))
	for _, m := range matches {
		name := filepath.Base(m)
		assets = append(assets, Asset{
			Path: filepath.Join(sourceDir, filepath.FromSlash(m)),
			Base: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}
	return assets, nil
}
