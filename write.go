// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"fmt"
	"os"
	"path/filepath"
)

// Component is the generated source of one asset.
type Component struct {
	Name string
	Path string
	Code string
}

// componentPath returns outputDir/<name>.<ext>.
func componentPath(outputDir, name, ext string) string {
	return filepath.Join(outputDir, name+"."+ext)
}

// WriteComponent creates or overwrites the component file, creating its
// directory when needed.
func WriteComponent(c Component) error {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(c.Path, []byte(c.Code), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Path, err)
	}
	return nil
}
