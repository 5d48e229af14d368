// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.svg":               "",
		"a.svg":               "",
		"nested/deep/c.svg":   "",
		"nested/icon.png":     "",
		"nested/readme.md":    "",
		"icon.outline.svg":    "",
		"nested/dir.svg/x.md": "",
	})

	assets, err := Discover(context.Background(), dir, "**/*.svg")
	require.NoError(t, err)

	assert.Equal(t, []Asset{
		{Path: filepath.Join(dir, "a.svg"), Base: "a"},
		{Path: filepath.Join(dir, "b.svg"), Base: "b"},
		{Path: filepath.Join(dir, "icon.outline.svg"), Base: "icon.outline"},
		{Path: filepath.Join(dir, "nested", "deep", "c.svg"), Base: "c"},
	}, assets)
}

func TestDiscoverEmpty(t *testing.T) {
	assets, err := Discover(context.Background(), t.TempDir(), "**/*.svg")
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestDiscoverErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.svg")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := Discover(context.Background(), filepath.Join(dir, "missing"), "**/*.svg")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Discover(context.Background(), file, "**/*.svg")
	assert.Error(t, err)

	_, err = Discover(context.Background(), dir, "[")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Discover(ctx, dir, "**/*.svg")
	assert.ErrorIs(t, err, context.Canceled)
}
