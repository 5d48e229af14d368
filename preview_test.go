// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview(t *testing.T) {
	img, err := RenderPreview([]byte(squareSVG), 16)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	assert.Equal(t, uint8(0xff), img.RGBAAt(8, 8).A)
}

func TestWritePreview(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "previews")

	path, err := WritePreview([]byte(squareSVG), 32, dir, "Square")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Square.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestRenderPreviewMalformed(t *testing.T) {
	_, err := RenderPreview([]byte(`<svg><path`), 16)
	assert.Error(t, err)
}
