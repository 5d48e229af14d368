// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"image"
	"image/draw"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/image/math/f32"
)

func mustSVG(t *testing.T, src string) *Node {
	t.Helper()
	root, err := NewSVG(strings.NewReader(src))
	require.NoError(t, err)
	return root
}

func TestEncodeIVG(t *testing.T) {
	ivg, err := EncodeIVG(mustSVG(t, squareSVG))
	require.NoError(t, err)

	m, err := iconvg.DecodeMetadata(ivg)
	require.NoError(t, err)
	assert.Equal(t, iconvg.Rectangle{
		Min: f32.Vec2{-24, -24},
		Max: f32.Vec2{24, 24},
	}, m.ViewBox)

	dst := image.NewRGBA(image.Rect(0, 0, 48, 48))
	var z iconvg.Rasterizer
	z.SetDstImage(dst, dst.Bounds(), draw.Src)
	require.NoError(t, iconvg.Decode(&z, ivg, nil))
	assert.NotZero(t, dst.RGBAAt(24, 24).A)
}

func TestEncodeIVGShapes(t *testing.T) {
	tests := []struct {
		name string
		svg  string
	}{
		{"circle", `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="10"/></svg>`},
		{"ellipse", `<svg viewBox="0 0 24 24"><ellipse cx="12" cy="12" rx="10" ry="5"/></svg>`},
		{"rect", `<svg width="24px" height="24px"><rect x="2" y="2" width="20" height="20"/></svg>`},
		{"opacity", `<svg viewBox="0 0 24 24"><path d="M0 0h4v4z" opacity=".5"/><path d="M8 8h4v4z" fill-opacity=".5"/></svg>`},
		{"outline skipped", `<svg viewBox="0 0 24 24"><path d="M0 0h4v4z" fill="none" stroke="#000"/></svg>`},
		{"defs skipped", `<svg viewBox="0 0 24 24"><defs><path transform="scale(2)" d="M0 0"/></defs><path d="M0 0h4v4z"/></svg>`},
		{"all commands", `<svg viewBox="0 0 24 24"><path d="m2 2 2 0L6 6H8V10h1v1C1 1 2 2 3 3c1 1 2 2 3 3S4 4 5 5s1 1 2 2Q1 1 2 2q1 1 2 2T3 3t1 1A5 5 0 0 1 10 10a5 5 30 1 0 2 2zM12 12l1 1Z"/></svg>`},
		{"compact numbers", `<svg viewBox="0 0 24 24"><path d="M.5.5l1.5.5-1-1e0a1 1 0 011 1z"/></svg>`},
		{"draw after close", `<svg viewBox="0 0 24 24"><path d="M0 0h4v4zl2 2v1z"/></svg>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ivg, err := EncodeIVG(mustSVG(t, tt.svg))
			require.NoError(t, err)
			_, err = iconvg.DecodeMetadata(ivg)
			assert.NoError(t, err)
		})
	}
}

func TestEncodeIVGErrors(t *testing.T) {
	tests := []struct {
		name        string
		svg         string
		unsupported bool
	}{
		{"transform", `<svg viewBox="0 0 24 24"><g transform="rotate(45)"><path d="M0 0h1z"/></g></svg>`, true},
		{"no size", `<svg><path d="M0 0h1z"/></svg>`, false},
		{"bad viewBox", `<svg viewBox="0 0 24"/>`, false},
		{"empty viewBox", `<svg viewBox="0 0 0 0"/>`, false},
		{"no moveto", `<svg viewBox="0 0 24 24"><path d="L1 1"/></svg>`, false},
		{"leading number", `<svg viewBox="0 0 24 24"><path d="1 1"/></svg>`, false},
		{"bad flag", `<svg viewBox="0 0 24 24"><path d="M0 0a1 1 0 2 1 1 1"/></svg>`, false},
		{"missing argument", `<svg viewBox="0 0 24 24"><path d="M0 0L1"/></svg>`, false},
		{"bad number", `<svg viewBox="0 0 24 24"><circle cx="x" cy="1" r="1"/></svg>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeIVG(mustSVG(t, tt.svg))
			require.Error(t, err)
			if tt.unsupported {
				assert.ErrorIs(t, err, ErrUnsupported)
			}
		})
	}
}

func TestPathScanner(t *testing.T) {
	sc := &pathScanner{s: "1.5.5 -1e2,+3"}
	var got []float32
	for !sc.done() {
		v, err := sc.number()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []float32{1.5, .5, -100, 3}, got)

	sc = &pathScanner{s: "011"}
	for _, want := range []float32{0, 1, 1} {
		v, err := sc.flag()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.True(t, sc.done())
}
