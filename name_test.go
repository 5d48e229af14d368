// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentName(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"arrow-left", "ArrowLeft"},
		{"arrow_left", "ArrowLeft"},
		{"home", "Home"},
		{"ArrowLeft", "ArrowLeft"},
		// Only the part before the first dot names the component.
		{"icon.outline", "Icon"},
		{"icon.outline.filled", "Icon"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, ComponentName(tt.base))
		})
	}
}

func TestCheckName(t *testing.T) {
	assert.NoError(t, checkName("ArrowLeft"))
	assert.ErrorIs(t, checkName(""), ErrEmptyName)
	assert.ErrorIs(t, checkName("24Px"), ErrInvalidName)
	assert.ErrorIs(t, checkName("Arrow Left"), ErrInvalidName)
}
