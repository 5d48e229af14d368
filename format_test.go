// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PrettierConfig)
		in     string
		want   string
	}{
		{
			name: "single quotes",
			in:   `import Foo from "./Foo";`,
			want: "import Foo from './Foo';\n",
		},
		{
			name:   "double quotes",
			mutate: func(c *PrettierConfig) { c.SingleQuote = false },
			in:     `import 'side-effect';`,
			want:   "import \"side-effect\";\n",
		},
		{
			name: "no bracket spacing",
			in:   `export { A,B , C };`,
			want: "export {A, B, C};\n",
		},
		{
			name:   "bracket spacing",
			mutate: func(c *PrettierConfig) { c.BracketSpacing = true },
			in:     `export {A,B};`,
			want:   "export { A, B };\n",
		},
		{
			name: "blank lines",
			in:   "\n\nconst a = 1;   \n\n\n\nconst b = 2;\n\n\n",
			want: "const a = 1;\n\nconst b = 2;\n",
		},
		{
			name: "avoid arrow parens",
			in:   "const Icon = (props) => null;",
			want: "const Icon = props => null;\n",
		},
		{
			name: "typed arrow params kept",
			in:   "const Icon = (props: SvgProps) => null;",
			want: "const Icon = (props: SvgProps) => null;\n",
		},
		{
			name:   "always arrow parens",
			mutate: func(c *PrettierConfig) { c.ArrowParens = "always" },
			in:     "export const Icon = props => null;",
			want:   "export const Icon = (props) => null;\n",
		},
		{
			name:   "tabs",
			mutate: func(c *PrettierConfig) { c.UseTabs = true },
			in:     "(\n  <G>\n    <Path />\n   x\n  </G>\n)",
			want:   "(\n\t<G>\n\t\t<Path />\n\t x\n\t</G>\n)\n",
		},
		{
			name:   "spaces",
			mutate: func(c *PrettierConfig) { c.TabWidth = 4 },
			in:     "(\n\t<G />\n)",
			want:   "(\n    <G />\n)\n",
		},
		{
			name: "wrapped import",
			in:   `import Svg, {Circle, ClipPath, Defs, LinearGradient, Path, Stop, SvgProps} from 'react-native-svg';`,
			want: `import Svg, {
  Circle,
  ClipPath,
  Defs,
  LinearGradient,
  Path,
  Stop,
  SvgProps,
} from 'react-native-svg';
`,
		},
		{
			name:   "wrapped without trailing comma",
			mutate: func(c *PrettierConfig) { c.TrailingComma = "none" },
			in:     `import Svg, {Circle, ClipPath, Defs, LinearGradient, Path, Stop, SvgProps} from 'react-native-svg';`,
			want: `import Svg, {
  Circle,
  ClipPath,
  Defs,
  LinearGradient,
  Path,
  Stop,
  SvgProps
} from 'react-native-svg';
`,
		},
		{
			name: "empty",
			in:   "\n \n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig().Prettier
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			assert.Equal(t, tt.want, NewFormatter(cfg).Format(tt.in))
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	f := NewFormatter(DefaultConfig().Prettier)
	once := f.Format(squareComponent)
	assert.Equal(t, once, f.Format(once))
}
