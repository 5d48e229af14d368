// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(src, out string) *Config {
	cfg := DefaultConfig()
	cfg.SourceDir = src
	cfg.OutputDir = out
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "**/*.svg", cfg.Pattern)
	assert.Equal(t, []string{PluginSVGO, PluginJSX, PluginPrettier}, cfg.Plugins)
	assert.Equal(t, map[string]string{"#000": "currentColor"}, cfg.ReplaceAttrValues)
	assert.True(t, cfg.Native)
	assert.True(t, cfg.TypeScript)
	assert.False(t, cfg.SVGO.RemoveViewBox)
	assert.True(t, cfg.SVGO.RemoveXMLNS)
	assert.Equal(t, PrettierConfig{
		TabWidth:      2,
		PrintWidth:    80,
		SingleQuote:   true,
		TrailingComma: "all",
		ArrowParens:   "avoid",
	}, cfg.Prettier)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "no source", mutate: func(c *Config) { c.SourceDir = "" }, wantErr: true},
		{name: "bad ext", mutate: func(c *Config) { c.ComponentExt = "vue" }, wantErr: true},
		{name: "bad trailing comma", mutate: func(c *Config) { c.Prettier.TrailingComma = "some" }, wantErr: true},
		{name: "bad index mode", mutate: func(c *Config) { c.IndexMode = "lazy" }, wantErr: true},
		{name: "no plugins", mutate: func(c *Config) { c.Plugins = nil }, wantErr: true},
		{name: "negative concurrency", mutate: func(c *Config) { c.Concurrency = -1 }, wantErr: true},
		{name: "jsx ext", mutate: func(c *Config) { c.ComponentExt = "jsx" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("src", "out")
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigValidateUnknownPlugin(t *testing.T) {
	cfg := testConfig("src", "out")
	cfg.Plugins = []string{PluginSVGO, "minify"}
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownPlugin)
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svg2rn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source: assets/icons
output: src/icons
template: imports
native: false
prettier:
  singleQuote: false
  bracketSpacing: true
svgo:
  multipass: false
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "assets/icons", cfg.SourceDir)
	assert.Equal(t, "src/icons", cfg.OutputDir)
	assert.Equal(t, TemplateImports, cfg.Template)
	assert.False(t, cfg.Native)
	assert.False(t, cfg.Prettier.SingleQuote)
	assert.True(t, cfg.Prettier.BracketSpacing)
	assert.False(t, cfg.SVGO.Multipass)
	// Untouched fields keep their defaults.
	assert.True(t, cfg.TypeScript)
	assert.Equal(t, "all", cfg.Prettier.TrailingComma)
	assert.True(t, cfg.SVGO.RemoveXMLNS)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svg2rn.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
source = "assets"
output = "out"
ext = "jsx"
typescript = false
concurrency = 2

[prettier]
useTabs = true
arrowParens = "always"

[preview]
dir = "previews"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.SourceDir)
	assert.Equal(t, "jsx", cfg.ComponentExt)
	assert.False(t, cfg.TypeScript)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Prettier.UseTabs)
	assert.Equal(t, "always", cfg.Prettier.ArrowParens)
	assert.Equal(t, 2, cfg.Prettier.TabWidth)
	assert.Equal(t, "previews", cfg.Preview.Dir)
	assert.Equal(t, 64, cfg.Preview.Size)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "svg2rn.json"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("prettier: [1, 2"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	c := cfg.Clone()
	c.ReplaceAttrValues["#fff"] = "white"
	c.Plugins[0] = "other"

	assert.NotContains(t, cfg.ReplaceAttrValues, "#fff")
	assert.Equal(t, PluginSVGO, cfg.Plugins[0])
}
