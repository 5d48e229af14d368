// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Index modes.
const (
	// IndexGenerated builds the index from the components written in the
	// current run.
	IndexGenerated = "generated"
	// IndexScan builds the index from the component files found in the
	// output directory.
	IndexScan = "scan"
)

// PrettierConfig holds the formatting style of generated sources.
type PrettierConfig struct {
	UseTabs        bool   `yaml:"useTabs" toml:"useTabs"`
	TabWidth       int    `yaml:"tabWidth" toml:"tabWidth" validate:"min=1,max=16"`
	PrintWidth     int    `yaml:"printWidth" toml:"printWidth" validate:"min=20,max=400"`
	SingleQuote    bool   `yaml:"singleQuote" toml:"singleQuote"`
	TrailingComma  string `yaml:"trailingComma" toml:"trailingComma" validate:"oneof=none es5 all"`
	BracketSpacing bool   `yaml:"bracketSpacing" toml:"bracketSpacing"`
	ArrowParens    string `yaml:"arrowParens" toml:"arrowParens" validate:"oneof=always avoid"`
}

// SVGOConfig controls the structural optimizer.
type SVGOConfig struct {
	// Multipass repeats the optimizer until the output stops changing.
	Multipass bool `yaml:"multipass" toml:"multipass"`
	// RemoveViewBox drops a viewBox equal to the width/height box. Keep it
	// off for icons, they need the viewBox to scale.
	RemoveViewBox bool `yaml:"removeViewBox" toml:"removeViewBox"`
	// RemoveXMLNS drops the xmlns declaration of the root element.
	RemoveXMLNS bool `yaml:"removeXMLNS" toml:"removeXMLNS"`
}

// PreviewConfig enables PNG previews of every optimized SVG.
type PreviewConfig struct {
	Dir  string `yaml:"dir" toml:"dir"`
	Size int    `yaml:"size" toml:"size" validate:"min=1,max=4096"`
}

// Config is the full configuration of a generator run.
type Config struct {
	SourceDir    string `yaml:"source" toml:"source" validate:"required"`
	OutputDir    string `yaml:"output" toml:"output" validate:"required"`
	Pattern      string `yaml:"pattern" toml:"pattern" validate:"required"`
	ComponentExt string `yaml:"ext" toml:"ext" validate:"oneof=tsx jsx"`
	IndexFile    string `yaml:"indexFile" toml:"indexFile" validate:"required"`
	IndexMode    string `yaml:"indexMode" toml:"indexMode" validate:"oneof=generated scan"`

	// Plugins is the ordered transform chain, see Transformer.
	Plugins []string `yaml:"plugins" toml:"plugins" validate:"min=1,dive,required"`
	// Template is "fixed", "imports" or the path of a text/template file.
	Template string `yaml:"template" toml:"template" validate:"required"`

	Native            bool              `yaml:"native" toml:"native"`
	TypeScript        bool              `yaml:"typescript" toml:"typescript"`
	ReplaceAttrValues map[string]string `yaml:"replaceAttrValues" toml:"replaceAttrValues"`

	Prettier PrettierConfig `yaml:"prettier" toml:"prettier"`
	SVGO     SVGOConfig     `yaml:"svgo" toml:"svgo"`

	IconVG  bool          `yaml:"iconvg" toml:"iconvg"`
	Preview PreviewConfig `yaml:"preview" toml:"preview"`

	// Concurrency bounds the number of assets processed at once. Zero means
	// one per CPU.
	Concurrency int `yaml:"concurrency" toml:"concurrency" validate:"min=0"`
}

// DefaultConfig returns the configuration used when nothing is overridden:
// native TypeScript components, black mapped to currentColor, the viewBox
// kept, single quotes, no bracket spacing, trailing commas everywhere and
// arrow parentheses avoided.
func DefaultConfig() *Config {
	return &Config{
		Pattern:      "**/*.svg",
		ComponentExt: "tsx",
		IndexFile:    "index.ts",
		IndexMode:    IndexGenerated,
		Plugins:      []string{PluginSVGO, PluginJSX, PluginPrettier},
		Template:     TemplateFixed,
		Native:       true,
		TypeScript:   true,
		ReplaceAttrValues: map[string]string{
			"#000": "currentColor",
		},
		Prettier: PrettierConfig{
			UseTabs:        false,
			TabWidth:       2,
			PrintWidth:     80,
			SingleQuote:    true,
			TrailingComma:  "all",
			BracketSpacing: false,
			ArrowParens:    "avoid",
		},
		SVGO: SVGOConfig{
			Multipass:   true,
			RemoveXMLNS: true,
		},
		Preview: PreviewConfig{Size: 64},
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of
// DefaultConfig. The result is not validated.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and that every plugin is registered.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, name := range cfg.Plugins {
		if _, ok := lookupPlugin(name); !ok {
			return fmt.Errorf("invalid config: %w: %q", ErrUnknownPlugin, name)
		}
	}
	return nil
}

// Clone returns a deep copy of cfg.
func (cfg *Config) Clone() *Config {
	c := *cfg
	c.Plugins = append([]string(nil), cfg.Plugins...)
	c.ReplaceAttrValues = make(map[string]string, len(cfg.ReplaceAttrValues))
	for k, v := range cfg.ReplaceAttrValues {
		c.ReplaceAttrValues[k] = v
	}
	return &c
}

func (cfg *Config) indent() string {
	if cfg.Prettier.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", cfg.Prettier.TabWidth)
}

// quote returns s as a JavaScript string literal in the configured quote
// style.
func (cfg *Config) quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	if cfg.Prettier.SingleQuote {
		return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
	}
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
