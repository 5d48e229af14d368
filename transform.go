// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"text/template"
)

// Built-in plugin names.
const (
	PluginSVGO     = "svgo"
	PluginJSX      = "jsx"
	PluginPrettier = "prettier"
)

// ErrUnknownPlugin is returned for plugin names that are not registered.
var ErrUnknownPlugin = errors.New("unknown plugin")

// State is shared by the plugins of one Transform call.
type State struct {
	ComponentName string
	FilePath      string

	// SVG is the markup the JSX step reads. It starts as the input and is
	// replaced by the optimizer.
	SVG []byte
	// Imports are the import statements the JSX step computed.
	Imports []string
	// Dropped lists the elements the JSX step left out because they have no
	// react-native-svg counterpart.
	Dropped []string

	tmpl *template.Template
}

// Plugin is one step of the transform chain. Apply receives the output of
// the previous step.
type Plugin interface {
	Name() string
	Apply(code string, cfg *Config, state *State) (string, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Plugin{}
)

func init() {
	RegisterPlugin(svgoPlugin{})
	RegisterPlugin(jsxPlugin{})
	RegisterPlugin(prettierPlugin{})
}

// RegisterPlugin makes p available to Config.Plugins under p.Name().
func RegisterPlugin(p Plugin) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.Name()] = p
}

func lookupPlugin(name string) (Plugin, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// Transformer turns SVG documents into component sources.
type Transformer struct {
	cfg   *Config
	chain []Plugin
	tmpl  *template.Template
}

// NewTransformer resolves the plugin chain and the template of cfg.
func NewTransformer(cfg *Config) (*Transformer, error) {
	t := &Transformer{cfg: cfg}
	for _, name := range cfg.Plugins {
		p, ok := lookupPlugin(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
		}
		t.chain = append(t.chain, p)
	}

	tmpl, err := loadTemplate(cfg.Template)
	if err != nil {
		return nil, err
	}
	t.tmpl = tmpl
	return t, nil
}

// Transform runs the plugin chain over one SVG document.
func (t *Transformer) Transform(ctx context.Context, svg []byte, state *State) (string, error) {
	state.SVG = svg
	state.tmpl = t.tmpl

	code := string(svg)
	for _, p := range t.chain {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		var err error
		code, err = p.Apply(code, t.cfg, state)
		if err != nil {
			return "", fmt.Errorf("%s: %w", p.Name(), err)
		}
	}
	return code, nil
}

type svgoPlugin struct{}

func (svgoPlugin) Name() string { return PluginSVGO }

func (svgoPlugin) Apply(code string, cfg *Config, state *State) (string, error) {
	out, err := Optimize([]byte(code), cfg.SVGO)
	if err != nil {
		return "", err
	}
	state.SVG = out
	return string(out), nil
}

type prettierPlugin struct{}

func (prettierPlugin) Name() string { return PluginPrettier }

func (prettierPlugin) Apply(code string, cfg *Config, _ *State) (string, error) {
	return NewFormatter(cfg.Prettier).Format(code), nil
}
