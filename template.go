// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"fmt"
	"path/filepath"
	"text/template"
)

// Built-in templates.
const (
	// TemplateFixed writes a fixed pair of react-native-svg import lines
	// whatever elements the component uses.
	TemplateFixed = "fixed"
	// TemplateImports writes the imports computed from the converted tree.
	TemplateImports = "imports"
)

const fixedTemplate = `import React from 'react';
import Svg, { Path, SvgProps } from 'react-native-svg';

const {{.ComponentName}} = ({{.Props}}) => {{.JSX}};

{{.Exports}}
`

const importsTemplate = `{{range .Imports}}{{.}}
{{end}}
const {{.ComponentName}} = ({{.Props}}) => {{.JSX}};

{{.Exports}}
`

// loadTemplate returns a built-in template by name, or parses the named
// file as a text/template executed with TemplateData.
func loadTemplate(name string) (*template.Template, error) {
	switch name {
	case TemplateFixed:
		return template.New(name).Parse(fixedTemplate)
	case TemplateImports:
		return template.New(name).Parse(importsTemplate)
	}

	tmpl, err := template.New(filepath.Base(name)).ParseFiles(name)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	return tmpl, nil
}
