// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// nativeElements maps SVG element names to react-native-svg components.
var nativeElements = map[string]string{
	"svg":            "Svg",
	"circle":         "Circle",
	"clipPath":       "ClipPath",
	"defs":           "Defs",
	"ellipse":        "Ellipse",
	"foreignObject":  "ForeignObject",
	"g":              "G",
	"image":          "Image",
	"line":           "Line",
	"linearGradient": "LinearGradient",
	"marker":         "Marker",
	"mask":           "Mask",
	"path":           "Path",
	"pattern":        "Pattern",
	"polygon":        "Polygon",
	"polyline":       "Polyline",
	"radialGradient": "RadialGradient",
	"rect":           "Rect",
	"stop":           "Stop",
	"symbol":         "Symbol",
	"text":           "Text",
	"textPath":       "TextPath",
	"tspan":          "TSpan",
	"use":            "Use",
}

type jsxAttr struct {
	name  string
	value string
	expr  bool
}

func (a jsxAttr) String() string {
	switch {
	case a.name == "":
		return "{" + a.value + "}"
	case a.expr:
		return a.name + "={" + a.value + "}"
	}
	return a.name + `="` + a.value + `"`
}

type jsxNode struct {
	tag      string
	attrs    []jsxAttr
	children []*jsxNode
	text     string
}

func (n *jsxNode) isText() bool { return n.tag == "" }

// TemplateData is what a component template renders.
type TemplateData struct {
	Imports       []string
	ComponentName string
	Props         string
	JSX           string
	Exports       string
}

type jsxPlugin struct{}

func (jsxPlugin) Name() string { return PluginJSX }

func (jsxPlugin) Apply(code string, cfg *Config, state *State) (string, error) {
	root, err := NewSVG(strings.NewReader(code))
	if err != nil {
		return "", err
	}

	c := converter{cfg: cfg, used: map[string]bool{}}
	tree := c.node(root)
	tree.attrs = append(tree.attrs, jsxAttr{value: "...props"})
	state.Imports = c.imports()
	state.Dropped = c.dropped

	data := TemplateData{
		Imports:       state.Imports,
		ComponentName: state.ComponentName,
		Props:         c.props(),
		Exports:       fmt.Sprintf("export default %s;", state.ComponentName),
	}
	prefix := len("const " + data.ComponentName + " = (" + data.Props + ") => ;")
	data.JSX = printJSX(tree, cfg, prefix)

	if state.tmpl == nil {
		return "", errors.New("no template")
	}
	var b bytes.Buffer
	if err := state.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("template: %w", err)
	}
	return b.String(), nil
}

type converter struct {
	cfg     *Config
	used    map[string]bool
	dropped []string
}

func (c *converter) node(n *Node) *jsxNode {
	if n.IsText() {
		return &jsxNode{text: n.Text}
	}

	tag := n.Name
	if c.cfg.Native {
		tag = nativeElements[n.Name]
		c.used[tag] = true
	}
	j := &jsxNode{tag: tag}
	for _, a := range n.Attrs {
		if attr, ok := c.attr(a); ok {
			j.attrs = append(j.attrs, attr)
		}
	}
	for _, child := range n.Children {
		if !child.IsText() && c.cfg.Native && nativeElements[child.Name] == "" {
			c.dropped = append(c.dropped, child.Name)
			continue
		}
		j.children = append(j.children, c.node(child))
	}
	return j
}

var numberRe = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// number returns the canonical JavaScript literal of a numeric attribute
// value. Leading zeros are not valid in strict mode, so "08" becomes 8.
func number(s string) (string, bool) {
	if !numberRe.MatchString(s) {
		return "", false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

func (c *converter) attr(a Attr) (jsxAttr, bool) {
	name := jsxAttrName(a.Name)
	if name == "className" && c.cfg.Native {
		return jsxAttr{}, false
	}

	value := a.Value
	r, replaced := c.cfg.ReplaceAttrValues[value]
	if replaced {
		value = r
	}

	if name == "style" {
		return jsxAttr{name: name, value: c.styleObject(value), expr: true}, true
	}
	// Only configured replacements may inject expressions; source values
	// always stay literals.
	if replaced && len(value) > 1 && strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}") {
		return jsxAttr{name: name, value: value[1 : len(value)-1], expr: true}, true
	}
	if n, ok := number(value); ok {
		return jsxAttr{name: name, value: n, expr: true}, true
	}
	if strings.ContainsAny(value, `"\`) {
		return jsxAttr{name: name, value: c.cfg.quote(value), expr: true}, true
	}
	return jsxAttr{name: name, value: value}, true
}

func (c *converter) styleObject(style string) string {
	var props []string
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" {
			continue
		}
		if n, ok := number(v); ok {
			v = n
		} else {
			v = c.cfg.quote(v)
		}
		props = append(props, camelize(k, '-')+": "+v)
	}
	return braces(props, c.cfg.Prettier.BracketSpacing)
}

// jsxAttrName converts an SVG attribute name to its JSX prop name.
func jsxAttrName(name string) string {
	switch {
	case name == "class":
		return "className"
	case strings.HasPrefix(name, "aria-"), strings.HasPrefix(name, "data-"):
		return name
	case strings.Contains(name, ":"):
		return camelize(name, ':')
	}
	return camelize(name, '-')
}

func camelize(s string, sep byte) string {
	var b strings.Builder
	upper := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == sep {
			upper = true
			continue
		}
		if upper && 'a' <= ch && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		upper = false
		b.WriteByte(ch)
	}
	return b.String()
}

func (c *converter) props() string {
	switch {
	case !c.cfg.TypeScript:
		return "props"
	case c.cfg.Native:
		return "props: SvgProps"
	}
	return "props: SVGProps<SVGSVGElement>"
}

func (c *converter) imports() []string {
	bs := c.cfg.Prettier.BracketSpacing
	lines := []string{"import * as React from " + c.cfg.quote("react") + ";"}
	if !c.cfg.Native {
		if c.cfg.TypeScript {
			lines = append(lines, "import type "+braces([]string{"SVGProps"}, bs)+" from "+c.cfg.quote("react")+";")
		}
		return lines
	}

	var named []string
	for tag := range c.used {
		if tag != "Svg" {
			named = append(named, tag)
		}
	}
	if c.cfg.TypeScript {
		named = append(named, "SvgProps")
	}
	sort.Strings(named)

	line := "import Svg"
	if len(named) > 0 {
		line += ", " + braces(named, bs)
	}
	return append(lines, line+" from "+c.cfg.quote("react-native-svg")+";")
}

// braces renders a brace-delimited, comma-separated list on one line.
func braces(items []string, spacing bool) string {
	if len(items) == 0 {
		return "{}"
	}
	if spacing {
		return "{ " + strings.Join(items, ", ") + " }"
	}
	return "{" + strings.Join(items, ", ") + "}"
}

var jsxTextEscaper = strings.NewReplacer(`{`, `{'{'}`, `}`, `{'}'}`, `<`, `{'<'}`, `>`, `{'>'}`)

type jsxPrinter struct {
	indent   string
	tabWidth int
	width    int
	space    string
	b        strings.Builder
}

// printJSX prints the tree the way prettier lays out JSX. A tree that does
// not fit on one line after prefix columns is wrapped in parentheses.
func printJSX(tree *jsxNode, cfg *Config, prefix int) string {
	p := &jsxPrinter{
		indent:   cfg.indent(),
		tabWidth: cfg.Prettier.TabWidth,
		width:    cfg.Prettier.PrintWidth,
		space:    "{" + cfg.quote(" ") + "}",
	}
	p.element(tree, 0)
	out := strings.TrimSuffix(p.b.String(), "\n")
	if !strings.Contains(out, "\n") && prefix+len(out) <= p.width {
		return out
	}

	p.b.Reset()
	p.element(tree, 1)
	return "(\n" + p.b.String() + ")"
}

func (p *jsxPrinter) fits(depth int, s string) bool {
	return depth*p.tabWidth+len(s) <= p.width
}

func (p *jsxPrinter) line(depth int, s string) {
	p.b.WriteString(strings.Repeat(p.indent, depth))
	p.b.WriteString(s)
	p.b.WriteByte('\n')
}

func (n *jsxNode) openTag() string {
	open := "<" + n.tag
	for _, a := range n.attrs {
		open += " " + a.String()
	}
	return open
}

func (n *jsxNode) hasText() bool {
	for _, c := range n.children {
		if c.isText() {
			return true
		}
	}
	return false
}

// inline renders n on a single line. Spaces in text are kept, JSX only
// collapses whitespace that spans lines.
func (n *jsxNode) inline() string {
	if n.isText() {
		return jsxTextEscaper.Replace(n.text)
	}
	if len(n.children) == 0 {
		return n.openTag() + " />"
	}
	var b strings.Builder
	b.WriteString(n.openTag())
	b.WriteByte('>')
	for _, c := range n.children {
		b.WriteString(c.inline())
	}
	b.WriteString("</" + n.tag + ">")
	return b.String()
}

func (p *jsxPrinter) element(n *jsxNode, depth int) {
	if n.isText() {
		p.line(depth, jsxTextEscaper.Replace(strings.TrimSpace(n.text)))
		return
	}

	if n.hasText() {
		if s := n.inline(); p.fits(depth, s) {
			p.line(depth, s)
			return
		}
	}

	open := n.openTag()
	closing, single := ">", open+">"
	if len(n.children) == 0 {
		closing, single = "/>", open+" />"
	}
	if p.fits(depth, single) {
		p.line(depth, single)
	} else {
		p.line(depth, "<"+n.tag)
		for _, a := range n.attrs {
			p.line(depth+1, a.String())
		}
		p.line(depth, closing)
	}

	if len(n.children) == 0 {
		return
	}
	if n.hasText() {
		p.mixed(n.children, depth+1)
	} else {
		for _, c := range n.children {
			p.element(c, depth+1)
		}
	}
	p.line(depth, "</"+n.tag+">")
}

// mixed prints text and elements one per line. Whitespace between them
// would be lost at the line breaks, so it is kept as explicit {' '}
// separators at the end of the preceding line.
func (p *jsxPrinter) mixed(children []*jsxNode, depth int) {
	var lines []string
	space := func() {
		if len(lines) > 0 {
			lines[len(lines)-1] += p.space
		}
	}
	for i, c := range children {
		if !c.isText() {
			sub := &jsxPrinter{indent: p.indent, tabWidth: p.tabWidth, width: p.width, space: p.space}
			sub.element(c, depth)
			lines = append(lines, strings.Split(strings.TrimSuffix(sub.b.String(), "\n"), "\n")...)
			continue
		}

		text := strings.TrimSpace(c.text)
		if strings.HasPrefix(c.text, " ") {
			space()
		}
		if text == "" {
			continue
		}
		lines = append(lines, strings.Repeat(p.indent, depth)+jsxTextEscaper.Replace(text))
		if strings.HasSuffix(c.text, " ") && i < len(children)-1 {
			space()
		}
	}
	for _, l := range lines {
		p.b.WriteString(l)
		p.b.WriteByte('\n')
	}
}
