// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"bytes"
	"regexp"
	"strings"
)

// maxPasses bounds multipass optimization.
const maxPasses = 10

// editorNS are namespace prefixes written by drawing tools.
var editorNS = map[string]bool{
	"inkscape": true,
	"sodipodi": true,
	"sketch":   true,
	"serif":    true,
	"figma":    true,
}

// droppedElements never render.
var droppedElements = map[string]bool{
	"metadata": true,
	"title":    true,
	"desc":     true,
}

// presentationAttrs may be moved out of a style attribute.
var presentationAttrs = map[string]bool{
	"clip-path":         true,
	"clip-rule":         true,
	"color":             true,
	"display":           true,
	"fill":              true,
	"fill-opacity":      true,
	"fill-rule":         true,
	"mask":              true,
	"opacity":           true,
	"stop-color":        true,
	"stop-opacity":      true,
	"stroke":            true,
	"stroke-dasharray":  true,
	"stroke-dashoffset": true,
	"stroke-linecap":    true,
	"stroke-linejoin":   true,
	"stroke-miterlimit": true,
	"stroke-opacity":    true,
	"stroke-width":      true,
	"visibility":        true,
}

// containers are removed when they end up without children.
var containers = map[string]bool{
	"g":    true,
	"defs": true,
}

// Optimize rewrites an SVG document into a smaller equivalent one. Colors
// are never rewritten and the viewBox is kept unless cfg.RemoveViewBox.
func Optimize(svg []byte, cfg SVGOConfig) ([]byte, error) {
	out := svg
	passes := 1
	if cfg.Multipass {
		passes = maxPasses
	}
	for i := 0; i < passes; i++ {
		root, err := NewSVG(bytes.NewReader(out))
		if err != nil {
			return nil, err
		}
		optimizeTree(root, cfg)
		next := root.Bytes()
		if bytes.Equal(next, out) {
			break
		}
		out = next
	}
	return out, nil
}

func optimizeTree(root *Node, cfg SVGOConfig) {
	root.Walk(func(n *Node) {
		removeEditorData(n)
		cleanupAttrs(n)
		convertStyleToAttrs(n)
	})
	removeElements(root)
	collapseGroups(root)
	removeEmptyContainers(root)
	cleanupIDs(root)
	cleanupRoot(root, cfg)
}

func prefix(name string) string {
	p, _, ok := strings.Cut(name, ":")
	if !ok {
		return ""
	}
	return p
}

func removeEditorData(n *Node) {
	attrs := n.Attrs[:0]
	for _, a := range n.Attrs {
		p := prefix(a.Name)
		if editorNS[p] {
			continue
		}
		if p == "xmlns" && editorNS[strings.TrimPrefix(a.Name, "xmlns:")] {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attrs = attrs
}

// cleanupAttrs collapses whitespace in attribute values and drops empty
// ones. The viewBox is kept verbatim.
func cleanupAttrs(n *Node) {
	attrs := n.Attrs[:0]
	for _, a := range n.Attrs {
		if strings.TrimSpace(a.Value) == "" {
			continue
		}
		if a.Name != "viewBox" {
			a.Value = strings.Join(strings.Fields(a.Value), " ")
		}
		attrs = append(attrs, a)
	}
	n.Attrs = attrs
}

func convertStyleToAttrs(n *Node) {
	style, ok := n.Attr("style")
	if !ok {
		return
	}
	var rest []string
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			continue
		}
		if presentationAttrs[k] && !strings.Contains(v, "!important") {
			n.SetAttr(k, v)
			continue
		}
		rest = append(rest, k+":"+v)
	}
	if len(rest) == 0 {
		n.RemoveAttr("style")
		return
	}
	n.SetAttr("style", strings.Join(rest, ";"))
}

func removeElements(n *Node) {
	children := n.Children[:0]
	for _, c := range n.Children {
		if !c.IsText() && (droppedElements[c.Name] || editorNS[prefix(c.Name)]) {
			continue
		}
		removeElements(c)
		children = append(children, c)
	}
	n.Children = children
}

// collapseGroups replaces attribute-less <g> wrappers with their children.
func collapseGroups(n *Node) {
	var children []*Node
	for _, c := range n.Children {
		collapseGroups(c)
		if c.Name == "g" && len(c.Attrs) == 0 {
			children = append(children, c.Children...)
			continue
		}
		children = append(children, c)
	}
	n.Children = children
}

func removeEmptyContainers(n *Node) {
	children := n.Children[:0]
	for _, c := range n.Children {
		removeEmptyContainers(c)
		if containers[c.Name] && len(c.Children) == 0 {
			continue
		}
		children = append(children, c)
	}
	n.Children = children
}

var urlRefRe = regexp.MustCompile(`url\(\s*["']?#([^)"'\s]+)["']?\s*\)`)

// cleanupIDs drops ids that nothing references.
func cleanupIDs(root *Node) {
	styled := false
	root.Walk(func(n *Node) {
		if n.Name == "style" {
			styled = true
		}
	})
	if styled {
		// Selectors may target ids.
		return
	}

	used := map[string]bool{}
	root.Walk(func(n *Node) {
		for _, a := range n.Attrs {
			if (a.Name == "href" || a.Name == "xlink:href") && strings.HasPrefix(a.Value, "#") {
				used[a.Value[1:]] = true
			}
			for _, m := range urlRefRe.FindAllStringSubmatch(a.Value, -1) {
				used[m[1]] = true
			}
		}
	})
	root.Walk(func(n *Node) {
		if id, ok := n.Attr("id"); ok && !used[id] {
			n.RemoveAttr("id")
		}
	})
}

func cleanupRoot(root *Node, cfg SVGOConfig) {
	root.RemoveAttr("version")
	root.RemoveAttr("baseProfile")
	root.RemoveAttr("xml:space")
	for _, a := range []string{"x", "y"} {
		if v, ok := root.Attr(a); ok && (v == "0" || v == "0px") {
			root.RemoveAttr(a)
		}
	}

	if cfg.RemoveXMLNS {
		root.RemoveAttr("xmlns")
	}
	usedNS := map[string]bool{}
	root.Walk(func(n *Node) {
		if p := prefix(n.Name); p != "" {
			usedNS[p] = true
		}
		for _, a := range n.Attrs {
			if p := prefix(a.Name); p != "" && p != "xmlns" {
				usedNS[p] = true
			}
		}
	})
	for _, a := range append([]Attr(nil), root.Attrs...) {
		if p := prefix(a.Name); p == "xmlns" && !usedNS[strings.TrimPrefix(a.Name, "xmlns:")] {
			root.RemoveAttr(a.Name)
		}
	}

	if cfg.RemoveViewBox {
		vb, ok := root.Attr("viewBox")
		w, wok := root.Attr("width")
		h, hok := root.Attr("height")
		if ok && wok && hok {
			f := strings.Fields(strings.ReplaceAll(vb, ",", " "))
			if len(f) == 4 && f[0] == "0" && f[1] == "0" &&
				f[2] == strings.TrimSuffix(w, "px") && f[3] == strings.TrimSuffix(h, "px") {
				root.RemoveAttr("viewBox")
			}
		}
	}
}
