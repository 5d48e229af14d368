// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNoRoot is returned when a document has no <svg> root element.
var ErrNoRoot = errors.New("no <svg> root element")

// Attr is a single attribute, with its name kept exactly as written in the
// source (namespace prefix included, e.g. "xlink:href").
type Attr struct {
	Name  string
	Value string
}

// Node is an element or a text node of an SVG document. Text nodes have an
// empty Name.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// NewSVG reads the given reader as an SVG document tree.
//
// Comments, processing instructions and directives (XML declaration,
// DOCTYPE) are not kept. Whitespace runs in character data are collapsed
// to one space; whitespace-only character data is dropped except between
// the children of text elements.
func NewSVG(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)

	var root *Node
	var stack []*Node
	for {
		// RawToken keeps namespace prefixes instead of resolving them to URLs.
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: qualified(t.Name)}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: qualified(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("unexpected second root element <%s>", n.Name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			name := qualified(t.Name)
			if len(stack) == 0 || stack[len(stack)-1].Name != name {
				return nil, fmt.Errorf("unexpected closing tag </%s>", name)
			}
			trimText(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			if len(bytes.TrimSpace(t)) == 0 && (!textContent[parent.Name] || bytes.ContainsAny(t, "\r\n")) {
				// Indentation.
				continue
			}
			text := collapseSpace(string(t))
			if n := len(parent.Children); n > 0 && parent.Children[n-1].IsText() {
				parent.Children[n-1].Text = collapseSpace(parent.Children[n-1].Text + text)
				continue
			}
			parent.Children = append(parent.Children, &Node{Text: text})
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].Name)
	}
	if root == nil || root.Name != "svg" {
		return nil, ErrNoRoot
	}
	return root, nil
}

// NewSVGFile reads and parses the SVG file at path.
func NewSVGFile(path string) (*Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	root, err := NewSVG(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return root, nil
}

// textContent elements render their character data, so whitespace between
// their children is significant.
var textContent = map[string]bool{
	"text":     true,
	"tspan":    true,
	"textPath": true,
}

var spaceRe = regexp.MustCompile(`\s+`)

// collapseSpace folds whitespace runs into single spaces, the way SVG
// renders text by default.
func collapseSpace(s string) string {
	return spaceRe.ReplaceAllString(s, " ")
}

// trimText drops the whitespace at the edges of n's content. Inline text
// elements keep theirs, it separates them from their siblings.
func trimText(n *Node) {
	if n.Name == "tspan" || n.Name == "textPath" || len(n.Children) == 0 {
		return
	}
	if c := n.Children[0]; c.IsText() {
		c.Text = strings.TrimLeft(c.Text, " ")
	}
	if c := n.Children[len(n.Children)-1]; c.IsText() {
		c.Text = strings.TrimRight(c.Text, " ")
	}
	children := n.Children[:0]
	for _, c := range n.Children {
		if c.IsText() && c.Text == "" {
			continue
		}
		children = append(children, c)
	}
	n.Children = children
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// IsText reports whether n is a character data node.
func (n *Node) IsText() bool { return n.Name == "" }

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the named attribute, or appends it when missing.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr drops the named attribute and reports whether it was present.
func (n *Node) RemoveAttr(name string) bool {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Walk calls fn for n and every element below it, depth first. Text nodes
// are skipped.
func (n *Node) Walk(fn func(*Node)) {
	if n.IsText() {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

var (
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")
)

// Bytes serializes the tree back to compact SVG markup.
func (n *Node) Bytes() []byte {
	var b bytes.Buffer
	n.write(&b)
	return b.Bytes()
}

func (n *Node) write(b *bytes.Buffer) {
	if n.IsText() {
		textEscaper.WriteString(b, n.Text)
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		attrEscaper.WriteString(b, a.Value)
		b.WriteByte('"')
	}
	if len(n.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, c := range n.Children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}
