// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"regexp"
	"strings"
)

// Formatter normalizes generated module sources to a prettier style. It only
// understands the shapes the templates produce: import/export statements,
// arrow function declarations and indented JSX.
type Formatter struct {
	cfg PrettierConfig
}

// NewFormatter returns a Formatter for the given style.
func NewFormatter(cfg PrettierConfig) *Formatter {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 2
	}
	if cfg.PrintWidth <= 0 {
		cfg.PrintWidth = 80
	}
	return &Formatter{cfg: cfg}
}

var (
	statementRe  = regexp.MustCompile(`^(import|export)\b`)
	bracesRe     = regexp.MustCompile(`\{([^{}]*)\}`)
	specifierRe  = regexp.MustCompile(`(\bfrom\s+|^import\s+)['"]([^'"]*)['"]`)
	declRe       = regexp.MustCompile(`^\s*(export\s+)?(const|let|var)\s`)
	parenParamRe = regexp.MustCompile(`\(\s*([A-Za-z_$][\w$]*)\s*\)\s*=>`)
	bareParamRe  = regexp.MustCompile(`=\s*([A-Za-z_$][\w$]*)\s*=>`)
)

// Format returns src with normalized indentation, statement spacing and
// quotes, at most one consecutive blank line and a single trailing newline.
func (f *Formatter) Format(src string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}

		line = f.reindent(line)
		switch {
		case declRe.MatchString(line):
			line = f.arrowParams(line)
		case statementRe.MatchString(line):
			line = f.statement(line)
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

func (f *Formatter) unit() string {
	if f.cfg.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", f.cfg.TabWidth)
}

func (f *Formatter) reindent(line string) string {
	i := len(line) - len(strings.TrimLeft(line, " \t"))
	if i == 0 {
		return line
	}
	cols := 0
	for _, ch := range line[:i] {
		if ch == '\t' {
			cols += f.cfg.TabWidth
		} else {
			cols++
		}
	}
	return strings.Repeat(f.unit(), cols/f.cfg.TabWidth) + strings.Repeat(" ", cols%f.cfg.TabWidth) + line[i:]
}

func (f *Formatter) quote(s string) string {
	if f.cfg.SingleQuote {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

func (f *Formatter) statement(line string) string {
	line = specifierRe.ReplaceAllStringFunc(line, func(m string) string {
		sub := specifierRe.FindStringSubmatch(m)
		return sub[1] + f.quote(sub[2])
	})

	loc := bracesRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	var items []string
	for _, it := range strings.Split(line[loc[2]:loc[3]], ",") {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	return f.wrapList(line[:loc[0]], items, line[loc[1]:])
}

// wrapList prints head{items}tail on one line when it fits the print width,
// otherwise one item per line.
func (f *Formatter) wrapList(head string, items []string, tail string) string {
	single := head + braces(items, f.cfg.BracketSpacing) + tail
	if len(single) <= f.cfg.PrintWidth || len(items) == 0 {
		return single
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString("{\n")
	for i, it := range items {
		b.WriteString(f.unit())
		b.WriteString(it)
		if i < len(items)-1 || f.cfg.TrailingComma != "none" {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	b.WriteString(tail)
	return b.String()
}

func (f *Formatter) arrowParams(line string) string {
	if f.cfg.ArrowParens == "avoid" {
		return parenParamRe.ReplaceAllString(line, "$1 =>")
	}
	return bareParamRe.ReplaceAllString(line, "= ($1) =>")
}
