// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg2rn

import (
	"errors"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

var (
	// ErrEmptyName is returned for files whose name yields no identifier.
	ErrEmptyName = errors.New("empty component name")
	// ErrInvalidName is returned for names that are not valid identifiers.
	ErrInvalidName = errors.New("invalid component name")
)

// ComponentName derives the PascalCase component identifier of a file base
// name. Only the part before the first dot is used, so "icon.outline"
// becomes "Icon".
func ComponentName(base string) string {
	name, _, _ := strings.Cut(base, ".")
	return strcase.ToCamel(name)
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func checkName(name string) error {
	switch {
	case name == "":
		return ErrEmptyName
	case !identRe.MatchString(name):
		return ErrInvalidName
	}
	return nil
}
