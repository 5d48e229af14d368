// Copyright 2026 The svg2rn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg2rn converts a directory of SVG icons into React Native (or
// React web) components and an index module re-exporting all of them.
//
// Each SVG goes through a chain of plugins: an optimizer that strips what
// does not render, a JSX converter that renders the component template, and
// a formatter. The generated index lists the components written in the run:
//
//	report, err := svg2rn.Process(ctx, "assets/icons", "src/icons")
//	if err != nil {
//		return err
//	}
//	if err := report.Err(); err != nil {
//		// some icons failed, the rest were written
//	}
package svg2rn
