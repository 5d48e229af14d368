// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The IconVG encoding is a modification of
// https://github.com/golang/exp/blob/00229845015e38294862ecd9909318241789d41c/shiny/materialdesign/icons/gen.go
// It DOESN'T support all of SVG: only paths, circles, ellipses and
// rectangles without transforms are drawn.

package svg2rn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/image/math/f32"
)

// ErrUnsupported is returned for SVG features IconVG encoding cannot express.
var ErrUnsupported = errors.New("unsupported by IconVG encoding")

// outSize is the width and height (in ideal vector space) of the generated
// IconVG graphic, regardless of the size of the input SVG.
const outSize = 48

// IVG is an IconVG encoded graphic.
type IVG []byte

// skippedSubtrees hold shapes that are referenced, not drawn.
var skippedSubtrees = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"symbol":   true,
	"pattern":  true,
	"marker":   true,
}

// geometry maps SVG user space onto the IconVG view box.
type geometry struct {
	scale  float32
	offset f32.Vec2
}

func (g geometry) x(v float32) float32 { return (v-g.offset[0])*g.scale - outSize/2 }
func (g geometry) y(v float32) float32 { return (v-g.offset[1])*g.scale - outSize/2 }
func (g geometry) d(v float32) float32 { return v * g.scale }

// EncodeIVG creates the IconVG encoding of an SVG document tree.
func EncodeIVG(root *Node) (IVG, error) {
	var enc iconvg.Encoder

	enc.Reset(iconvg.Metadata{
		ViewBox: iconvg.Rectangle{
			Min: f32.Vec2{-outSize / 2, -outSize / 2},
			Max: f32.Vec2{+outSize / 2, +outSize / 2},
		},
		Palette: iconvg.DefaultPalette,
	})

	vb, err := viewBox(root)
	if err != nil {
		return nil, err
	}
	size := vb[2]
	if vb[3] > size {
		size = vb[3]
	}
	if size <= 0 {
		return nil, fmt.Errorf("empty view box %v", vb)
	}
	g := geometry{scale: outSize / size, offset: f32.Vec2{vb[0], vb[1]}}

	// adjs maps from opacity to a cReg adj value.
	adjs := map[float32]uint8{}
	if err := genShapes(&enc, root, adjs, g); err != nil {
		return nil, err
	}

	ivgData, err := enc.Bytes()
	if err != nil {
		return nil, err
	}
	return ivgData, nil
}

func viewBox(root *Node) ([4]float32, error) {
	var vb [4]float32
	if s, ok := root.Attr("viewBox"); ok {
		fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
		if len(fields) != 4 {
			return vb, fmt.Errorf("malformed viewBox %q", s)
		}
		for i, f := range fields {
			v, err := atof(f)
			if err != nil {
				return vb, err
			}
			vb[i] = v
		}
		return vb, nil
	}

	w, _ := root.Attr("width")
	h, _ := root.Attr("height")
	fw, err := atof(w)
	if err != nil {
		return vb, fmt.Errorf("no viewBox and no usable width: %w", err)
	}
	fh, err := atof(h)
	if err != nil {
		return vb, fmt.Errorf("no viewBox and no usable height: %w", err)
	}
	return [4]float32{0, 0, fw, fh}, nil
}

func genShapes(enc *iconvg.Encoder, n *Node, adjs map[float32]uint8, g geometry) error {
	if _, ok := n.Attr("transform"); ok {
		return fmt.Errorf("%w: transform on <%s>", ErrUnsupported, n.Name)
	}

	switch n.Name {
	case "path", "circle", "ellipse", "rect":
		return genShape(enc, n, adjs, g)
	}

	for _, c := range n.Children {
		if c.IsText() || skippedSubtrees[c.Name] {
			continue
		}
		if err := genShapes(enc, c, adjs, g); err != nil {
			return err
		}
	}
	return nil
}

func genShape(enc *iconvg.Encoder, n *Node, adjs map[float32]uint8, g geometry) error {
	// Unfilled shapes are outlines; IconVG only fills.
	if fill, _ := n.Attr("fill"); fill == "none" {
		return nil
	}

	adj := uint8(0)
	opacity := float32(1)
	if s, ok := n.Attr("opacity"); ok {
		opacity, _ = atof(s)
	} else if s, ok := n.Attr("fill-opacity"); ok {
		opacity, _ = atof(s)
	}
	if opacity != 1 {
		var ok bool
		if adj, ok = adjs[opacity]; !ok {
			adj = uint8(len(adjs) + 1)
			adjs[opacity] = adj
			// Set CREG[0-adj] to be a blend of transparent (0x7f) and the
			// first custom palette color (0x80).
			enc.SetCReg(adj, false, iconvg.BlendColor(uint8(opacity*0xff), 0x7f, 0x80))
		}
	}

	nums, err := attrNumbers(n)
	if err != nil {
		return err
	}

	switch n.Name {
	case "path":
		d, _ := n.Attr("d")
		return genPathData(enc, adj, d, g)
	case "circle":
		genEllipse(enc, adj, g, nums["cx"], nums["cy"], nums["r"], nums["r"])
	case "ellipse":
		genEllipse(enc, adj, g, nums["cx"], nums["cy"], nums["rx"], nums["ry"])
	case "rect":
		x, y := nums["x"], nums["y"]
		enc.StartPath(adj, g.x(x), g.y(y))
		enc.AbsHLineTo(g.x(x + nums["width"]))
		enc.AbsVLineTo(g.y(y + nums["height"]))
		enc.AbsHLineTo(g.x(x))
		enc.ClosePathEndPath()
	}
	return nil
}

func attrNumbers(n *Node) (map[string]float32, error) {
	nums := map[string]float32{}
	for _, k := range []string{"cx", "cy", "r", "rx", "ry", "x", "y", "width", "height"} {
		s, ok := n.Attr(k)
		if !ok {
			continue
		}
		v, err := atof(s)
		if err != nil {
			return nil, fmt.Errorf("<%s %s>: %w", n.Name, k, err)
		}
		nums[k] = v
	}
	return nums, nil
}

// genEllipse draws two relative arcTo ops, each of 180 degrees. We can't use
// one 360 degree arcTo as the start and end point would be coincident and
// the computation is degenerate.
func genEllipse(enc *iconvg.Encoder, adj uint8, g geometry, cx, cy, rx, ry float32) {
	enc.StartPath(adj, g.x(cx-rx), g.y(cy))
	enc.RelArcTo(g.d(rx), g.d(ry), 0, false, true, +2*g.d(rx), 0)
	enc.RelArcTo(g.d(rx), g.d(ry), 0, false, true, -2*g.d(rx), 0)
	enc.ClosePathEndPath()
}

func genPathData(enc *iconvg.Encoder, adj uint8, pathData string, g geometry) error {
	sc := &pathScanner{s: pathData}

	var args [7]float32
	op, started, closed := byte(0), false, false
	for !sc.done() {
		if b := sc.s[sc.i]; isCommand(b) {
			op = b
			sc.i++
		} else if op == 0 || op == 'Z' || op == 'z' {
			return fmt.Errorf("unexpected %q at offset %d in path data", b, sc.i)
		}

		if op == 'Z' || op == 'z' {
			closed = true
			continue
		}

		if err := sc.args(op, &args); err != nil {
			return err
		}

		switch op {
		case 'M', 'm':
			x, y := args[0], args[1]
			switch {
			case !started:
				// A leading relative moveto is relative to the origin.
				started = true
				enc.StartPath(adj, g.x(x), g.y(y))
			case op == 'M':
				enc.ClosePathAbsMoveTo(g.x(x), g.y(y))
			default:
				enc.ClosePathRelMoveTo(g.d(x), g.d(y))
			}
			closed = false
			// Subsequent coordinate pairs are implicit lineto commands.
			if op == 'M' {
				op = 'L'
			} else {
				op = 'l'
			}
			continue
		}

		if !started {
			return fmt.Errorf("path data must begin with a moveto, got %q", op)
		}
		if closed {
			enc.ClosePathRelMoveTo(0, 0)
			closed = false
		}

		switch op {
		case 'L':
			enc.AbsLineTo(g.x(args[0]), g.y(args[1]))
		case 'l':
			enc.RelLineTo(g.d(args[0]), g.d(args[1]))
		case 'T':
			enc.AbsSmoothQuadTo(g.x(args[0]), g.y(args[1]))
		case 't':
			enc.RelSmoothQuadTo(g.d(args[0]), g.d(args[1]))
		case 'Q':
			enc.AbsQuadTo(g.x(args[0]), g.y(args[1]), g.x(args[2]), g.y(args[3]))
		case 'q':
			enc.RelQuadTo(g.d(args[0]), g.d(args[1]), g.d(args[2]), g.d(args[3]))
		case 'S':
			enc.AbsSmoothCubeTo(g.x(args[0]), g.y(args[1]), g.x(args[2]), g.y(args[3]))
		case 's':
			enc.RelSmoothCubeTo(g.d(args[0]), g.d(args[1]), g.d(args[2]), g.d(args[3]))
		case 'C':
			enc.AbsCubeTo(g.x(args[0]), g.y(args[1]), g.x(args[2]), g.y(args[3]), g.x(args[4]), g.y(args[5]))
		case 'c':
			enc.RelCubeTo(g.d(args[0]), g.d(args[1]), g.d(args[2]), g.d(args[3]), g.d(args[4]), g.d(args[5]))
		case 'H':
			enc.AbsHLineTo(g.x(args[0]))
		case 'h':
			enc.RelHLineTo(g.d(args[0]))
		case 'V':
			enc.AbsVLineTo(g.y(args[0]))
		case 'v':
			enc.RelVLineTo(g.d(args[0]))
		case 'A':
			// IconVG measures the x-axis rotation in full turns.
			enc.AbsArcTo(g.d(args[0]), g.d(args[1]), args[2]/360, args[3] != 0, args[4] != 0, g.x(args[5]), g.y(args[6]))
		case 'a':
			enc.RelArcTo(g.d(args[0]), g.d(args[1]), args[2]/360, args[3] != 0, args[4] != 0, g.d(args[5]), g.d(args[6]))
		}
	}

	if started {
		enc.ClosePathEndPath()
	}
	return nil
}

func isCommand(b byte) bool {
	return strings.IndexByte("MmLlHhVvCcSsQqTtAaZz", b) >= 0
}

// pathScanner tokenizes SVG path data.
type pathScanner struct {
	s string
	i int
}

func (sc *pathScanner) skip() {
	for sc.i < len(sc.s) && strings.IndexByte(" ,\t\r\n", sc.s[sc.i]) >= 0 {
		sc.i++
	}
}

func (sc *pathScanner) done() bool {
	sc.skip()
	return sc.i >= len(sc.s)
}

// args reads the arguments of one op into args.
func (sc *pathScanner) args(op byte, args *[7]float32) error {
	n := 0
	switch op {
	case 'M', 'm', 'L', 'l', 'T', 't':
		n = 2
	case 'Q', 'q', 'S', 's':
		n = 4
	case 'C', 'c':
		n = 6
	case 'H', 'h', 'V', 'v':
		n = 1
	case 'A', 'a':
		n = 7
	default:
		return fmt.Errorf("unknown opcode %c", op)
	}

	for i := 0; i < n; i++ {
		var err error
		if (op == 'A' || op == 'a') && (i == 3 || i == 4) {
			args[i], err = sc.flag()
		} else {
			args[i], err = sc.number()
		}
		if err != nil {
			return fmt.Errorf("opcode %c argument %d: %w", op, i, err)
		}
	}
	return nil
}

func (sc *pathScanner) flag() (float32, error) {
	sc.skip()
	if sc.i >= len(sc.s) {
		return 0, errors.New("missing flag")
	}
	switch sc.s[sc.i] {
	case '0':
		sc.i++
		return 0, nil
	case '1':
		sc.i++
		return 1, nil
	}
	return 0, fmt.Errorf("bad flag %q", sc.s[sc.i])
}

func (sc *pathScanner) number() (float32, error) {
	sc.skip()
	start := sc.i
	if sc.i < len(sc.s) && (sc.s[sc.i] == '-' || sc.s[sc.i] == '+') {
		sc.i++
	}
	sc.digits()
	if sc.i < len(sc.s) && sc.s[sc.i] == '.' {
		sc.i++
		sc.digits()
	}
	if sc.i < len(sc.s) && (sc.s[sc.i] == 'e' || sc.s[sc.i] == 'E') {
		j := sc.i + 1
		if j < len(sc.s) && (sc.s[j] == '-' || sc.s[j] == '+') {
			j++
		}
		if j < len(sc.s) && isDigit(sc.s[j]) {
			sc.i = j
			sc.digits()
		}
	}
	return atof(sc.s[start:sc.i])
}

func (sc *pathScanner) digits() {
	for sc.i < len(sc.s) && isDigit(sc.s[sc.i]) {
		sc.i++
	}
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func atof(s string) (float32, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("could not parse %q as a float32: %v", s, err)
	}
	return float32(f), err
}
