// seehuhn.de/go/pstools - a library for generating simple PostScript graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package svg writes scenes as SVG images.
//
// The output describes the same drawing as the PostScript output of package
// [seehuhn.de/go/pstools/ps].  SVG uses a y-axis which points downwards;
// all drawing is therefore placed inside a group which flips the y-axis, so
// that event coordinates can be used unchanged.
package svg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"seehuhn.de/go/pstools"
	"seehuhn.de/go/pstools/event"
	"seehuhn.de/go/pstools/internal/float"
	"seehuhn.de/go/pstools/scene"
)

// ErrEmptyScene is returned by [Write] if the scene contains no events.
var ErrEmptyScene = errors.New("scene contains no events")

// Options can be used to control the generated SVG.
// The zero value, and a nil pointer, select the defaults.
type Options struct {
	// Title is written to the <title> element, if non-empty.
	Title string

	// DefaultFont is the font family used before the first font event.
	// The default is "Courier".
	DefaultFont string

	// DefaultFontSize is the initial font size.
	// The default is [scene.DefaultFontSize].
	DefaultFontSize float64
}

// Write writes the scene recorded by b as an SVG image.
//
// The size of the image is the bounding box of the scene, rounded outwards
// to whole points.  Write does not modify b.  If b contains no events,
// ErrEmptyScene is returned and nothing is written.
func Write(out io.Writer, b *scene.Builder, opt *Options) error {
	if b.EventCount() == 0 {
		return ErrEmptyScene
	}
	if opt == nil {
		opt = &Options{}
	}

	buf := bufio.NewWriter(out)
	ew := &errWriter{w: buf}
	canvas := svgo.New(ew)

	bb := b.BoundingBox()
	llx := int(math.Floor(bb.LLx))
	lly := int(math.Floor(bb.LLy))
	urx := int(math.Ceil(bb.URx))
	ury := int(math.Ceil(bb.URy))
	canvas.Startview(urx-llx, ury-lly, llx, -ury, urx-llx, ury-lly)
	if opt.Title != "" {
		canvas.Title(opt.Title)
	}
	for _, note := range b.Notes() {
		comment(canvas, note)
	}

	st := &state{
		canvas:   canvas,
		log:      b.Log(),
		color:    "rgb(0,0,0)",
		opacity:  1,
		font:     opt.DefaultFont,
		fontSize: opt.DefaultFontSize,
	}
	if st.font == "" {
		st.font = "Courier"
	}
	if st.fontSize <= 0 {
		st.fontSize = scene.DefaultFontSize
	}

	canvas.Gtransform("scale(1,-1)")
	for _, e := range b.Log().All() {
		if ew.err != nil {
			break
		}
		st.draw(e)
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return ew.err
	}
	err := buf.Flush()
	if err != nil {
		return err
	}

	pstools.Logger().Debug("SVG written",
		"events", b.EventCount(),
		"width", urx-llx,
		"height", ury-lly)
	return nil
}

// state holds the drawing state carried from one event to the next.
type state struct {
	canvas *svgo.SVG
	log    *event.Log

	fill     bool
	color    string
	opacity  float64
	font     string
	fontSize float64
}

func (st *state) draw(e event.Event) {
	c := st.canvas
	switch e := e.(type) {
	case event.Color:
		st.color = fmt.Sprintf("rgb(%d,%d,%d)",
			component(e.R), component(e.G), component(e.B))
		st.opacity = e.Alpha
	case event.Fill:
		st.fill = e.Enabled
	case event.Font:
		st.font = st.log.String(e.Name)
		st.fontSize = e.Size
	case event.Box:
		d := "M" + coords(e.LLx, e.LLy) +
			"L" + coords(e.URx, e.LLy) +
			"L" + coords(e.URx, e.URy) +
			"L" + coords(e.LLx, e.URy) + "Z"
		c.Path(d, st.paintStyle(st.fill))
	case event.Line:
		d := "M" + coords(e.X1, e.Y1) + "L" + coords(e.X2, e.Y2)
		c.Path(d, st.paintStyle(false))
	case event.Circle:
		r := format(e.R)
		arc := "A" + r + " " + r + " 0 1 0 "
		d := "M" + coords(e.CX-e.R, e.CY) +
			arc + coords(e.CX+e.R, e.CY) +
			arc + coords(e.CX-e.R, e.CY) + "Z"
		c.Path(d, st.paintStyle(st.fill))
	case event.Curve:
		d := "M" + coords(e.X1, e.Y1) +
			"C" + coords(e.X1, e.Y1) + " " + coords(e.X2, e.Y2) + " " + coords(e.X3, e.Y3)
		c.Path(d, st.paintStyle(false))
	case event.Text:
		// undo the flip of the enclosing group, so that glyphs are upright
		tf := "translate(" + coords(e.X, e.Y) + ")"
		if e.Angle != 0 {
			tf += " rotate(" + format(e.Angle) + ")"
		}
		tf += " scale(1,-1)"
		c.Gtransform(tf)
		c.Text(0, 0, st.log.String(e.S), st.textStyle())
		c.Gend()
	case event.Comment:
		comment(c, st.log.String(e.S))
	case event.Raw:
		// raw markup is PostScript code, which has no meaning in SVG
		pstools.Logger().Debug("raw markup written as comment")
		comment(c, st.log.String(e.S))
	default:
		panic(fmt.Sprintf("unexpected event type %T", e))
	}
}

func (st *state) paintStyle(fill bool) string {
	var parts []string
	if fill {
		parts = append(parts, "fill:"+st.color, "stroke:none")
		if st.opacity < 1 {
			parts = append(parts, "fill-opacity:"+format(st.opacity))
		}
	} else {
		parts = append(parts, "fill:none", "stroke:"+st.color)
		if st.opacity < 1 {
			parts = append(parts, "stroke-opacity:"+format(st.opacity))
		}
	}
	return strings.Join(parts, ";")
}

func (st *state) textStyle() string {
	style := "font-family:" + fontFamily(st.font) +
		";font-size:" + format(st.fontSize) + "px" +
		";fill:" + st.color
	if st.opacity < 1 {
		style += ";fill-opacity:" + format(st.opacity)
	}
	return style
}

// fontFamily converts a PostScript font name into a CSS font-family value.
// Characters which could end the style attribute, or which svgo would take
// as an attribute assignment, are dropped.  Names containing spaces are
// quoted.
func fontFamily(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '=', ';', '<', '>', '&', '\\':
			return -1
		}
		if r < ' ' {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "Courier"
	}
	if strings.ContainsRune(name, ' ') {
		return "'" + name + "'"
	}
	return name
}

// comment writes s as an XML comment.  The sequence "--" is not allowed
// inside XML comments.
func comment(c *svgo.SVG, s string) {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	fmt.Fprintf(c.Writer, "<!-- %s -->\n", s)
}

func component(x float64) int {
	return int(math.Round(255 * math.Max(0, math.Min(1, x))))
}

func coords(x, y float64) string {
	return format(x) + " " + format(y)
}

func format(x float64) string {
	return float.Format(x, 3)
}

// errWriter keeps the first write error and discards all output after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return len(p), nil
	}
	_, w.err = w.w.Write(p)
	return len(p), nil
}
