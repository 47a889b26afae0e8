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

package ps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"

	"seehuhn.de/go/pstools"
	"seehuhn.de/go/pstools/event"
	"seehuhn.de/go/pstools/scene"
)

// ErrEmptyScene is returned by [Write] if the scene contains no events.
var ErrEmptyScene = errors.New("scene contains no events")

// Options can be used to control the document header.
// The zero value, and a nil pointer, select the defaults.
type Options struct {
	// Title is written to the %%Title header comment, if non-empty.
	Title string

	// Creator is written to the %%Creator header comment.
	// The default is "pstools".
	Creator string

	// DefaultFont is the font which is selected before the first event.
	// The default is "Courier".
	DefaultFont string

	// DefaultFontSize is the size of the default font.
	// The default is [scene.DefaultFontSize].
	DefaultFontSize float64
}

// Write writes the scene recorded by b as an Encapsulated PostScript
// document.
//
// The events are written in the order they were recorded.  Boxes and
// circles are filled if the most recent [event.Fill] event enabled filling,
// and outlined otherwise.  Write does not modify b.
//
// If b contains no events, ErrEmptyScene is returned and nothing is
// written.  If writing to out fails, the remaining events are skipped and
// the error is returned.
func Write(out io.Writer, b *scene.Builder, opt *Options) error {
	if b.EventCount() == 0 {
		return ErrEmptyScene
	}
	if opt == nil {
		opt = &Options{}
	}

	buf := bufio.NewWriter(out)
	w := NewWriter(buf)

	w.Err = writeHeader(buf, b, opt)
	states := replay(w, b.Log())
	w.emit("showpage")
	w.emit("%%EOF")
	if w.Err == nil {
		w.Err = buf.Flush()
	}
	if w.Err != nil {
		return w.Err
	}

	pstools.Logger().Debug("PostScript written",
		"events", b.EventCount(),
		"state", states,
		"strings", b.Log().Strings())
	return nil
}

// replay writes one group of PostScript operators for every event in the
// log.  The only state carried from one event to the next is the fill
// flag.  The return value is the number of state-changing events.
func replay(w *Writer, log *event.Log) int {
	fill := false
	paint := func() {
		if fill {
			w.Fill()
		} else {
			w.Stroke()
		}
	}

	states := 0
	for _, e := range log.All() {
		if w.Err != nil {
			break
		}
		if e.Kind().IsState() {
			states++
		}
		switch e := e.(type) {
		case event.Color:
			w.SetRGBColor(e.R, e.G, e.B)
		case event.Box:
			w.NewPath()
			w.MoveTo(e.LLx, e.LLy)
			w.LineTo(e.URx, e.LLy)
			w.LineTo(e.URx, e.URy)
			w.LineTo(e.LLx, e.URy)
			w.ClosePath()
			paint()
		case event.Line:
			w.NewPath()
			w.MoveTo(e.X1, e.Y1)
			w.LineTo(e.X2, e.Y2)
			w.Stroke()
		case event.Circle:
			w.NewPath()
			w.Arc(e.CX, e.CY, e.R, 0, 360)
			w.ClosePath()
			paint()
		case event.Curve:
			// The first control point is also used as the start point of
			// the curve.
			w.NewPath()
			w.MoveTo(e.X1, e.Y1)
			w.CurveTo(e.X1, e.Y1, e.X2, e.Y2, e.X3, e.Y3)
			w.Stroke()
		case event.Fill:
			fill = e.Enabled
		case event.Text:
			s := log.String(e.S)
			if e.Angle != 0 {
				w.GSave()
				w.Translate(e.X, e.Y)
				w.Rotate(e.Angle)
				w.MoveTo(0, 0)
				w.Show(s)
				w.GRestore()
			} else {
				w.MoveTo(e.X, e.Y)
				w.Show(s)
			}
		case event.Comment:
			w.Comment(log.String(e.S))
		case event.Font:
			w.SelectFont(log.String(e.Name), e.Size)
		case event.Raw:
			w.Raw(log.String(e.S))
		default:
			panic(fmt.Sprintf("unexpected event type %T", e))
		}
	}
	return states
}

type headerData struct {
	Creator  string
	Title    string
	BBox     [4]int
	HiRes    [4]string
	Notes    []string
	Font     string
	FontSize string
}

func writeHeader(out io.Writer, b *scene.Builder, opt *Options) error {
	bb := b.BoundingBox()
	data := &headerData{
		Creator: ifelse(opt.Creator != "", opt.Creator, "pstools"),
		Title:   opt.Title,
		BBox: [4]int{
			int(math.Floor(bb.LLx)), int(math.Floor(bb.LLy)),
			int(math.Ceil(bb.URx)), int(math.Ceil(bb.URy)),
		},
		HiRes:    [4]string{format(bb.LLx), format(bb.LLy), format(bb.URx), format(bb.URy)},
		Font:     ifelse(opt.DefaultFont != "", opt.DefaultFont, "Courier"),
		FontSize: format(ifelse(opt.DefaultFontSize > 0, opt.DefaultFontSize, scene.DefaultFontSize)),
	}
	for _, note := range b.Notes() {
		data.Notes = append(data.Notes, strings.Split(note, "\n")...)
	}
	return headerTmpl.Execute(out, data)
}

var headerTmpl = template.Must(template.New("header").Funcs(template.FuncMap{
	"fontName": fontName,
	"oneline": func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	},
}).Parse(`%!PS-Adobe-3.0 EPSF-3.0
%%Creator: {{oneline .Creator}}
{{with .Title -}}
%%Title: {{oneline .}}
{{end -}}
%%BoundingBox: {{index .BBox 0}} {{index .BBox 1}} {{index .BBox 2}} {{index .BBox 3}}
%%HiResBoundingBox: {{index .HiRes 0}} {{index .HiRes 1}} {{index .HiRes 2}} {{index .HiRes 3}}
%%LanguageLevel: 2
%%Pages: 1
%%EndComments
{{range .Notes -}}
% {{.}}
{{end -}}
{{fontName .Font}} findfont {{.FontSize}} scalefont setfont
`))

func ifelse[T any](c bool, a, b T) T {
	if c {
		return a
	}
	return b
}
