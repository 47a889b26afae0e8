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

// Package scene implements the public drawing API.
//
// A [Builder] records drawing operations as events in an [event.Log].
// Coordinates are multiplied by the current scale factor at the time an
// event is recorded.  Changing the scale later does not affect events
// which are already recorded.
package scene

import (
	"seehuhn.de/go/pstools/bbox"
	"seehuhn.de/go/pstools/event"
)

// DefaultFontSize is the size of the font which is selected at the start of
// every document.
const DefaultFontSize = 12.0

// LineSpacingFactor gives the distance between lines of text placed by
// [Builder.AddTextLine], relative to the font size.
const LineSpacingFactor = 1.1

// Builder records drawing operations.
//
// The zero value is not usable; use [NewBuilder] to allocate a Builder.
// A Builder is not safe for concurrent use.
type Builder struct {
	log *event.Log

	scale  float64
	border float64
	bounds *bbox.BBox

	cursorX, cursorY float64
	lineSpacing      float64

	notes []string
}

// NewBuilder allocates a new Builder with an empty event log.
func NewBuilder() *Builder {
	return &Builder{
		log:         event.NewLog(),
		scale:       1,
		lineSpacing: DefaultFontSize * LineSpacingFactor,
	}
}

// Log returns the event log of the builder.
// The log must not be modified by the caller.
func (b *Builder) Log() *event.Log {
	return b.log
}

// EventCount returns the number of recorded events.
// A scene without events does not produce useful output.
func (b *Builder) EventCount() int {
	return b.log.Len()
}

// Notes returns the notes added using [Builder.AddNote], in order.
func (b *Builder) Notes() []string {
	return b.notes
}

// SetScale sets the factor by which coordinates of subsequently added
// events are multiplied.
func (b *Builder) SetScale(factor float64) {
	b.scale = factor
}

// Scale returns the current scale factor.
func (b *Builder) Scale() float64 {
	return b.scale
}

// SetBorder sets the padding which is added on all four sides of the
// inferred bounding box.  The border is not applied to bounds set using
// [Builder.SetBounds].
func (b *Builder) SetBorder(px float64) {
	b.border = px
}

// SetBounds fixes the bounding box of the document.  Once this has been
// called, the bounding box is no longer inferred from the recorded events.
func (b *Builder) SetBounds(llx, lly, urx, ury float64) {
	box := bbox.FromCorners(llx, lly, urx, ury)
	b.bounds = &box
}

// AddBox adds a rectangle with corners (llx, lly) and (urx, ury).
func (b *Builder) AddBox(llx, lly, urx, ury float64) event.Handle {
	s := b.scale
	return b.log.Push(event.Box{LLx: llx * s, LLy: lly * s, URx: urx * s, URy: ury * s})
}

// AddLine adds a straight line from (x1, y1) to (x2, y2).
func (b *Builder) AddLine(x1, y1, x2, y2 float64) event.Handle {
	s := b.scale
	return b.log.Push(event.Line{X1: x1 * s, Y1: y1 * s, X2: x2 * s, Y2: y2 * s})
}

// AddCircle adds a circle with center (cx, cy) and radius r.
func (b *Builder) AddCircle(cx, cy, r float64) event.Handle {
	s := b.scale
	return b.log.Push(event.Circle{CX: cx * s, CY: cy * s, R: r * s})
}

// AddCurve adds a cubic Bezier curve with the given control points.
func (b *Builder) AddCurve(x1, y1, x2, y2, x3, y3 float64) event.Handle {
	s := b.scale
	return b.log.Push(event.Curve{
		X1: x1 * s, Y1: y1 * s,
		X2: x2 * s, Y2: y2 * s,
		X3: x3 * s, Y3: y3 * s,
	})
}

// AddText shows text with the current font, starting at (x, y).
func (b *Builder) AddText(x, y float64, text string) event.Handle {
	return b.AddTextRotated(x, y, 0, text)
}

// AddTextRotated shows text starting at (x, y), rotated counter-clockwise
// by angle degrees around the starting point.
func (b *Builder) AddTextRotated(x, y, angle float64, text string) event.Handle {
	ref := b.log.PushString(text)
	s := b.scale
	return b.log.Push(event.Text{S: ref, X: x * s, Y: y * s, Angle: angle})
}

// SetTextCursor sets the position of the next line of text added with
// [Builder.AddTextLine].  The position is stored unscaled; the scale is
// applied when the text is added.
func (b *Builder) SetTextCursor(x, y float64) {
	b.cursorX, b.cursorY = x, y
}

// TextCursor returns the current text cursor position and line spacing.
func (b *Builder) TextCursor() (x, y, lineSpacing float64) {
	return b.cursorX, b.cursorY, b.lineSpacing
}

// AddTextLine shows text at the text cursor and then moves the cursor down
// by one line.
func (b *Builder) AddTextLine(text string) event.Handle {
	h := b.AddText(b.cursorX, b.cursorY, text)
	b.cursorY -= b.lineSpacing
	return h
}

// AddComment adds a comment at the current position in the event stream.
func (b *Builder) AddComment(text string) event.Handle {
	return b.log.Push(event.Comment{S: b.log.PushString(text)})
}

// AddNote adds a note to the document header.  Notes are not part of the
// event stream and are always written before all events.
func (b *Builder) AddNote(text string) {
	b.notes = append(b.notes, text)
}

// AddRawMarkup adds markup which is copied to the output without
// modification.
//
// Raw markup is ignored when the bounding box is inferred.  If the markup
// draws outside the area covered by the other events, use
// [Builder.SetBounds].
func (b *Builder) AddRawMarkup(text string) event.Handle {
	return b.log.Push(event.Raw{S: b.log.PushString(text)})
}

// SetColor sets the color for all following drawing operations.
func (b *Builder) SetColor(r, g, bl, alpha float64) event.Handle {
	return b.log.Push(event.Color{R: r, G: g, B: bl, Alpha: alpha})
}

// SetFill selects whether following boxes and circles are filled (true) or
// outlined (false).
func (b *Builder) SetFill(enabled bool) event.Handle {
	return b.log.Push(event.Fill{Enabled: enabled})
}

// SetFont selects the named font at the given size.  This also sets the
// line spacing used by [Builder.AddTextLine] to 1.1 times the font size.
func (b *Builder) SetFont(size float64, name string) event.Handle {
	b.lineSpacing = size * LineSpacingFactor
	return b.log.Push(event.Font{Size: size, Name: b.log.PushString(name)})
}
