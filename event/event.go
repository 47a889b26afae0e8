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

// Package event defines the drawing events recorded by a scene.
//
// Events form a closed set: every event is one of [Box], [Line], [Circle],
// [Curve], [Text], [Raw], [Comment], [Color], [Fill] and [Font].  Events are
// small value types.  Variable-length text is not stored in the events
// themselves, but in the string table of the [Log] the event belongs to,
// and is referred to by a [StringRef].
package event

// Kind identifies the type of an event.
type Kind uint8

// These are the possible event kinds.
const (
	KindBox Kind = iota
	KindLine
	KindCircle
	KindCurve
	KindText
	KindRaw
	KindComment
	KindColor
	KindFill
	KindFont
)

var kindNames = [...]string{
	KindBox:     "Box",
	KindLine:    "Line",
	KindCircle:  "Circle",
	KindCurve:   "Curve",
	KindText:    "Text",
	KindRaw:     "Raw",
	KindComment: "Comment",
	KindColor:   "Color",
	KindFill:    "Fill",
	KindFont:    "Font",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsState reports whether events of this kind change the drawing state
// for all subsequent events, instead of drawing something.
func (k Kind) IsState() bool {
	return k == KindColor || k == KindFill || k == KindFont
}

// Event is implemented by all event types in this package.
// The interface cannot be implemented outside this package.
type Event interface {
	Kind() Kind
	isEvent()
}

// StringRef refers to an entry in the string table of a [Log].
type StringRef uint32

// Box is a rectangle with corners (LLx, LLy) and (URx, URy).
// The rectangle is filled or outlined, depending on the current fill state.
type Box struct {
	LLx, LLy, URx, URy float64
}

// Line is a straight line segment from (X1, Y1) to (X2, Y2).
// Lines are always outlined.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Circle is a full circle.
// The circle is filled or outlined, depending on the current fill state.
type Circle struct {
	CX, CY, R float64
}

// Curve is a cubic Bezier curve, given by three control points.
type Curve struct {
	X1, Y1, X2, Y2, X3, Y3 float64
}

// Text shows a string at (X, Y), rotated counter-clockwise by Angle degrees.
type Text struct {
	S     StringRef
	X, Y  float64
	Angle float64
}

// Raw is page description markup which is copied to the output verbatim.
type Raw struct {
	S StringRef
}

// Comment is an annotation which is kept in the output, but has no visual
// effect.
type Comment struct {
	S StringRef
}

// Color sets the current color.  All components are in the range [0, 1].
type Color struct {
	R, G, B, Alpha float64
}

// Fill switches between filled and outlined shapes.
type Fill struct {
	Enabled bool
}

// Font selects the font Name, scaled to the given size.
type Font struct {
	Size float64
	Name StringRef
}

// Kind implements the [Event] interface.
func (Box) Kind() Kind { return KindBox }

// Kind implements the [Event] interface.
func (Line) Kind() Kind { return KindLine }

// Kind implements the [Event] interface.
func (Circle) Kind() Kind { return KindCircle }

// Kind implements the [Event] interface.
func (Curve) Kind() Kind { return KindCurve }

// Kind implements the [Event] interface.
func (Text) Kind() Kind { return KindText }

// Kind implements the [Event] interface.
func (Raw) Kind() Kind { return KindRaw }

// Kind implements the [Event] interface.
func (Comment) Kind() Kind { return KindComment }

// Kind implements the [Event] interface.
func (Color) Kind() Kind { return KindColor }

// Kind implements the [Event] interface.
func (Fill) Kind() Kind { return KindFill }

// Kind implements the [Event] interface.
func (Font) Kind() Kind { return KindFont }

func (Box) isEvent()     {}
func (Line) isEvent()    {}
func (Circle) isEvent()  {}
func (Curve) isEvent()   {}
func (Text) isEvent()    {}
func (Raw) isEvent()     {}
func (Comment) isEvent() {}
func (Color) isEvent()   {}
func (Fill) isEvent()    {}
func (Font) isEvent()    {}
