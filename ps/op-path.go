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

// This file implements the PostScript path construction and painting
// operators.

// NewPath clears the current path.
//
// This implements the PostScript operator "newpath".
func (w *Writer) NewPath() {
	w.emit("newpath")
}

// MoveTo starts a new subpath at (x, y).
//
// This implements the PostScript operator "moveto".
func (w *Writer) MoveTo(x, y float64) {
	w.emit(w.coord(x), w.coord(y), "moveto")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PostScript operator "lineto".
func (w *Writer) LineTo(x, y float64) {
	w.emit(w.coord(x), w.coord(y), "lineto")
}

// CurveTo appends a cubic Bezier curve to the current path.
// The curve starts at the current point, (x1, y1) and (x2, y2) are the
// inner control points and (x3, y3) is the end point.
//
// This implements the PostScript operator "curveto".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	w.emit(w.coord(x1), w.coord(y1), w.coord(x2), w.coord(y2), w.coord(x3), w.coord(y3), "curveto")
}

// Arc appends a counter-clockwise circular arc to the current path.
// The angles are given in degrees.
//
// This implements the PostScript operator "arc".
func (w *Writer) Arc(cx, cy, r, angle1, angle2 float64) {
	w.emit(w.coord(cx), w.coord(cy), w.coord(r), format(angle1), format(angle2), "arc")
}

// ClosePath closes the current subpath.
//
// This implements the PostScript operator "closepath".
func (w *Writer) ClosePath() {
	w.emit("closepath")
}

// Stroke draws the outline of the current path and clears the path.
//
// This implements the PostScript operator "stroke".
func (w *Writer) Stroke() {
	w.emit("stroke")
}

// Fill fills the current path, using the nonzero winding number rule, and
// clears the path.
//
// This implements the PostScript operator "fill".
func (w *Writer) Fill() {
	w.emit("fill")
}
