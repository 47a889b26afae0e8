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

package scene

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pstools/bbox"
	"seehuhn.de/go/pstools/event"
)

// BoundingBox returns the bounding box of the document.
//
// If bounds were set using [Builder.SetBounds], these are returned
// unchanged.  Otherwise the box is inferred from all boxes, lines and
// circles in the scene, and then padded by the border.  Curves, text and raw
// markup do not contribute.  If the scene contains none of the contributing
// events, the result is the zero rectangle padded by the border.
//
// Points with infinite or NaN coordinates are ignored, and so are
// non-finite explicit bounds and borders.  The result is always finite.
func (b *Builder) BoundingBox() bbox.BBox {
	if b.bounds != nil && isFinite(b.bounds.LLx, b.bounds.LLy, b.bounds.URx, b.bounds.URy) {
		return *b.bounds
	}

	res := bbox.New()
	add := func(x, y float64) {
		if isFinite(x, y) {
			res.AddVec(vec.Vec2{X: x, Y: y})
		}
	}
	for _, e := range b.log.All() {
		switch e := e.(type) {
		case event.Box:
			add(e.LLx, e.LLy)
			add(e.URx, e.URy)
		case event.Line:
			add(e.X1, e.Y1)
			add(e.X2, e.Y2)
		case event.Circle:
			add(e.CX-e.R, e.CY-e.R)
			add(e.CX+e.R, e.CY+e.R)
		}
	}
	if !res.Valid {
		res.AddPoint(0, 0)
	}
	if isFinite(b.border) {
		res.Pad(b.border)
	}
	return res
}

func isFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}
