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

// Package bbox implements axis-aligned bounding boxes.
//
// A [BBox] starts out empty.  Points are added one at a time and the box
// grows to include all of them.  Boxes can be merged, padded and split into
// two parts for simple layout tasks.
package bbox

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BBox is an axis-aligned rectangle which may be empty.
//
// If Valid is false, the box is empty and the corner coordinates have no
// meaning.  If Valid is true, LLx <= URx and LLy <= URy.
type BBox struct {
	Valid bool
	rect.Rect
}

// New returns an empty bounding box.
func New() BBox {
	return BBox{}
}

// FromCorners returns the bounding box spanned by two opposite corners.
// The corners can be given in any order.
func FromCorners(x1, y1, x2, y2 float64) BBox {
	return BBox{
		Valid: true,
		Rect: rect.Rect{
			LLx: math.Min(x1, x2),
			LLy: math.Min(y1, y2),
			URx: math.Max(x1, x2),
			URy: math.Max(y1, y2),
		},
	}
}

// AddPoint enlarges the box to include the point (x, y).
// If the box is empty, it becomes the degenerate box containing only this
// point.
func (b *BBox) AddPoint(x, y float64) {
	if !b.Valid {
		b.Rect = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
		b.Valid = true
		return
	}
	b.LLx = math.Min(b.LLx, x)
	b.LLy = math.Min(b.LLy, y)
	b.URx = math.Max(b.URx, x)
	b.URy = math.Max(b.URy, y)
}

// AddVec enlarges the box to include the point p.
func (b *BBox) AddVec(p vec.Vec2) {
	b.AddPoint(p.X, p.Y)
}

// Expand enlarges the box to also cover other.
//
// Both boxes must be valid.  This is not checked, the caller must test
// Valid before calling Expand.
func (b *BBox) Expand(other BBox) {
	b.LLx = math.Min(b.LLx, other.LLx)
	b.LLy = math.Min(b.LLy, other.LLy)
	b.URx = math.Max(b.URx, other.URx)
	b.URy = math.Max(b.URy, other.URy)
}

// Pad grows the box by d on all four sides.
func (b *BBox) Pad(d float64) {
	b.LLx -= d
	b.LLy -= d
	b.URx += d
	b.URy += d
}

// Area returns the area of the box.
func (b BBox) Area() float64 {
	return b.Dx() * b.Dy()
}

// Center returns the midpoint of the box.
func (b BBox) Center() vec.Vec2 {
	return vec.Vec2{
		X: (b.LLx + b.URx) / 2,
		Y: (b.LLy + b.URy) / 2,
	}
}

// Contains reports whether p lies inside the box or on its boundary.
// An empty box contains no points.
func (b BBox) Contains(p vec.Vec2) bool {
	if !b.Valid {
		return false
	}
	return p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy
}

// SplitHorizontal cuts the box along a horizontal line.  The line is placed
// at the fraction bias of the height, measured from the bottom edge.
// Both halves share the cut line, i.e. bottom.URy == top.LLy.
func (b BBox) SplitHorizontal(bias float64) (bottom, top BBox) {
	bottom, top = b, b
	bottom.URy = b.LLy + bias*b.Dy()
	top.LLy = bottom.URy
	return bottom, top
}

// SplitVertical cuts the box along a vertical line.  The line is placed at
// the fraction bias of the width, measured from the left edge.
// Both halves share the cut line, i.e. left.URx == right.LLx.
func (b BBox) SplitVertical(bias float64) (left, right BBox) {
	left, right = b, b
	left.URx = b.LLx + bias*b.Dx()
	right.LLx = left.URx
	return left, right
}

func (b BBox) String() string {
	if !b.Valid {
		return "[empty]"
	}
	return fmt.Sprintf("[(%g, %g) - (%g, %g)]:%g", b.LLx, b.LLy, b.URx, b.URy, b.Area())
}
