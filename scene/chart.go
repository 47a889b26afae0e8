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
	"golang.org/x/exp/slices"
)

// Chart draws a frame with corners (llx, lly) and (urx, ury) and plots the
// samples inside it as a polyline.  The samples are spread evenly over the
// width of the frame.
//
// If lo == hi, the vertical range is taken from the data.  Otherwise the
// range [lo, hi] is mapped to the height of the frame and samples outside
// this range are clamped to the frame.
//
// If there are no samples, or if the frame has zero width or height,
// nothing is drawn.  Otherwise the frame is drawn first, followed by
// len(samples)-1 lines.
func (b *Builder) Chart(samples []float64, lo, hi, llx, lly, urx, ury float64) {
	if len(samples) == 0 || llx == urx || lly == ury {
		return
	}

	clamp := true
	if lo == hi {
		lo = slices.Min(samples)
		hi = slices.Max(samples)
		clamp = false
	}

	b.AddBox(llx, lly, urx, ury)

	yMin, yMax := min(lly, ury), max(lly, ury)
	yPos := func(v float64) float64 {
		if lo == hi {
			// all samples are equal
			return (lly + ury) / 2
		}
		y := lly + (v-lo)/(hi-lo)*(ury-lly)
		if clamp {
			y = max(yMin, min(yMax, y))
		}
		return y
	}

	n := len(samples)
	dx := (urx - llx) / float64(max(n-1, 1))
	x0, y0 := llx, yPos(samples[0])
	for i := 1; i < n; i++ {
		x1, y1 := llx+float64(i)*dx, yPos(samples[i])
		b.AddLine(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}
