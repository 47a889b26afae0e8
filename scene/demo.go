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
	"fmt"
	"math"

	"seehuhn.de/go/pstools/bbox"
)

// Demo adds a demonstration scene to b, showing all kinds of drawing
// operations.  The scene fits onto a US Letter or A4 page.
func Demo(b *Builder) {
	page := bbox.FromCorners(36, 36, 576, 756)
	lower, upper := page.SplitHorizontal(0.6)
	left, right := lower.SplitVertical(0.5)

	b.AddNote("pstools demonstration scene")
	b.AddComment("page frame")
	b.SetColor(0, 0, 0, 1)
	b.AddBox(page.LLx, page.LLy, page.URx, page.URy)

	b.SetFont(18, "Helvetica-Bold")
	b.AddText(upper.LLx+18, upper.URy-30, "pstools demonstration")
	b.SetFont(11, "Times-Roman")
	b.SetTextCursor(upper.LLx+18, upper.URy-54)
	for _, line := range []string{
		"Boxes and circles are filled or outlined,",
		"depending on the current fill state.",
		"Lines and curves are always outlined.",
	} {
		b.AddTextLine(line)
	}

	b.AddComment("shapes")
	b.SetFill(true)
	for i := range 5 {
		g := float64(i) / 5
		b.SetColor(g, 0.3, 1-g, 1)
		x := left.LLx + 24 + float64(i)*40
		b.AddBox(x, left.LLy+24, x+30, left.LLy+54)
	}
	b.SetFill(false)
	b.SetColor(0.1, 0.5, 0.1, 1)
	c := left.Center()
	for r := 10.0; r <= 60; r += 10 {
		b.AddCircle(c.X, c.Y+40, r)
	}
	b.SetColor(0.6, 0.1, 0.1, 1)
	b.AddCurve(left.LLx+24, left.URy-24, left.LLx+120, left.URy-120, left.URx-24, left.URy-24)

	b.AddComment("chart")
	b.SetColor(0, 0, 0.6, 1)
	samples := make([]float64, 61)
	for i := range samples {
		samples[i] = math.Sin(float64(i) * math.Pi / 15)
	}
	b.Chart(samples, 0, 0, right.LLx+24, right.LLy+48, right.URx-24, right.URy-48)

	b.SetColor(0, 0, 0, 1)
	b.SetFont(DefaultFontSize, "Courier")
	for angle := 0.0; angle < 360; angle += 45 {
		b.AddTextRotated(upper.URx-120, upper.LLy+100, angle, fmt.Sprintf("  %g degrees", angle))
	}
}
