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

// Package pstools provides support for generating simple PostScript graphics.
//
// Drawing operations are recorded by a [scene.Builder] as an ordered list of
// events.  Once the scene is complete, the events are written out as an
// Encapsulated PostScript document, using [ps.Write].  The resulting file
// can be converted to PDF using a tool like Ghostscript.
//
//	b := scene.NewBuilder()
//	b.SetColor(0.8, 0.1, 0.1, 1)
//	b.SetFill(true)
//	b.AddBox(72, 72, 144, 144)
//	b.SetFill(false)
//	b.AddCircle(200, 108, 36)
//	b.AddText(72, 200, "Hello, world")
//
//	err := ps.Write(os.Stdout, b, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Scenes can also be described by a simple line-oriented text format, see
// package [command].  Each line holds one instruction:
//
//	# a red square and a label
//	color 0.8 0.1 0.1
//	fill 1
//	box 72 72 144 144
//	text 72 200 Hello, world
//
// The same scene can be written as SVG using [svg.Write].
//
// This package holds the parts shared by all sub-packages: the version
// string and the library logger.
//
// [scene.Builder]: https://pkg.go.dev/seehuhn.de/go/pstools/scene#Builder
// [ps.Write]: https://pkg.go.dev/seehuhn.de/go/pstools/ps#Write
// [svg.Write]: https://pkg.go.dev/seehuhn.de/go/pstools/svg#Write
// [command]: https://pkg.go.dev/seehuhn.de/go/pstools/command
package pstools
