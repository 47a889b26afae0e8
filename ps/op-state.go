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
	"strings"

	"seehuhn.de/go/postscript"
)

// SetRGBColor sets the current color.
// Each component must be in the range [0, 1].
//
// This implements the PostScript operator "setrgbcolor".
func (w *Writer) SetRGBColor(r, g, b float64) {
	w.emit(format(r), format(g), format(b), "setrgbcolor")
}

// GSave pushes a copy of the graphics state onto the graphics state stack.
//
// This implements the PostScript operator "gsave".
func (w *Writer) GSave() {
	w.emit("gsave")
}

// GRestore restores the graphics state saved by the matching [Writer.GSave].
//
// This implements the PostScript operator "grestore".
func (w *Writer) GRestore() {
	w.emit("grestore")
}

// Translate moves the origin of the user coordinate system to (x, y).
//
// This implements the PostScript operator "translate".
func (w *Writer) Translate(x, y float64) {
	w.emit(w.coord(x), w.coord(y), "translate")
}

// Rotate rotates the user coordinate system counter-clockwise by the given
// angle in degrees.
//
// This implements the PostScript operator "rotate".
func (w *Writer) Rotate(angle float64) {
	w.emit(format(angle), "rotate")
}

// SelectFont makes the named font, scaled to the given size, the current
// font.
//
// This emits the sequence "findfont scalefont setfont".
func (w *Writer) SelectFont(name string, size float64) {
	w.emit(fontName(name), "findfont", format(size), "scalefont", "setfont")
}

// fontName returns PostScript code which pushes the given name onto the
// operand stack.  Names which cannot be written as a literal are converted
// from a string using "cvn".
func fontName(name string) string {
	for i := 0; i < len(name); i++ {
		if !isRegular(name[i]) {
			return postscript.String(name).PS() + " cvn"
		}
	}
	return postscript.Name(name).PS()
}

// isRegular reports whether c can be part of a PostScript name literal.
func isRegular(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	}
	return true
}

// Show paints the string s using the current font, starting at the current
// point.
//
// Newlines in s are escaped, so that the operator stays on a single line.
//
// This implements the PostScript operator "show".
func (w *Writer) Show(s string) {
	lit := strings.ReplaceAll(postscript.String(s).PS(), "\n", `\n`)
	w.emit(lit, "show")
}

// Comment writes a PostScript comment.  If s spans several lines, every line
// is turned into a comment.
func (w *Writer) Comment(s string) {
	for _, line := range strings.Split(s, "\n") {
		w.emit("% " + strings.TrimSuffix(line, "\r"))
	}
}

// Raw copies s to the output without modification, followed by a newline.
func (w *Writer) Raw(s string) {
	w.emit(s)
}
