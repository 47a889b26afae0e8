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

// Package ps writes scenes as Encapsulated PostScript.
//
// The main entry point is [Write], which replays the events of a
// [scene.Builder] onto a [Writer].  The Writer can also be used on its own,
// to emit PostScript operators one at a time.
package ps

import (
	"io"

	"seehuhn.de/go/pstools/internal/float"
)

// precision is the number of digits written after the decimal point.
const precision = 5

// Writer writes PostScript code.
//
// Each method emits one PostScript operator, together with its operands,
// on a line of its own.  If an error occurs while writing, the error is
// stored in Err and all subsequent method calls have no effect.
type Writer struct {
	Content io.Writer
	Err     error
}

// NewWriter allocates a new Writer which writes to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content: out,
	}
}

// emit writes the arguments, separated by spaces, followed by a newline.
func (w *Writer) emit(args ...string) {
	if w.Err != nil {
		return
	}
	for i, arg := range args {
		if i > 0 {
			_, w.Err = io.WriteString(w.Content, " ")
			if w.Err != nil {
				return
			}
		}
		_, w.Err = io.WriteString(w.Content, arg)
		if w.Err != nil {
			return
		}
	}
	_, w.Err = io.WriteString(w.Content, "\n")
}

func (w *Writer) coord(x float64) string {
	return format(x)
}

func format(x float64) string {
	return float.Format(x, precision)
}
