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

// Package command reads drawing commands from text files.
//
// Every line of the input describes one drawing operation, for example
//
//	box 10 10 100 50
//	color 1 0 0
//	text 10 60 Hello, World!
//
// Lines are matched against a fixed list of grammars, in the order given
// below.  The first matching grammar wins, and lines which match no grammar
// are skipped.  Empty lines and lines starting with "#" are ignored.
//
//	box x1 y1 x2 y2
//	line x1 y1 x2 y2
//	circle x y r
//	color r g b
//	fill n
//	curve x1 y1 x2 y2 x3 y3
//	font size name
//	text x y string
//	comment string
//	rtext x y angle string
//	raw string
//	note string
//	scale f
//	border f
//	bounds llx lly urx ury
//	cursor x y
//	textline string
//	chart min max llx lly urx ury v1 v2 ...
//
// Numeric arguments are decimal numbers.  A grammar matches only if the
// line has exactly the listed number of numeric fields.  A trailing string
// argument extends to the end of the line and may contain spaces.
package command

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/pstools"
	"seehuhn.de/go/pstools/scene"
)

// A grammar describes the shape of one kind of command line.
type grammar struct {
	keyword string

	// nums is the number of numeric arguments.  A negative value means
	// "at least -nums".
	nums int

	// text is true if the numeric arguments are followed by a string
	// which extends to the end of the line.
	text bool

	apply func(b *scene.Builder, x []float64, s string)
}

var grammars = []*grammar{
	{keyword: "box", nums: 4, apply: func(b *scene.Builder, x []float64, _ string) {
		b.AddBox(x[0], x[1], x[2], x[3])
	}},
	{keyword: "line", nums: 4, apply: func(b *scene.Builder, x []float64, _ string) {
		b.AddLine(x[0], x[1], x[2], x[3])
	}},
	{keyword: "circle", nums: 3, apply: func(b *scene.Builder, x []float64, _ string) {
		b.AddCircle(x[0], x[1], x[2])
	}},
	{keyword: "color", nums: 3, apply: func(b *scene.Builder, x []float64, _ string) {
		b.SetColor(x[0], x[1], x[2], 1)
	}},
	{keyword: "fill", nums: 1, apply: func(b *scene.Builder, x []float64, _ string) {
		b.SetFill(x[0] != 0)
	}},
	{keyword: "curve", nums: 6, apply: func(b *scene.Builder, x []float64, _ string) {
		b.AddCurve(x[0], x[1], x[2], x[3], x[4], x[5])
	}},
	{keyword: "font", nums: 1, text: true, apply: func(b *scene.Builder, x []float64, s string) {
		b.SetFont(x[0], s)
	}},
	{keyword: "text", nums: 2, text: true, apply: func(b *scene.Builder, x []float64, s string) {
		b.AddText(x[0], x[1], s)
	}},
	{keyword: "comment", text: true, apply: func(b *scene.Builder, _ []float64, s string) {
		b.AddComment(s)
	}},
	{keyword: "rtext", nums: 3, text: true, apply: func(b *scene.Builder, x []float64, s string) {
		b.AddTextRotated(x[0], x[1], x[2], s)
	}},
	{keyword: "raw", text: true, apply: func(b *scene.Builder, _ []float64, s string) {
		b.AddRawMarkup(s)
	}},
	{keyword: "note", text: true, apply: func(b *scene.Builder, _ []float64, s string) {
		b.AddNote(s)
	}},
	{keyword: "scale", nums: 1, apply: func(b *scene.Builder, x []float64, _ string) {
		b.SetScale(x[0])
	}},
	{keyword: "border", nums: 1, apply: func(b *scene.Builder, x []float64, _ string) {
		b.SetBorder(x[0])
	}},
	{keyword: "bounds", nums: 4, apply: func(b *scene.Builder, x []float64, _ string) {
		b.SetBounds(x[0], x[1], x[2], x[3])
	}},
	{keyword: "cursor", nums: 2, apply: func(b *scene.Builder, x []float64, _ string) {
		b.SetTextCursor(x[0], x[1])
	}},
	{keyword: "textline", text: true, apply: func(b *scene.Builder, _ []float64, s string) {
		b.AddTextLine(s)
	}},
	{keyword: "chart", nums: -7, apply: func(b *scene.Builder, x []float64, _ string) {
		b.Chart(x[6:], x[0], x[1], x[2], x[3], x[4], x[5])
	}},
}

// match checks whether line has the shape described by g.  If so, the
// numeric arguments and the trailing string are returned.
func (g *grammar) match(line string) ([]float64, string, bool) {
	rest, ok := cutKeyword(line, g.keyword)
	if !ok {
		return nil, "", false
	}

	var x []float64
	if g.nums >= 0 {
		x = make([]float64, 0, g.nums)
		for range g.nums {
			var field string
			field, rest = cutField(rest)
			v, err := parseNumber(field)
			if err != nil {
				return nil, "", false
			}
			x = append(x, v)
		}
	} else {
		for {
			var field string
			field, rest = cutField(rest)
			if field == "" {
				break
			}
			v, err := parseNumber(field)
			if err != nil {
				return nil, "", false
			}
			x = append(x, v)
		}
		if len(x) < -g.nums {
			return nil, "", false
		}
	}

	if !g.text {
		if strings.TrimSpace(rest) != "" {
			return nil, "", false
		}
		return x, "", true
	}

	s := strings.TrimSpace(rest)
	if s == "" {
		return nil, "", false
	}
	return x, norm.NFC.String(s), true
}

// cutKeyword checks whether line starts with the given keyword, followed by
// white space or the end of the line.
func cutKeyword(line, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(line, keyword)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}

// cutField returns the first white-space separated field of s, together
// with the remainder of s after the field.
func cutField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

// parseNumber parses a decimal number.  Infinities, NaN and hexadecimal
// notation are rejected.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E':
		default:
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseFloat(s, 64)
}

// maxLineLength is the longest input line accepted by [Parse].
const maxLineLength = math.MaxInt32

// Parse reads commands from r and applies them to b.
//
// Lines which do not match any command are skipped.  Only errors reading
// from r are returned; in this case the commands read before the error
// have been applied to b.
func Parse(r io.Reader, b *scene.Builder) error {
	log := pstools.Logger()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNo := 0
	applied := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}

		if !apply(b, trimmed) {
			log.Debug("skipping line", "line", lineNo, "text", trimmed)
			continue
		}
		applied++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", lineNo+1, err)
	}

	log.Debug("commands read",
		"lines", lineNo,
		"applied", applied,
		"scale", b.Scale())
	return nil
}

func apply(b *scene.Builder, line string) bool {
	for _, g := range grammars {
		x, s, ok := g.match(line)
		if ok {
			g.apply(b, x, s)
			return true
		}
	}
	return false
}

// ParseFile reads commands from the named file and applies them to b.
func ParseFile(name string, b *scene.Builder) error {
	fd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()

	err = Parse(fd, b)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
