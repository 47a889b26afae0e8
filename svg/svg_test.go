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

package svg

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/pstools/event"
	"seehuhn.de/go/pstools/scene"
)

func generate(t *testing.T, b *scene.Builder, opt *Options) string {
	t.Helper()
	buf := &bytes.Buffer{}
	err := Write(buf, b, opt)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestViewBox(t *testing.T) {
	b := scene.NewBuilder()
	b.AddBox(10, 20, 110.5, 70)

	out := generate(t, b, nil)
	// x from 10 to 111, y from 20 to 70, with the y-axis flipped
	if !strings.Contains(out, `viewBox="10 -70 101 50"`) {
		t.Errorf("wrong view box:\n%s", out)
	}
	if !strings.Contains(out, `transform="scale(1,-1)"`) {
		t.Errorf("missing y-flip:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("document not closed:\n%s", out)
	}
}

func TestOneElementPerDrawingEvent(t *testing.T) {
	b := scene.NewBuilder()
	scene.Demo(b)

	drawing := 0
	texts := 0
	for _, e := range b.Log().All() {
		switch e.Kind() {
		case event.KindBox, event.KindLine, event.KindCircle, event.KindCurve:
			drawing++
		case event.KindText:
			texts++
		}
	}

	out := generate(t, b, nil)
	if got := strings.Count(out, "<path "); got != drawing {
		t.Errorf("%d path elements, want %d", got, drawing)
	}
	if got := strings.Count(out, "<text "); got != texts {
		t.Errorf("%d text elements, want %d", got, texts)
	}
}

func TestFillCarryOver(t *testing.T) {
	b := scene.NewBuilder()
	b.SetColor(1, 0, 0, 1)
	b.SetFill(true)
	b.AddBox(0, 0, 1, 1)
	b.AddLine(0, 0, 1, 1)
	b.SetFill(false)
	b.AddCircle(0, 0, 1)

	out := generate(t, b, nil)
	var styles []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "<path ") {
			continue
		}
		i := strings.Index(line, `style="`)
		if i < 0 {
			t.Fatalf("path without style: %s", line)
		}
		rest := line[i+len(`style="`):]
		styles = append(styles, rest[:strings.Index(rest, `"`)])
	}

	want := []string{
		"fill:rgb(255,0,0);stroke:none",
		"fill:none;stroke:rgb(255,0,0)",
		"fill:none;stroke:rgb(255,0,0)",
	}
	if len(styles) != len(want) {
		t.Fatalf("got styles %q, want %q", styles, want)
	}
	for i := range want {
		if styles[i] != want[i] {
			t.Errorf("path %d: style %q, want %q", i, styles[i], want[i])
		}
	}
}

func TestOpacity(t *testing.T) {
	b := scene.NewBuilder()
	b.SetColor(0, 0, 1, 0.25)
	b.SetFill(true)
	b.AddBox(0, 0, 1, 1)

	out := generate(t, b, nil)
	if !strings.Contains(out, "fill:rgb(0,0,255);stroke:none;fill-opacity:0.25") {
		t.Errorf("opacity not applied:\n%s", out)
	}
}

func TestText(t *testing.T) {
	b := scene.NewBuilder()
	b.SetFont(10, "Helvetica")
	b.AddTextRotated(5, 6, 45, "a < b")

	out := generate(t, b, nil)
	if !strings.Contains(out, `transform="translate(5 6) rotate(45) scale(1,-1)"`) {
		t.Errorf("wrong text transform:\n%s", out)
	}
	if !strings.Contains(out, "font-family:Helvetica;font-size:10px") {
		t.Errorf("font not applied:\n%s", out)
	}
	if !strings.Contains(out, "a &lt; b") {
		t.Errorf("text not escaped:\n%s", out)
	}
}

func TestComments(t *testing.T) {
	b := scene.NewBuilder()
	b.AddNote("a note")
	b.AddComment("x--y")
	b.AddRawMarkup("2 setlinewidth")
	b.AddRawMarkup(`<rect x="0"/>`)

	out := generate(t, b, &Options{Title: "Comment Test"})
	for _, want := range []string{
		"<title>Comment Test</title>",
		"<!-- a note -->",
		"<!-- x- -y -->",
		"<!-- 2 setlinewidth -->",
		`<!-- <rect x="0"/> -->`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\n<rect ") || strings.Contains(out, "\n2 setlinewidth") {
		t.Errorf("raw markup copied into the SVG:\n%s", out)
	}
	if strings.Index(out, "a note") > strings.Index(out, "scale(1,-1)") {
		t.Error("note written after the drawing started")
	}
}

func TestEmptyScene(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Write(buf, scene.NewBuilder(), nil)
	if !errors.Is(err, ErrEmptyScene) {
		t.Errorf("err = %v, want %v", err, ErrEmptyScene)
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes written for an empty scene", buf.Len())
	}
}

type brokenWriter struct{}

var errBroken = errors.New("broken pipe")

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errBroken
}

func TestWriteError(t *testing.T) {
	b := scene.NewBuilder()
	scene.Demo(b)
	err := Write(brokenWriter{}, b, nil)
	if !errors.Is(err, errBroken) {
		t.Errorf("err = %v, want %v", err, errBroken)
	}
}

func TestFontFamily(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Helvetica", "Helvetica"},
		{"Times Roman", "'Times Roman'"},
		{`a"b`, "ab"},
		{"x=y", "xy"},
		{"a;b:c", "ab:c"},
		{"  ", "Courier"},
		{"<&>", "Courier"},
	}
	for _, c := range cases {
		if got := fontFamily(c.in); got != c.want {
			t.Errorf("fontFamily(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFontNameInStyle(t *testing.T) {
	b := scene.NewBuilder()
	b.SetFont(10, `Evil" onload="x=1`)
	b.AddText(0, 0, "hello")

	out := generate(t, b, nil)
	if strings.Contains(out, "onload=") {
		t.Errorf("font name escaped from the style attribute:\n%s", out)
	}
	if !strings.Contains(out, `style="font-family:'Evil onloadx1';font-size:10px;`) {
		t.Errorf("unexpected text style:\n%s", out)
	}
}

func TestNonFiniteCoordinates(t *testing.T) {
	b := scene.NewBuilder()
	b.SetScale(math.Inf(-1))
	b.AddLine(1, 1, 2, 2)
	b.SetScale(1)
	b.AddBox(0, 0, 10, 10)

	out := generate(t, b, nil)
	if !strings.Contains(out, `viewBox="0 -10 10 10"`) {
		t.Errorf("wrong view box:\n%s", out)
	}
}
