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

package ps_test

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pstools"
	"seehuhn.de/go/pstools/internal/ghostscript"
	"seehuhn.de/go/pstools/ps"
	"seehuhn.de/go/pstools/scene"
)

func generate(t *testing.T, b *scene.Builder, opt *ps.Options) string {
	t.Helper()
	buf := &bytes.Buffer{}
	err := ps.Write(buf, b, opt)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

// body returns the lines between the default font selection and the
// "showpage" operator.
func body(t *testing.T, out string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	start := -1
	end := -1
	for i, line := range lines {
		if start < 0 && strings.HasSuffix(line, "scalefont setfont") {
			start = i + 1
		}
		if line == "showpage" {
			end = i
		}
	}
	if start < 0 || end < start {
		t.Fatalf("malformed output:\n%s", out)
	}
	return lines[start:end]
}

func TestDocumentStructure(t *testing.T) {
	b := scene.NewBuilder()
	b.AddNote("first note")
	b.AddNote("second note")
	b.SetBorder(2)
	b.AddBox(0.5, 1, 10, 20.25)

	out := generate(t, b, &ps.Options{Title: "Structure Test"})
	want := `%!PS-Adobe-3.0 EPSF-3.0
%%Creator: pstools
%%Title: Structure Test
%%BoundingBox: -2 -1 12 23
%%HiResBoundingBox: -1.5 -1 12 22.25
%%LanguageLevel: 2
%%Pages: 1
%%EndComments
% first note
% second note
/Courier findfont 12 scalefont setfont
newpath
0.5 1 moveto
10 1 lineto
10 20.25 lineto
0.5 20.25 lineto
closepath
stroke
showpage
%%EOF
`
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestOptions(t *testing.T) {
	b := scene.NewBuilder()
	b.AddLine(0, 0, 1, 1)

	out := generate(t, b, &ps.Options{
		Creator:         "unit\ntest",
		DefaultFont:     "Helvetica",
		DefaultFontSize: 9,
	})
	if !strings.Contains(out, "%%Creator: unit test\n") {
		t.Errorf("creator not sanitized:\n%s", out)
	}
	if strings.Contains(out, "%%Title") {
		t.Errorf("unexpected title:\n%s", out)
	}
	if !strings.Contains(out, "/Helvetica findfont 9 scalefont setfont\n") {
		t.Errorf("default font not set:\n%s", out)
	}
}

func TestExplicitBounds(t *testing.T) {
	b := scene.NewBuilder()
	b.SetBorder(50)
	b.AddBox(0, 0, 10, 10)
	b.SetBounds(0, 0, 612, 792)

	out := generate(t, b, nil)
	if !strings.Contains(out, "%%BoundingBox: 0 0 612 792\n") {
		t.Errorf("explicit bounds not used:\n%s", out)
	}
}

func TestFillCarryOver(t *testing.T) {
	b := scene.NewBuilder()
	b.SetFill(true)
	b.AddBox(0, 0, 1, 1)
	b.AddCircle(5, 5, 1)
	b.AddLine(0, 0, 2, 2)
	b.SetFill(false)
	b.AddBox(0, 0, 1, 1)
	b.AddCircle(5, 5, 1)

	var paints []string
	for _, line := range body(t, generate(t, b, nil)) {
		if line == "fill" || line == "stroke" {
			paints = append(paints, line)
		}
	}
	want := []string{"fill", "fill", "stroke", "stroke", "stroke"}
	if d := cmp.Diff(want, paints); d != "" {
		t.Errorf("unexpected painting operators (-want +got):\n%s", d)
	}
}

func TestEventMapping(t *testing.T) {
	b := scene.NewBuilder()
	b.SetColor(1, 0, 0, 0.5)
	b.AddCircle(10, 20, 5)
	b.AddCurve(1, 2, 3, 4, 5, 6)
	b.SetFont(14, "Times-Bold")
	b.AddText(72, 700, "plain")
	b.AddTextRotated(100, 100, 30, "rotated")
	b.AddComment("in the stream")
	b.AddRawMarkup("2 setlinewidth")
	b.SetFill(true)

	want := []string{
		"1 0 0 setrgbcolor",

		"newpath",
		"10 20 5 0 360 arc",
		"closepath",
		"stroke",

		"newpath",
		"1 2 moveto",
		"1 2 3 4 5 6 curveto",
		"stroke",

		"/Times-Bold findfont 14 scalefont setfont",

		"72 700 moveto",
		"(plain) show",

		"gsave",
		"100 100 translate",
		"30 rotate",
		"0 0 moveto",
		"(rotated) show",
		"grestore",

		"% in the stream",
		"2 setlinewidth",
	}
	got := body(t, generate(t, b, nil))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestEmptyScene(t *testing.T) {
	b := scene.NewBuilder()
	b.AddNote("notes alone do not make a scene")
	buf := &bytes.Buffer{}
	err := ps.Write(buf, b, nil)
	if !errors.Is(err, ps.ErrEmptyScene) {
		t.Errorf("err = %v, want %v", err, ps.ErrEmptyScene)
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
	err := ps.Write(brokenWriter{}, b, nil)
	if !errors.Is(err, errBroken) {
		t.Errorf("err = %v, want %v", err, errBroken)
	}
}

func TestWriteDoesNotModify(t *testing.T) {
	b := scene.NewBuilder()
	scene.Demo(b)
	n := b.EventCount()
	first := generate(t, b, nil)
	second := generate(t, b, nil)
	if b.EventCount() != n {
		t.Error("Write changed the event count")
	}
	if first != second {
		t.Error("repeated Write calls gave different output")
	}
}

func TestRender(t *testing.T) {
	b := scene.NewBuilder()
	b.SetBounds(0, 0, 40, 40)
	b.SetColor(0, 0, 0, 1)
	b.SetFill(true)
	b.AddBox(0, 0, 20, 20)
	b.SetFill(false)
	b.AddBox(25, 25, 35, 35)

	img := ghostscript.Render(t, func(w io.Writer) error {
		return ps.Write(w, b, nil)
	})

	isDark := func(x, y int) bool {
		g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
		return g.Y < 128
	}

	// pixel rows count from the top of the bounding box
	if !isDark(10, 30) {
		t.Error("filled box is not filled")
	}
	if isDark(30, 10) {
		t.Error("outlined box is filled")
	}
	if isDark(10, 10) {
		t.Error("empty area is dark")
	}
}

func TestSpecialStrings(t *testing.T) {
	b := scene.NewBuilder()
	b.AddNote("%%EOF")
	b.SetFont(12, "Times Roman")
	b.AddText(0, 0, "(unbalanced")
	b.AddText(0, 10, "first\n%%EOF")
	b.AddComment("x\n%%EOF")
	b.AddBox(0, 0, 1, 1)

	out := generate(t, b, &ps.Options{DefaultFont: "Latin Modern"})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for i, line := range lines {
		if line == "%%EOF" && i != len(lines)-1 {
			t.Errorf("line %d ends the document early", i+1)
		}
	}
	for _, want := range []string{
		"(Latin Modern) cvn findfont 12 scalefont setfont",
		"(Times Roman) cvn findfont 12 scalefont setfont",
		`(\(unbalanced) show`,
		`(first\n%%EOF) show`,
		"% %%EOF",
	} {
		found := false
		for _, line := range lines {
			if line == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing line %q in output:\n%s", want, out)
		}
	}
}

func TestNonFiniteCoordinates(t *testing.T) {
	b := scene.NewBuilder()
	b.SetScale(math.Inf(1))
	b.AddBox(1, 1, 2, 2)
	b.SetScale(1)
	b.AddBox(0, 0, 10, 10)

	out := generate(t, b, nil)
	if !strings.Contains(out, "%%BoundingBox: 0 0 10 10\n") {
		t.Errorf("wrong bounding box:\n%s", out)
	}
}

func TestDebugLog(t *testing.T) {
	buf := &bytes.Buffer{}
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	pstools.SetLogger(slog.New(h))
	t.Cleanup(func() { pstools.SetLogger(nil) })

	b := scene.NewBuilder()
	b.SetColor(1, 0, 0, 1)
	b.SetFill(true)
	b.AddBox(0, 0, 1, 1)
	b.SetFont(10, "Courier")
	b.AddText(0, 0, "x")
	generate(t, b, nil)

	if !strings.Contains(buf.String(), "events=5 state=3 ") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}
