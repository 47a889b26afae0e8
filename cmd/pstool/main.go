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

// Pstool converts drawing command files to PostScript or SVG.
//
// Usage:
//
//	pstool [-i commands.txt] [-d] [-o output.eps] [-format ps|svg]
//
// The input file contains one drawing command per line; run "pstool -I"
// for a description of the command format.  If no output file is given,
// the result is written to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/pstools"
	"seehuhn.de/go/pstools/command"
	"seehuhn.de/go/pstools/internal/profile"
	"seehuhn.de/go/pstools/ps"
	"seehuhn.de/go/pstools/scene"
	"seehuhn.de/go/pstools/svg"
)

func main() {
	input := flag.String("i", "", "read drawing commands from `file`")
	output := flag.String("o", "", "write output to `file` (default standard output)")
	demo := flag.Bool("d", false, "add the demonstration scene")
	info := flag.Bool("I", false, "show a description of the command format")
	version := flag.Bool("v", false, "show version information")
	format := flag.String("format", "ps", "output `format`, either \"ps\" or \"svg\"")
	title := flag.String("title", "", "document title")
	verbose := flag.Bool("verbose", false, "log diagnostic messages to standard error")
	cpuprofile := flag.String("cpuprofile", "", "write CPU profile to `file`")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintln(out, "Usage: pstool [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Convert drawing commands to PostScript or SVG.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("pstool: ")

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if term.IsTerminal(int(os.Stderr.Fd())) && !*version {
		fmt.Fprintln(os.Stderr, "pstools: simplified PostScript generation")
	}

	if *info {
		detailedHelp(os.Stdout)
		return
	}
	if *version {
		fmt.Println(pstools.Version())
		return
	}
	if *format != "ps" && *format != "svg" {
		log.Fatalf("unknown output format %q", *format)
	}

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		pstools.SetLogger(slog.New(h))
	}

	stop, err := profile.Start(*cpuprofile)
	if err != nil {
		log.Fatal(err)
	}

	err = run(*input, *output, *format, *title, *demo)
	stop()
	if errors.Is(err, ps.ErrEmptyScene) || errors.Is(err, svg.ErrEmptyScene) {
		fmt.Println("Use -h for information.")
		os.Exit(1)
	} else if err != nil {
		log.Fatal(err)
	}
}

func run(input, output, format, title string, demo bool) error {
	b := scene.NewBuilder()
	if input != "" {
		err := command.ParseFile(input, b)
		if err != nil {
			return err
		}
	}
	if demo {
		scene.Demo(b)
	}
	if b.EventCount() == 0 {
		return ps.ErrEmptyScene
	}

	write := func(w io.Writer) error {
		if format == "svg" {
			return svg.Write(w, b, &svg.Options{Title: title})
		}
		return ps.Write(w, b, &ps.Options{Title: title, Creator: "pstool"})
	}

	if output == "" {
		return write(os.Stdout)
	}
	fd, err := os.Create(output)
	if err != nil {
		return err
	}
	err = write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func detailedHelp(w io.Writer) {
	fmt.Fprint(w, `Pstool reads drawing commands, one per line, and writes the resulting
picture as Encapsulated PostScript (or SVG, with -format svg).

Commands:
  box x1 y1 x2 y2          rectangle with corners (x1, y1) and (x2, y2)
  line x1 y1 x2 y2         straight line
  circle x y r             circle with center (x, y) and radius r
  curve x1 y1 x2 y2 x3 y3  Bezier curve, starting at (x1, y1)
  color r g b              set the color, components between 0 and 1
  fill n                   fill boxes and circles if n is non-zero
  font size name           select a font, e.g. "font 12 Times-Roman"
  text x y string          show a string starting at (x, y)
  rtext x y angle string   show a rotated string
  cursor x y               set the start of the next text line
  textline string          show a string at the cursor, then move down
  comment string           add a comment to the output
  note string              add a comment to the document header
  raw string               copy a string to the output unchanged
  scale f                  multiply the coordinates of later commands by f
  border f                 add a margin of f around the picture
  bounds x1 y1 x2 y2       set the picture bounds explicitly
  chart min max x1 y1 x2 y2 v1 v2 ...
                           plot the values v1, v2, ... as a line chart;
                           if min equals max, the data range is used

Lines starting with "#" are ignored, and so are lines which cannot be
parsed.  Coordinates are in PostScript points (1/72 inch), with the
origin in the lower left corner.
`)
}
