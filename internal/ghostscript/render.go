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

// Package ghostscript renders PostScript output in unit tests.
package ghostscript

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
)

var keepTempFiles = false

// Resolution is the resolution of rendered images, in pixels per inch.
// At this resolution, one pixel corresponds to one PostScript point.
const Resolution = 72

// Render can be used in unit tests to render an EPS file to an image.
//
// The function write is called to produce the EPS file.  The file is then
// rendered with the ghostscript command-line tool, cropped to the
// %%BoundingBox of the file.  Pixel (0, 0) of the result corresponds to the
// upper left corner of the bounding box.  If ghostscript is not installed,
// the test is skipped.
func Render(t *testing.T, write func(w io.Writer) error) image.Image {
	t.Helper()

	if !isAvailable() {
		t.Skip("ghostscript not found")
	}

	img, err := render(write)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func render(write func(w io.Writer) error) (image.Image, error) {
	var dir string
	var err error
	if !keepTempFiles {
		dir, err = os.MkdirTemp("", "pstools")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(dir)
	} else {
		const dirName = "./render-files"
		err = os.Mkdir(dirName, 0755)
		if err != nil && !os.IsExist(err) {
			return nil, err
		}
		dir, err = filepath.Abs(dirName)
		if err != nil {
			return nil, err
		}
	}

	idx := <-gsIndex
	gsIndex <- idx + 1

	epsName := filepath.Join(dir, fmt.Sprintf("test%03d.eps", idx))
	pngName := filepath.Join(dir, fmt.Sprintf("test%03d.png", idx))

	fd, err := os.Create(epsName)
	if err != nil {
		return nil, err
	}
	err = write(fd)
	if err != nil {
		fd.Close()
		return nil, err
	}
	err = fd.Close()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m", fmt.Sprintf("-r%d", Resolution),
		"-dEPSCrop",
		"-o", pngName,
		epsName)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Stderr = nil
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ghostscript: %w", err)
	}
	if len(out) > 0 {
		fmt.Println("unexpected ghostscript output:")
		fmt.Println(string(out))
	}

	pngFile, err := os.Open(pngName)
	if err != nil {
		return nil, err
	}
	defer pngFile.Close()

	return png.Decode(pngFile)
}

var (
	gsOnce  sync.Once
	gsPNGRe = regexp.MustCompile(`\bpng16m\b`)
	gsFound bool
	gsIndex = make(chan int, 1)
)

// isAvailable returns true if the ghostscript command-line tool is available
// and supports PNG output.
func isAvailable() bool {
	gsOnce.Do(func() {
		out, err := exec.Command("gs", "-h").Output()
		if err != nil {
			gsFound = false
			return
		}
		gsFound = gsPNGRe.Match(out)
		gsIndex <- 1
	})
	return gsFound
}
