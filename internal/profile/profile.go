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

// Package profile lets command line tools write CPU profiles.
package profile

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// Start begins writing a CPU profile to the named file.  If name is empty,
// no profile is written.  The returned function stops profiling and must be
// called before the program exits.
func Start(name string) (stop func(), err error) {
	if name == "" {
		return func() {}, nil
	}

	fd, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	err = pprof.StartCPUProfile(fd)
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}

	stop = func() {
		pprof.StopCPUProfile()
		err := fd.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not write CPU profile: %v\n", err)
		}
	}
	return stop, nil
}
