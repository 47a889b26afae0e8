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

package pstools

import "runtime/debug"

// Release is the version number of the library.
const Release = "1.0"

// Version returns a human readable version string, for example
// "pstools version 1.0 (seehuhn.de/go/pstools 3f2a91c0)".
//
// If build information is available, the module version or the VCS revision
// is appended.
func Version() string {
	res := "pstools version " + Release

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return res
	}

	version := info.Main.Version
	if version != "" && version != "(devel)" {
		return res + " (" + info.Main.Path + " " + version + ")"
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return res
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return res + " (" + info.Main.Path + " " + rev + ")"
}
