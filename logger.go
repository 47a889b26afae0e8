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

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is a slog.Handler which drops all records.
// Enabled returns false, so that callers skip formatting the message.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger sets the logger used by pstools and all its sub-packages.
// By default, no log output is produced.  Passing nil restores the
// default.
//
// Only [slog.LevelDebug] is used at the moment, for example to report
// lines skipped by the command parser.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the current logger.
// It is safe to call Logger concurrently with SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
