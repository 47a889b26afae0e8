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

package event

import "iter"

// Handle identifies an event within a [Log].
// Handles are assigned in insertion order, starting at 0, and stay valid
// for the lifetime of the log.
type Handle uint32

// Log is an append-only sequence of events, together with the string table
// the events refer to.
//
// The order of events is significant: later events are drawn on top of
// earlier ones, and state events affect all later drawing events until
// they are overridden.
//
// Log is not safe for concurrent use.
type Log struct {
	events  []Event
	strings []string
}

// NewLog allocates an empty log.
func NewLog() *Log {
	return &Log{
		events:  make([]Event, 0, 64),
		strings: make([]string, 0, 16),
	}
}

// Push appends an event to the log and returns its handle.
func (l *Log) Push(e Event) Handle {
	l.events = append(l.events, e)
	// #nosec G115 -- the log size is bounded by available memory
	return Handle(len(l.events) - 1)
}

// PushString appends s to the string table and returns a reference to it.
// Equal strings are not deduplicated.
func (l *Log) PushString(s string) StringRef {
	l.strings = append(l.strings, s)
	// #nosec G115 -- the table size is bounded by available memory
	return StringRef(len(l.strings) - 1)
}

// String returns the string table entry for ref.
// The empty string is returned for references not issued by this log.
func (l *Log) String(ref StringRef) string {
	if int(ref) >= len(l.strings) {
		return ""
	}
	return l.strings[ref]
}

// At returns the event with the given handle, or nil if h is out of range.
func (l *Log) At(h Handle) Event {
	if int(h) >= len(l.events) {
		return nil
	}
	return l.events[h]
}

// Len returns the number of events in the log.
func (l *Log) Len() int {
	return len(l.events)
}

// Strings returns the number of entries in the string table.
func (l *Log) Strings() int {
	return len(l.strings)
}

// All returns an iterator over all events in insertion order.
// The iterator can be used more than once.
func (l *Log) All() iter.Seq2[Handle, Event] {
	return func(yield func(Handle, Event) bool) {
		for i, e := range l.events {
			if !yield(Handle(i), e) {
				return
			}
		}
	}
}
