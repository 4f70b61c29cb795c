// This file is part of Mockingboard.
//
// Mockingboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mockingboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mockingboard.  If not, see <https://www.gnu.org/licenses/>.

package scheduler

import (
	"fmt"
	"strings"
)

// Callback is called when an event fires. The return value is the number of
// cycles before the event should fire again. A value of zero or less retires
// the event.
type Callback func(id int) int

// Event is a future occurrence identified by its id.
type Event struct {
	id       int
	label    string
	callback Callback

	// the number of cycles remaining before the event fires. only meaningful
	// if the event is active
	remaining int

	active bool

	// ordering of events with the same remaining value
	seq uint64
}

func (ev *Event) String() string {
	label := strings.TrimSpace(ev.label)
	if label == "" {
		label = "[unlabelled event]"
	}
	if !ev.active {
		return fmt.Sprintf("%s -> inactive", label)
	}
	return fmt.Sprintf("%s -> %d", label, ev.remaining)
}

// ID of event.
func (ev *Event) ID() int {
	return ev.id
}

// Label of event.
func (ev *Event) Label() string {
	return ev.label
}

// Active is true if the event is pending.
func (ev *Event) Active() bool {
	return ev.active
}

// RemainingCycles reports the number of cycles before the event fires.
// Returns -1 if the event is not active.
func (ev *Event) RemainingCycles() int {
	if !ev.active {
		return -1
	}
	return ev.remaining
}

// before returns true if ev should fire before other.
func (ev *Event) before(other *Event) bool {
	if ev.remaining == other.remaining {
		return ev.seq < other.seq
	}
	return ev.remaining < other.remaining
}
