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
	"container/list"
	"strings"

	"github.com/jetsetilly/mockingboard/logger"
)

// Manager coordinates a fixed table of events.
type Manager struct {
	events map[int]*Event

	// active events ordered by remaining cycles
	active *list.List

	// sequence number given to the next inserted event
	seq uint64

	// true while callbacks are being run by Update()
	updating bool
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager() *Manager {
	return &Manager{
		events: make(map[int]*Event),
		active: list.New(),
	}
}

// Register an event with the manager. The event is created inactive.
// Registering an id that already exists replaces the label and callback and
// leaves the event inactive.
func (mgr *Manager) Register(id int, label string, callback Callback) {
	if ev, ok := mgr.events[id]; ok {
		mgr.Remove(id)
		ev.label = label
		ev.callback = callback
		return
	}
	mgr.events[id] = &Event{id: id, label: label, callback: callback}
}

// Event returns the event registered with the id.
func (mgr *Manager) Event(id int) (*Event, bool) {
	ev, ok := mgr.events[id]
	return ev, ok
}

func (mgr *Manager) String() string {
	s := strings.Builder{}
	for e := mgr.active.Front(); e != nil; e = e.Next() {
		s.WriteString(e.Value.(*Event).String())
		s.WriteString("\n")
	}
	return s.String()
}

// Insert event so that it fires after the specified number of cycles. If the
// event is already pending then it is rescheduled.
func (mgr *Manager) Insert(id int, cycles int) {
	ev, ok := mgr.events[id]
	if !ok {
		logger.Logf(logger.Allow, "scheduler", "insert of unregistered event (%d)", id)
		return
	}

	if ev.active {
		mgr.Remove(id)
	}

	ev.remaining = cycles
	ev.active = true
	ev.seq = mgr.seq
	mgr.seq++

	// find insertion point. events with the same remaining cycles are fired in
	// the order they were inserted
	for e := mgr.active.Front(); e != nil; e = e.Next() {
		if ev.before(e.Value.(*Event)) {
			mgr.active.InsertBefore(ev, e)
			return
		}
	}
	mgr.active.PushBack(ev)
}

// Remove event from the list of pending events. Removing an inactive event has
// no effect.
func (mgr *Manager) Remove(id int) {
	ev, ok := mgr.events[id]
	if !ok || !ev.active {
		return
	}

	for e := mgr.active.Front(); e != nil; e = e.Next() {
		if e.Value.(*Event) == ev {
			mgr.active.Remove(e)
			break // for loop
		}
	}

	ev.active = false
}

// Update advances time by the number of cycles. Events that become due are
// fired in the order of their due cycle. Returns the ids of the fired events,
// in the order they were fired.
func (mgr *Manager) Update(cycles int) []int {
	if cycles <= 0 || mgr.active.Len() == 0 {
		return nil
	}

	if mgr.updating {
		logger.Log(logger.Allow, "scheduler", "update called from inside an event callback")
		return nil
	}
	mgr.updating = true
	defer func() {
		mgr.updating = false
	}()

	for e := mgr.active.Front(); e != nil; e = e.Next() {
		e.Value.(*Event).remaining -= cycles
	}

	var fired []int

	for mgr.active.Len() > 0 {
		front := mgr.active.Front()
		ev := front.Value.(*Event)
		if ev.remaining > 0 {
			break // for loop
		}

		mgr.active.Remove(front)
		ev.active = false
		fired = append(fired, ev.id)

		rearm := 0
		if ev.callback != nil {
			rearm = ev.callback(ev.id)
		}

		// the callback may have inserted the event itself. in which case the
		// return value is ignored
		if rearm > 0 && !ev.active {
			mgr.Insert(ev.id, rearm)
		}
	}

	return fired
}

// Pending returns a copy of the active events, in the order they will fire.
func (mgr *Manager) Pending() []Event {
	p := make([]Event, 0, mgr.active.Len())
	for e := mgr.active.Front(); e != nil; e = e.Next() {
		p = append(p, *e.Value.(*Event))
	}
	return p
}

// Reset cancels all pending events. Registered events are kept.
func (mgr *Manager) Reset() {
	for e := mgr.active.Front(); e != nil; e = e.Next() {
		e.Value.(*Event).active = false
	}
	mgr.active.Init()
}
