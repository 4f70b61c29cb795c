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

// Package scheduler conceptualises events that occur a known number of CPU
// cycles in the future. For the sound card this is the underflow of a 6522
// timer.
//
// Events are created once, with Register(), for every id that will ever be
// scheduled. An event is then armed with Insert() and disarmed with Remove().
// At most one event per id is pending at any one time; inserting an event
// that is already pending reschedules it.
//
// The Update() function is used to indicate that time has passed. Events that
// are due are fired in order of their due cycle. The callback of a fired event
// returns the number of cycles until it should fire again, or zero if it
// should be retired.
//
//	mgr := scheduler.NewManager()
//	mgr.Register(0, "timer", func(id int) int {
//		return 100
//	})
//	mgr.Insert(0, 50)
//	mgr.Update(75) // event fires and is re-armed for 100 cycles time
//
// A fired event is never re-entered. Calls to Update() from inside a callback
// are ignored.
package scheduler
