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

package scheduler_test

import (
	"testing"

	"github.com/jetsetilly/mockingboard/hardware/scheduler"
	"github.com/jetsetilly/mockingboard/test"
)

func equalIDs(t *testing.T, fired []int, expected ...int) {
	t.Helper()
	if !test.ExpectEquality(t, len(fired), len(expected)) {
		return
	}
	for i := range fired {
		test.ExpectEquality(t, fired[i], expected[i])
	}
}

func TestFireAndRetire(t *testing.T) {
	mgr := scheduler.NewManager()

	var count int
	mgr.Register(0, "a", func(_ int) int {
		count++
		return 0
	})

	mgr.Insert(0, 10)
	equalIDs(t, mgr.Update(9))
	test.ExpectEquality(t, count, 0)

	equalIDs(t, mgr.Update(1), 0)
	test.ExpectEquality(t, count, 1)

	ev, ok := mgr.Event(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Active(), false)
	test.ExpectEquality(t, ev.RemainingCycles(), -1)

	equalIDs(t, mgr.Update(100))
	test.ExpectEquality(t, count, 1)
}

func TestRearm(t *testing.T) {
	mgr := scheduler.NewManager()
	mgr.Register(0, "a", func(_ int) int {
		return 100
	})

	mgr.Insert(0, 50)
	equalIDs(t, mgr.Update(75), 0)

	// rearm distance is measured from the end of the update
	ev, _ := mgr.Event(0)
	test.ExpectEquality(t, ev.RemainingCycles(), 100)
}

func TestOrdering(t *testing.T) {
	mgr := scheduler.NewManager()
	for id := 0; id < 4; id++ {
		mgr.Register(id, "", func(_ int) int { return 0 })
	}

	mgr.Insert(0, 30)
	mgr.Insert(1, 10)
	mgr.Insert(2, 20)
	mgr.Insert(3, 10)

	// ties are fired in insertion order
	equalIDs(t, mgr.Update(100), 1, 3, 2, 0)
}

func TestReschedule(t *testing.T) {
	mgr := scheduler.NewManager()
	mgr.Register(0, "", func(_ int) int { return 0 })
	mgr.Register(1, "", func(_ int) int { return 0 })

	mgr.Insert(0, 10)
	mgr.Insert(1, 20)
	mgr.Insert(0, 30)

	test.ExpectEquality(t, len(mgr.Pending()), 2)
	equalIDs(t, mgr.Update(25), 1)
	equalIDs(t, mgr.Update(5), 0)
}

func TestRemove(t *testing.T) {
	mgr := scheduler.NewManager()
	mgr.Register(0, "", func(_ int) int { return 0 })

	mgr.Insert(0, 10)
	mgr.Remove(0)
	mgr.Remove(0)
	equalIDs(t, mgr.Update(20))

	// removing an unregistered id is harmless
	mgr.Remove(99)
}

func TestCallbackReinsert(t *testing.T) {
	mgr := scheduler.NewManager()

	mgr.Register(0, "", func(id int) int {
		mgr.Insert(id, 7)
		return 1000
	})

	mgr.Insert(0, 5)
	equalIDs(t, mgr.Update(5), 0)

	// the insert from inside the callback takes precedence
	ev, _ := mgr.Event(0)
	test.ExpectEquality(t, ev.RemainingCycles(), 7)
}

func TestNestedUpdate(t *testing.T) {
	mgr := scheduler.NewManager()
	mgr.Register(1, "", func(_ int) int { return 0 })

	var nested []int
	mgr.Register(0, "", func(_ int) int {
		nested = mgr.Update(100)
		return 0
	})

	mgr.Insert(0, 5)
	mgr.Insert(1, 50)
	equalIDs(t, mgr.Update(10), 0)
	equalIDs(t, nested)

	ev, _ := mgr.Event(1)
	test.ExpectEquality(t, ev.RemainingCycles(), 40)
}

func TestMultipleFiringsInOneUpdate(t *testing.T) {
	mgr := scheduler.NewManager()

	var count int
	mgr.Register(0, "", func(_ int) int {
		count++
		return 10
	})

	// overdue cycles are not carried over to the rearmed event
	mgr.Insert(0, 10)
	equalIDs(t, mgr.Update(35), 0)
	test.ExpectEquality(t, count, 1)
}

func TestReset(t *testing.T) {
	mgr := scheduler.NewManager()
	mgr.Register(0, "timer", func(_ int) int { return 0 })
	mgr.Insert(0, 10)
	test.ExpectEquality(t, mgr.String(), "timer -> 10\n")

	mgr.Reset()
	test.ExpectEquality(t, len(mgr.Pending()), 0)
	test.ExpectEquality(t, mgr.String(), "")
	equalIDs(t, mgr.Update(100))

	mgr.Insert(0, 10)
	equalIDs(t, mgr.Update(100), 0)
}
