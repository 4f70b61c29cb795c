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

package via

// CheckUnderflow applies the number of clocks to the counter and returns true
// if a timer interrupt is due.
//
// An underflow is when the counter passes from a non-negative value to a
// negative value. If the counter reaches -2 or lower the interrupt is due
// immediately. If the counter is exactly -1 the interrupt is delayed by one
// cycle and will be reported by the next call to CheckUnderflow() that applies
// a non-zero number of clocks.
func CheckUnderflow(counter *uint16, irqDelay *int, clocks uint16) bool {
	if clocks == 0 {
		return false
	}

	old := int(*counter)
	timer := old - int(clocks)
	*counter = uint16(timer)

	var irq bool

	// an earlier underflow that didn't yet result in an interrupt
	if *irqDelay != 0 {
		*irqDelay = 0
		irq = true
	}

	// the counter is a 16 bit unsigned value so old is never negative. the
	// test is kept so that the condition reads as the definition of an
	// underflow
	if old >= 0 && timer < 0 {
		if timer <= -2 {
			irq = true
		} else {
			*irqDelay = 1
		}
	}

	return irq
}

// OnTimer1Underflow reloads the timer 1 counter from the latch after an
// underflow. Any overshoot is preserved so that large numbers of clocks skip
// whole timer periods. Returns the new interrupt delay value.
//
// The counter is interpreted as a signed 16 bit value. Where the overshoot may
// exceed the range of an int16, use elapseTimer1() instead.
func OnTimer1Underflow(counter *uint16, latch uint16) int {
	var delay int
	*counter, delay = reloadTimer1(int(int16(*counter)), latch)
	return delay
}

// reloadTimer1 adds whole timer periods to the unwrapped counter value until
// it is -1 or greater.
func reloadTimer1(timer int, latch uint16) (uint16, int) {
	for timer < -1 {
		timer += int(latch) + ExtraTimerCycles
	}
	if timer == -1 {
		return uint16(timer), 1
	}
	return uint16(timer), 0
}

// elapseTimer1 applies the number of clocks to timer 1 and reloads it from the
// latch on underflow. The reload works on the unwrapped counter so that any
// number of clocks up to $ffff lands in the correct timer period. Returns true
// if a timer interrupt is due.
func elapseTimer1(counter *uint16, irqDelay *int, latch uint16, clocks uint16) bool {
	timer := int(*counter) - int(clocks)

	// a pending interrupt delay means the counter is sitting on -1
	if *irqDelay != 0 {
		timer = -1 - int(clocks)
	}

	if !CheckUnderflow(counter, irqDelay, clocks) {
		return false
	}
	*counter, *irqDelay = reloadTimer1(timer, latch)
	return true
}

// readAdjust is the number of cycles between the start of a reading
// instruction and the cycle on which the register is read.
func readAdjust(cycles int) uint16 {
	if cycles <= 1 {
		return 0
	}
	return uint16(cycles - 1)
}

// timer1Counter returns the value of the timer 1 counter as seen by a read
// instruction taking the specified number of cycles.
func timer1Counter(cycles int, counter uint16, latch uint16, irqDelay int) uint16 {
	elapseTimer1(&counter, &irqDelay, latch, readAdjust(cycles))
	return counter
}

// timer2Counter returns the value of the timer 2 counter as seen by a read
// instruction taking the specified number of cycles.
func timer2Counter(cycles int, counter uint16) uint16 {
	return counter - readAdjust(cycles)
}

// timer1Underflowed returns true if timer 1 underflows during a read
// instruction taking the specified number of cycles.
func timer1Underflowed(cycles int, counter uint16, irqDelay int) bool {
	if cycles < 0 {
		cycles = 0
	}
	return CheckUnderflow(&counter, &irqDelay, uint16(cycles))
}

// timer2Underflowed returns true if timer 2 underflows during a read
// instruction taking the specified number of cycles.
func timer2Underflowed(cycles int, counter uint16) bool {
	return int16(timer2Counter(cycles, counter)) < 0
}
