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

package mockingboard

import (
	"github.com/jetsetilly/mockingboard/logger"
)

// UpdateCycles brings the VIA timers up to date with the cumulative cycle
// count of the CPU and fires any timer events that are due.
func (c *Card) UpdateCycles(cumulative uint64) {
	if c.variant == Empty {
		return
	}

	if cumulative < c.lastCycles {
		logger.Logf(logger.Allow, "mockingboard", "cycle count moved backwards (%d -> %d)", c.lastCycles, cumulative)
		c.lastCycles = cumulative
		return
	}

	delta := cumulative - c.lastCycles
	if delta == 0 {
		return
	}
	c.lastCycles = cumulative

	if delta > 0xffff {
		logger.Logf(logger.Allow, "mockingboard", "long interval between updates (%d cycles)", delta)
	}

	clks := uint16(delta)
	for i := range c.units {
		c.units[i].via.Update(clks)
	}

	c.sched.Update(int(delta))
}

// onTimerEvent is the scheduler callback for the timers of every VIA. The
// timers have been brought up to date before the event fires.
func (c *Card) onTimerEvent(id int) int {
	v := c.units[(id/2)%NumUnits].via
	if id&0x01 == 0 {
		c.pump()
		return v.OnTimer1Event()
	}
	return v.OnTimer2Event()
}

// PeriodicUpdate should be called at regular intervals with the number of
// cycles executed since the previous call. The timers are brought up to date
// with the cycle count of the host.
func (c *Card) PeriodicUpdate(executed int) {
	if c.variant == Empty {
		return
	}

	c.UpdateCycles(c.host.Cycles())

	for i := range c.units {
		c.units[i].speech.PeriodicUpdate(executed)
	}

	if c.timerDevice != noTimerDevice {
		return
	}

	c.cyclesThisAudioFrame += executed
	if c.cyclesThisAudioFrame < cyclesPerAudioFrame {
		return
	}
	c.cyclesThisAudioFrame %= cyclesPerAudioFrame

	c.pump()
}

func (c *Card) pump() {
	c.pacer.Pump(c.lastCycles)
}
