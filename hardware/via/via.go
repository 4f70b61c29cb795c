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

import (
	"fmt"
)

// Scheduler is used to arrange for timer events to be fired in the future.
type Scheduler interface {
	Insert(id int, cycles int)
	Remove(id int)
}

// AccessTiming reports the number of cycles used by the CPU instruction that
// is currently accessing a register. Returns zero if the number of cycles is
// unknown.
type AccessTiming interface {
	AccessCycles(reg uint8, write bool) int
}

// IRQ is the wire-OR of the interrupt outputs of every VIA.
type IRQ interface {
	Recompute() bool
}

// Card is the sound card the VIA is fitted to.
type Card interface {
	// WriteORB is called whenever the ORB register is written to. The value
	// has already been masked by DDRB.
	WriteORB(dev int, value uint8)

	// SetTimerDevice nominates the VIA as the source of the periodic timer
	// interrupt. ClearTimerDevice clears the nomination, regardless of which
	// VIA was nominated.
	SetTimerDevice(dev int)
	ClearTimerDevice()

	// Accessed is called on every register read and write.
	Accessed()
}

// Environment is the context in which a VIA operates.
type Environment struct {
	Scheduler Scheduler
	Timing    AccessTiming
	IRQ       IRQ
	Card      Card
}

// TimerID returns the scheduler id of a timer. The timer argument is either 1
// or 2.
func TimerID(dev int, timer int) int {
	return dev*2 + (timer-1)&1
}

// VIA is a single 6522 device.
type VIA struct {
	env Environment

	dev   int
	label string

	Registers

	timer1Active bool
	timer2Active bool
}

// NewVIA is the preferred method of initialisation for the VIA type. The
// device number is used to create the scheduler ids of the two timers. The
// label is used to describe pending interrupts.
//
// The VIA is returned in the power-on state but no collaborators are called
// until the first call to Reset().
func NewVIA(env Environment, dev int, label string) *VIA {
	return &VIA{
		env:       env,
		dev:       dev,
		label:     label,
		Registers: powerOn(),
	}
}

func (v *VIA) String() string {
	return fmt.Sprintf("%s: %s", v.label, v.Registers.String())
}

// Device returns the device number of the VIA.
func (v *VIA) Device() int {
	return v.dev
}

// Label implements the irq.Source interface.
func (v *VIA) Label() string {
	return v.label
}

// IRQ implements the irq.Source interface.
func (v *VIA) IRQ() bool {
	return v.IFR&IxrSummary == IxrSummary
}

// PendingIRQs implements the irq.Source interface.
func (v *VIA) PendingIRQs() []string {
	var p []string
	if v.IFR&IxrTimer1 == IxrTimer1 {
		p = append(p, "TIMER1")
	}
	if v.IFR&IxrTimer2 == IxrTimer2 {
		p = append(p, "TIMER2")
	}
	if v.IFR&IxrVotrax == IxrVotrax {
		p = append(p, "VOTRAX")
	}
	if v.IFR&IxrSSI263 == IxrSSI263 {
		p = append(p, "SSI263")
	}
	return p
}

// Timer1Active returns true if timer 1 has been started and not stopped.
func (v *VIA) Timer1Active() bool {
	return v.timer1Active
}

// Timer2Active returns true if timer 2 has been started and not stopped.
func (v *VIA) Timer2Active() bool {
	return v.timer2Active
}

// Reset the VIA. A power cycle also clears the register file.
func (v *VIA) Reset(powerCycle bool) {
	if powerCycle {
		v.Registers = powerOn()
	}

	// timer 1 to one-shot mode. clear and disable all interrupts
	v.Write(ACR, 0x00)
	v.Write(IFR, 0x7f)
	v.Write(IER, 0x7f)

	v.stopTimer1()
	v.stopTimer2()
}

// UpdateIFR clears and then sets the bits in the interrupt flag register. The
// summary bit is recomputed and the IRQ line is updated.
func (v *VIA) UpdateIFR(clr uint8, set uint8) {
	v.IFR &= ^clr
	v.IFR |= set

	if v.IFR&v.IER&0x7f != 0 {
		v.IFR |= IxrSummary
	} else {
		v.IFR &= ^IxrSummary
	}

	if v.env.IRQ != nil {
		v.env.IRQ.Recompute()
	}
}

// Update the timers by the number of elapsed cycles.
func (v *VIA) Update(clocks uint16) {
	elapseTimer1(&v.Timer1Counter, &v.Timer1IrqDelay, v.Timer1Latch, clocks)

	// timer 2 has no latch. after timing out the counter continues to
	// decrement
	CheckUnderflow(&v.Timer2Counter, &v.Timer2IrqDelay, clocks)
}

func (v *VIA) accessCycles(reg uint8, write bool) int {
	if v.env.Timing == nil {
		return 0
	}
	return v.env.Timing.AccessCycles(reg, write)
}

func (v *VIA) accessed() {
	if v.env.Card != nil {
		v.env.Card.Accessed()
	}
}

func (v *VIA) startTimer1() {
	v.timer1Active = true

	// the timer device is used if the timer 1 interrupt is enabled or if the
	// IFR is being polled while the timer is free-running
	if v.env.Card != nil {
		if v.IER&IxrTimer1 == IxrTimer1 || v.ACR&RunModeFreeRunning == RunModeFreeRunning {
			v.env.Card.SetTimerDevice(v.dev)
		}
	}
}

func (v *VIA) stopTimer1() {
	v.timer1Active = false
	if v.env.Card != nil {
		v.env.Card.ClearTimerDevice()
	}
}

func (v *VIA) startTimer2() {
	v.timer2Active = true
}

func (v *VIA) stopTimer2() {
	v.timer2Active = false
}

// scheduleTimer inserts the underflow event for the timer and returns the new
// counter value.
func (v *VIA) scheduleTimer(timer int, reg uint8, latch uint16) uint16 {
	adjust := v.accessCycles(reg, true)
	if v.env.Scheduler != nil {
		v.env.Scheduler.Insert(TimerID(v.dev, timer), int(latch)+ExtraTimerCycles+adjust)
	}

	// the result may be greater than $ffff. the excess is removed when the
	// instruction completes and the elapsed cycles are applied
	return uint16(int(latch) + adjust)
}

// Write value to register. Only the lower four bits of the register selector
// are used.
func (v *VIA) Write(reg uint8, value uint8) {
	v.accessed()

	reg &= 0x0f

	switch reg {
	case ORB:
		value &= v.DDRB
		v.ORB = value
		if v.env.Card != nil {
			v.env.Card.WriteORB(v.dev, value)
		}
	case ORA:
		v.ORA = value & v.DDRA
	case DDRB:
		v.DDRB = value
	case DDRA:
		v.DDRA = value
	case T1CL, T1LL:
		v.Timer1Latch = (v.Timer1Latch & 0xff00) | uint16(value)
	case T1CH:
		v.UpdateIFR(IxrTimer1, 0)
		v.Timer1Latch = (v.Timer1Latch & 0x00ff) | uint16(value)<<8
		v.Timer1Counter = v.scheduleTimer(1, reg, v.Timer1Latch)
		v.startTimer1()
	case T1LH:
		v.UpdateIFR(IxrTimer1, 0)
		v.Timer1Latch = (v.Timer1Latch & 0x00ff) | uint16(value)<<8
	case T2CL:
		v.Timer2Latch = (v.Timer2Latch & 0xff00) | uint16(value)
	case T2CH:
		v.UpdateIFR(IxrTimer2, 0)
		v.Timer2Latch = (v.Timer2Latch & 0x00ff) | uint16(value)<<8
		v.Timer2Counter = v.scheduleTimer(2, reg, v.Timer2Latch)
		v.startTimer2()
	case SR:
	case ACR:
		v.ACR = value
	case PCR:
		v.PCR = value
	case IFR:
		// bit 7 can not be cleared directly. it is recomputed by UpdateIFR()
		v.UpdateIFR(value&0x7f, 0)
	case IER:
		if value&0x80 == 0x00 {
			v.IER &= ^(value & 0x7f)
		} else {
			v.IER |= value & 0x7f
		}
		v.UpdateIFR(0, 0)
	case ORANoHS:
	}
}

// Read value from register. Only the lower four bits of the register selector
// are used.
func (v *VIA) Read(reg uint8) uint8 {
	v.accessed()

	reg &= 0x0f

	switch reg {
	case ORB:
		return v.ORB
	case ORA, ORANoHS:
		return v.ORA
	case DDRB:
		return v.DDRB
	case DDRA:
		return v.DDRA
	case T1CL:
		// for example, a counter of $ffff read by a four cycle instruction
		// returns $fc
		value := uint8(timer1Counter(v.accessCycles(reg, false), v.Timer1Counter, v.Timer1Latch, v.Timer1IrqDelay))
		v.UpdateIFR(IxrTimer1, 0)
		return value
	case T1CH:
		return uint8(timer1Counter(v.accessCycles(reg, false), v.Timer1Counter, v.Timer1Latch, v.Timer1IrqDelay) >> 8)
	case T1LL:
		return uint8(v.Timer1Latch)
	case T1LH:
		return uint8(v.Timer1Latch >> 8)
	case T2CL:
		return uint8(timer2Counter(v.accessCycles(reg, false), v.Timer2Counter))
	case T2CH:
		return uint8(timer2Counter(v.accessCycles(reg, false), v.Timer2Counter) >> 8)
	case SR:
		return 0x00
	case ACR:
		return v.ACR
	case PCR:
		return v.PCR
	case IFR:
		// include any underflow that happens during the reading instruction
		// but which has not yet been applied by Update()
		value := v.IFR
		cycles := v.accessCycles(reg, false)
		if v.timer1Active && timer1Underflowed(cycles, v.Timer1Counter, v.Timer1IrqDelay) {
			value |= IxrTimer1
		}
		if v.timer2Active && timer2Underflowed(cycles, v.Timer2Counter) {
			value |= IxrTimer2
		}
		return value
	case IER:
		return v.IER | 0x80
	}

	return 0x00
}

// OnTimer1Event should be called when the scheduler fires the timer 1 event.
// The elapsed cycles must have been applied with Update() before the call.
// Returns the number of cycles until the event should fire again or zero if
// the event should not be repeated.
func (v *VIA) OnTimer1Event() int {
	v.UpdateIFR(0, IxrTimer1)

	if v.ACR&RunModeFreeRunning == 0x00 {
		v.stopTimer1()
		return 0
	}

	v.startTimer1()
	return int(v.Timer1Counter) + ExtraTimerCycles
}

// OnTimer2Event should be called when the scheduler fires the timer 2 event.
// Timer 2 is always in one-shot mode so the event is never repeated.
func (v *VIA) OnTimer2Event() int {
	v.UpdateIFR(0, IxrTimer2)
	v.stopTimer2()
	return 0
}

// Restore the register file and timer state, for example from a save-state.
// No collaborators are called. Resume() should be called afterwards.
func (v *VIA) Restore(regs Registers, timer1Active bool, timer2Active bool) {
	v.Registers = regs
	v.timer1Active = timer1Active
	v.timer2Active = timer2Active
}

// Resume the VIA after a call to Restore(). Pending interrupts are asserted and
// the timer events are inserted into the scheduler.
//
// The legacy argument should be true for save-states that did not record the
// active state of the timers. In that case timer 1 is started only if its
// interrupt is enabled.
func (v *VIA) Resume(legacy bool) {
	v.UpdateIFR(0, v.IFR)

	if legacy {
		if v.IER&IxrTimer1 == IxrTimer1 {
			v.timer1Active = true
			if v.env.Card != nil {
				v.env.Card.SetTimerDevice(v.dev)
			}
		}
	} else if v.timer1Active {
		v.startTimer1()
	}

	if v.env.Scheduler != nil {
		if v.timer1Active {
			v.env.Scheduler.Insert(TimerID(v.dev, 1), int(v.Timer1Counter)+ExtraTimerCycles)
		}
		if v.timer2Active {
			v.env.Scheduler.Insert(TimerID(v.dev, 2), int(v.Timer2Counter)+ExtraTimerCycles)
		}
	}
}
