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

package demo

import (
	"fmt"
)

// where instructions are assembled before they are "executed"
const origin = 0x0300

// Host implements the mockingboard.Host interface.
type Host struct {
	mem  [0x10000]uint8
	x, y uint8

	cycles    uint64
	irq       bool
	fullSpeed bool

	// number of times the IRQ line has been asserted while it was clear
	irqCount int
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost() *Host {
	return &Host{}
}

func (h *Host) String() string {
	return fmt.Sprintf("cycles=%d irq=%v", h.cycles, h.irq)
}

// Peek implements the cpu.Memory interface.
func (h *Host) Peek(address uint16) uint8 {
	return h.mem[address]
}

// X implements the cpu.Registers interface.
func (h *Host) X() uint8 {
	return h.x
}

// Y implements the cpu.Registers interface.
func (h *Host) Y() uint8 {
	return h.y
}

// IrqAssert implements the irq.Line interface.
func (h *Host) IrqAssert() {
	if !h.irq {
		h.irqCount++
	}
	h.irq = true
}

// IrqDeassert implements the irq.Line interface.
func (h *Host) IrqDeassert() {
	h.irq = false
}

// IRQ returns true if the IRQ line is asserted.
func (h *Host) IRQ() bool {
	return h.irq
}

// IRQCount returns the number of times the IRQ line has been asserted.
func (h *Host) IRQCount() int {
	return h.irqCount
}

// Cycles implements the mockingboard.Host interface.
func (h *Host) Cycles() uint64 {
	return h.cycles
}

// FullSpeed implements the mockingboard.Host interface.
func (h *Host) FullSpeed() bool {
	return h.fullSpeed
}

// SetFullSpeed indicates that the host is not running in real time.
func (h *Host) SetFullSpeed(fullSpeed bool) {
	h.fullSpeed = fullSpeed
}

// FloatingBus implements the mockingboard.Host interface. On the Apple II
// this is the most recent byte fetched by the video circuitry. The value is
// fixed for this host.
func (h *Host) FloatingBus() uint8 {
	return 0xa0
}

// assemble places the instruction bytes at the origin and returns the program
// counter after the instruction has been fetched.
func (h *Host) assemble(bytes ...uint8) uint16 {
	for i, b := range bytes {
		h.mem[origin+i] = b
	}
	return uint16(origin + len(bytes))
}

// advance the cycle counter.
func (h *Host) advance(cycles int) {
	h.cycles += uint64(cycles)
}
