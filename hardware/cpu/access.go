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

package cpu

// Variant of the 6502 in the host machine.
type Variant int

// List of supported CPU variants.
const (
	MOS6502 Variant = iota
	WDC65C02
)

func (v Variant) String() string {
	switch v {
	case MOS6502:
		return "6502"
	case WDC65C02:
		return "65C02"
	}
	return "unknown CPU variant"
}

// Memory is the view of the host memory needed to inspect the instruction
// stream. Reads must not have side effects.
type Memory interface {
	Peek(address uint16) uint8
}

// Registers is the view of the host CPU registers needed to resolve indexed
// addressing.
type Registers interface {
	X() uint8
	Y() uint8
}

// the I/O registers of a peripheral card are mirrored throughout the
// $C000-$C7FF range in steps of 16 bytes
const ioMask = 0xf80f
const ioBase = 0xc000

// AccessTiming inspects the instruction stream of the host CPU.
type AccessTiming struct {
	mem     Memory
	regs    Registers
	variant Variant
}

// NewAccessTiming is the preferred method of initialisation for the
// AccessTiming type.
func NewAccessTiming(mem Memory, regs Registers, variant Variant) *AccessTiming {
	return &AccessTiming{
		mem:     mem,
		regs:    regs,
		variant: variant,
	}
}

// SetVariant changes the CPU variant used to decode the instruction stream.
func (acc *AccessTiming) SetVariant(variant Variant) {
	acc.variant = variant
}

// Variant returns the CPU variant used to decode the instruction stream.
func (acc *AccessTiming) Variant() Variant {
	return acc.variant
}

func (acc *AccessTiming) peek(pc uint16, offset uint16) uint8 {
	return acc.mem.Peek(pc - offset)
}

// Decode returns the definition of the instruction that has just been fetched
// and that is now accessing memory.
func (acc *AccessTiming) Decode(pc uint16, write bool) (Definition, bool) {
	if write {
		return decodeWrite(acc.peek(pc, 3), acc.peek(pc, 2), acc.variant)
	}
	return decodeRead(acc.peek(pc, 3), acc.peek(pc, 2), acc.variant)
}

// EffectiveAddress returns the address accessed by the instruction, using the
// current index registers.
func (acc *AccessTiming) EffectiveAddress(pc uint16, defn Definition) uint16 {
	if defn.AddressingMode.operandBytes() == 1 {
		zp := acc.peek(pc, 1)
		if defn.AddressingMode == IndexedIndirect {
			zp += acc.regs.X()
		}
		addr := uint16(acc.mem.Peek(uint16(zp))) | uint16(acc.mem.Peek(uint16(zp+1)))<<8
		if defn.AddressingMode == IndirectIndexed {
			addr += uint16(acc.regs.Y())
		}
		return addr
	}

	addr := uint16(acc.peek(pc, 2)) | uint16(acc.peek(pc, 1))<<8
	switch defn.AddressingMode {
	case AbsoluteIndexedX:
		addr += uint16(acc.regs.X())
	case AbsoluteIndexedY:
		addr += uint16(acc.regs.Y())
	}
	return addr
}

// CyclesConsumedByTriggeringAccess returns the number of cycles used by the
// instruction that is accessing the peripheral register. The reg argument is
// the register number in the lower four bits of the address.
//
// Returns zero if the instruction cannot be identified or if the effective
// address of the instruction does not match the register.
func (acc *AccessTiming) CyclesConsumedByTriggeringAccess(pc uint16, reg uint8, write bool) int {
	defn, ok := acc.Decode(pc, write)
	if !ok {
		return 0
	}

	if acc.EffectiveAddress(pc, defn)&ioMask != ioBase+uint16(reg&0x0f) {
		return 0
	}

	return defn.Cycles
}

// FalseRead returns true if the write to addr is preceded by a read of the
// same address by the instruction performing the write. This happens for the
// non page crossing variants of:
//
//	sta (zp),y	6502 only
//	sta abs,y
//	sta abs,x
//
// Only reads of the 6522 timer low byte registers (register 4 and register 8)
// have a side effect, so the function returns false for other registers.
func (acc *AccessTiming) FalseRead(pc uint16, addr uint16) bool {
	opMinus3 := acc.peek(pc, 3)
	opMinus2 := acc.peek(pc, 2)

	if !(opMinus2 == 0x91 && acc.variant == MOS6502) && opMinus3 != 0x99 && opMinus3 != 0x9d {
		return false
	}

	var base uint16
	var effective uint16

	if opMinus2 == 0x91 {
		zp := acc.peek(pc, 1)
		base = uint16(acc.mem.Peek(uint16(zp))) | uint16(acc.mem.Peek(uint16(zp+1)))<<8
		effective = base + uint16(acc.regs.Y())
	} else {
		base = uint16(opMinus2) | uint16(acc.peek(pc, 1))<<8
		if opMinus3 == 0x99 {
			effective = base + uint16(acc.regs.Y())
		} else {
			effective = base + uint16(acc.regs.X())
		}
	}

	// page crossing variants do not perform the false read
	if (base^effective)>>8 != 0 {
		return false
	}

	if effective != addr {
		return false
	}

	reg := addr & 0x0f
	return reg == 4 || reg == 8
}
