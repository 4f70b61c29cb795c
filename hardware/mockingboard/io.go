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
	"github.com/jetsetilly/mockingboard/hardware/ay8910"
	"github.com/jetsetilly/mockingboard/logger"
)

// the PCR value that routes ORB of VIA A to the SC-01 speech chip
const votraxPCR = 0xb0

// decodeAddress returns the slot and the offset into the $Cnxx range of the
// slot. The boolean is false if the address is not in the range of slot 4 or
// slot 5.
func decodeAddress(addr uint16) (int, uint8, bool) {
	if addr&0xf000 != 0xc000 {
		return 0, 0, false
	}
	slot := int(addr>>8) & 0x0f
	if slot != Slot4 && slot != Slot5 {
		return 0, 0, false
	}
	return slot, uint8(addr), true
}

// Read a value from the $Cnxx range of slot 4 or slot 5. The pc argument is
// the program counter after the instruction performing the read has been
// fetched.
func (c *Card) Read(pc uint16, addr uint16) uint8 {
	c.pc = pc
	c.UpdateCycles(c.host.Cycles())

	if c.variant == Empty {
		return c.host.FloatingBus()
	}

	slot, offset, ok := decodeAddress(addr)
	if !ok {
		logger.Logf(logger.Allow, "mockingboard", "read of address outside card range (%04x)", addr)
		return c.host.FloatingBus()
	}

	return c.read(slot, offset)
}

func (c *Card) read(slot int, offset uint8) uint8 {
	base := (slot - Slot4) * unitsPerCard

	var sel Selection
	if c.variant == Phasor {
		if slot != Slot4 {
			return c.host.FloatingBus()
		}
		sel = selectPhasor(offset, c.phasorMode, false)
	} else {
		sel = selectMockingboard(offset, false)
	}

	if !sel.any() {
		return c.host.FloatingBus()
	}

	reg := offset & 0x0f

	var v uint8
	if sel.VIA&0x01 == 0x01 {
		v |= c.units[base].via.Read(reg)
	}
	if sel.VIA&0x02 == 0x02 {
		v |= c.units[base+1].via.Read(reg)
	}

	// the speech chips drive bit 7 only but the value replaces anything
	// read from the VIAs. with both chips selected the secondary chip wins
	if sel.Speech != 0 {
		if sel.Speech&0x02 == 0x02 {
			v = c.units[base+1].speech.Read()
		}
		if sel.Speech&0x01 == 0x01 {
			v = c.units[base].speech.Read()
		}
	}

	return v
}

// Write a value to the $Cnxx range of slot 4 or slot 5. The pc argument is
// the program counter after the instruction performing the write has been
// fetched.
func (c *Card) Write(pc uint16, addr uint16, value uint8) {
	c.pc = pc
	c.UpdateCycles(c.host.Cycles())

	if c.variant == Empty {
		return
	}

	slot, offset, ok := decodeAddress(addr)
	if !ok {
		logger.Logf(logger.Allow, "mockingboard", "write to address outside card range (%04x)", addr)
		return
	}

	// some store instructions read the address before writing to it
	if c.timing.FalseRead(pc, addr) {
		c.read(slot, offset)
	}

	base := (slot - Slot4) * unitsPerCard

	var sel Selection
	if c.variant == Phasor {
		if slot != Slot4 {
			return
		}
		sel = selectPhasor(offset, c.phasorMode, true)
	} else {
		sel = selectMockingboard(offset, true)
	}

	reg := offset & 0x0f
	if sel.VIA&0x01 == 0x01 {
		c.units[base].via.Write(reg, value)
	}
	if sel.VIA&0x02 == 0x02 {
		c.units[base+1].via.Write(reg, value)
	}

	if sel.Speech&0x02 == 0x02 {
		c.units[base+1].speech.Write(offset&0x07, value)
	}
	if sel.Speech&0x01 == 0x01 {
		c.units[base].speech.Write(offset&0x07, value)
	}
}

// IO is an access to the device select range of the slot. Only the Phasor
// responds, by changing its mode. The returned value is the floating bus.
func (c *Card) IO(addr uint16) uint8 {
	if c.variant != Phasor {
		return c.host.FloatingBus()
	}
	c.setPhasorMode(nextPhasorMode(c.phasorMode, addr))
	return c.host.FloatingBus()
}

// writeORB is called by the VIA of the unit whenever ORB is written.
func (c *Card) writeORB(dev int, value uint8) {
	u := &c.units[dev]
	v := u.via

	// the SC-01 is only connected to VIA A
	if dev&0x01 == 0 && v.PCR == votraxPCR {
		// input bits of port B are high impedance and read as ones
		u.speech.VotraxWrite((value & v.DDRB) | ^v.DDRB)
		return
	}

	phasor := c.variant == Phasor
	port := ay8910.Port{
		Data:       &v.ORA,
		Direction:  v.DDRA,
		Register:   &u.register,
		NoReadBack: phasor && c.phasorMode == PhasorModeEchoPlus,
	}

	cs := generatorSelect(phasor, c.phasorMode, value)
	if cs&0x01 == 0x01 {
		port.Transact(value, &u.stateA, c.bank.Chip(dev))
	}
	if cs&0x02 == 0x02 {
		port.Transact(value, &u.stateB, c.bank.Chip(dev+2))
	}
}
