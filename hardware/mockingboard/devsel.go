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

// Selection is the result of decoding the low byte of an address in the $Cnxx
// range of a slot.
type Selection struct {
	// bit 0 is VIA A (the first unit of the card) and bit 1 is VIA B
	VIA uint8

	// bit 0 is the speech chip of the first unit and bit 1 is the speech chip
	// of the second unit
	Speech uint8
}

// any returns true if something on the card is selected.
func (s Selection) any() bool {
	return s.VIA|s.Speech != 0
}

// speechSelect returns the speech chips decoded from the address. The primary
// chip at $Cn4x is wired to the second unit and the secondary chip at $Cn2x
// is wired to the first unit.
func speechSelect(offset uint8) uint8 {
	var s uint8
	if offset&0x40 == 0x40 {
		s |= 0x02
	}
	if offset&0x20 == 0x20 {
		s |= 0x01
	}
	return s
}

// selectMockingboard decodes an address for the Mockingboard C. VIA A is at
// $Cn00 and VIA B at $Cn80. The speech chips are write only and are written
// in addition to the VIA.
func selectMockingboard(offset uint8, write bool) Selection {
	var s Selection
	if offset < 0x80 {
		s.VIA = 0x01
	} else {
		s.VIA = 0x02
	}
	if write {
		s.Speech = speechSelect(offset)
	}
	return s
}

// selectPhasor decodes an address for the Phasor in the mode. In Echo+ mode
// the second VIA is mirrored throughout the range.
//
// The speech chips are selected when bit 7 of the address is clear and either
// of bits 5 and 6 are set. The speech chips can be read only in Phasor mode
// and written only in Phasor and Mockingboard modes.
func selectPhasor(offset uint8, mode PhasorMode, write bool) Selection {
	var s Selection

	switch mode {
	case PhasorModeMockingboard:
		s.VIA = ((offset & 0x80) >> 7) + 1
	case PhasorModePhasor:
		s.VIA = ((offset & 0x80) >> 6) | ((offset & 0x10) >> 4)
	case PhasorModeEchoPlus:
		s.VIA = 0x02
	}

	if offset&0x80 == 0x00 && offset&0x60 != 0x00 {
		if write {
			if mode == PhasorModeMockingboard || mode == PhasorModePhasor {
				s.Speech = speechSelect(offset)
			}
		} else if mode == PhasorModePhasor {
			s.Speech = speechSelect(offset)
		}
	}

	return s
}
