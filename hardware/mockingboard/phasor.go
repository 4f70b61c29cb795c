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

// The device select logic of the Phasor. An access to the device select range
// of the slot changes the mode of the card:
//
//	if bit 3 of the address is set then the mode bits are cleared
//	any of bits 0 to 2 of the address that are set are then set in the mode
//
// On real hardware, after a reset an access to $C0C5 selects Phasor mode but
// the same access after $C0C2 remains in Echo+ mode.
func nextPhasorMode(mode PhasorMode, addr uint16) PhasorMode {
	bits := mode
	if addr&0x08 == 0x08 {
		bits = 0
	}
	bits |= PhasorMode(addr & 0x07)
	return bits
}

// clockScale returns the factor applied to the clock of the sound generators
// for the mode. Modes other than the three documented modes do not change the
// current factor.
func clockScale(mode PhasorMode, current int) int {
	switch mode {
	case PhasorModeMockingboard, PhasorModeEchoPlus:
		return 1
	case PhasorModePhasor:
		return 2
	}
	return current
}

// generatorSelect returns the sound generators addressed by a write to ORB in
// the mode. Bit 0 is the first generator of the unit and bit 1 is the second
// generator.
//
// In Phasor mode, bits 3 and 4 of ORB are active low chip selects.
func generatorSelect(phasor bool, mode PhasorMode, orb uint8) uint8 {
	if phasor && mode == PhasorModePhasor {
		return ^(orb >> 3) & 0x03
	}
	return 0x01
}
