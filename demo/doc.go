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

// Package demo is a host machine for the sound cards. It stands in for the
// Apple II: it owns the memory, the index registers, the cycle counter and the
// IRQ line, and it runs a small interrupt driven music player against the
// card in the same way that a 6502 program would.
//
// Every access to the card is made by an instruction placed in the host
// memory so that the access timing of the card sees a real STA or LDA
// instruction.
//
// The player programs timer 1 of a VIA in free-running mode at 60Hz. Each
// timer interrupt advances the tune and writes the sound generator registers
// through the VIA ports.
package demo
