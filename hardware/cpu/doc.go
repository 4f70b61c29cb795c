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

// Package cpu provides the information about the host 6502 that the sound
// card needs but which the host CPU emulation does not otherwise expose.
//
// The 6522 timers on the card are sensitive to the exact cycle on which a
// register is accessed. The host reports elapsed cycles at the start of an
// instruction, so the card needs to know how many cycles the instruction
// performing the access will take. The AccessTiming type works this out by
// looking at the instruction bytes preceding the program counter.
//
//	timing := cpu.NewAccessTiming(mem, regs, cpu.MOS6502)
//	cycles := timing.CyclesConsumedByTriggeringAccess(pc, 0x05, true)
//
// The result is zero if the instruction cannot be identified, or if the
// instruction does not address the expected register.
//
// The package also detects the false read performed by some indexed store
// instructions. See the FalseRead() function.
package cpu
