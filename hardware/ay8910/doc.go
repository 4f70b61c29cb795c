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

// Package ay8910 emulates the AY-3-8910 programmable sound generator and the
// pseudo-bus used by the Mockingboard to talk to it.
//
// The AY-3-8910 has no address lines. Instead, three bus control lines (BDIR,
// BC2 and BC1) select one of four functions: inactive, read, write and latch
// address. On the Mockingboard BC2 is wired high and BDIR and BC1 are driven
// by bits 1 and 0 of output register B of the 6522. Bit 2 of the same
// register is connected to the RESET input of the chip. The data bus of the
// chip is connected to output register A.
//
// A function only has an effect if the bus was in the inactive state
// beforehand. Decode() is a pure function that implements the decoding of the
// control lines. Port.Apply() performs the decoded action.
//
// The Bank type is a set of four sound generators, enough for two cards. It
// renders each voice of each chip to a buffer of signed 16 bit samples. Writes
// to the registers are visible immediately to register reads but are rendered
// at the point in time, relative to the previous render, at which they
// happened.
package ay8910
