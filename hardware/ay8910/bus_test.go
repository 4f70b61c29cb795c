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

package ay8910_test

import (
	"testing"

	"github.com/jetsetilly/mockingboard/hardware/ay8910"
	"github.com/jetsetilly/mockingboard/test"
)

// values of output register B for each bus function with RESET high
const (
	orbInactive = 0x04
	orbRead     = 0x05
	orbWrite    = 0x06
	orbLatch    = 0x07
	orbReset    = 0x00
)

func TestDecode(t *testing.T) {
	type decodeTest struct {
		orb      uint8
		previous ay8910.BusState
		next     ay8910.BusState
		action   ay8910.Action
	}

	tests := []decodeTest{
		{orbInactive, ay8910.INACTIVE, ay8910.INACTIVE, ay8910.ActionNone},
		{orbRead, ay8910.INACTIVE, ay8910.READ, ay8910.ActionRead},
		{orbWrite, ay8910.INACTIVE, ay8910.WRITE, ay8910.ActionWrite},
		{orbLatch, ay8910.INACTIVE, ay8910.LATCH, ay8910.ActionLatch},

		// functions don't work unless the bus was inactive
		{orbWrite, ay8910.WRITE, ay8910.WRITE, ay8910.ActionNone},
		{orbWrite, ay8910.LATCH, ay8910.WRITE, ay8910.ActionNone},
		{orbLatch, ay8910.NOP0, ay8910.LATCH, ay8910.ActionNone},
		{orbInactive, ay8910.WRITE, ay8910.INACTIVE, ay8910.ActionNone},

		// reset leaves the bus state unchanged
		{orbReset, ay8910.WRITE, ay8910.WRITE, ay8910.ActionReset},
		{0xf3, ay8910.INACTIVE, ay8910.INACTIVE, ay8910.ActionReset},

		// bits above the control lines are ignored
		{0xfc, ay8910.LATCH, ay8910.INACTIVE, ay8910.ActionNone},
		{0xff, ay8910.INACTIVE, ay8910.LATCH, ay8910.ActionLatch},
	}

	for i, tst := range tests {
		next, action := ay8910.Decode(tst.orb, tst.previous)
		test.ExpectEquality(t, next, tst.next, i)
		test.ExpectEquality(t, action, tst.action, i)
	}
}

func TestBusStateString(t *testing.T) {
	test.ExpectEquality(t, ay8910.INACTIVE.String(), "INACTIVE")
	test.ExpectEquality(t, ay8910.LATCH.String(), "LATCH")
	test.ExpectEquality(t, ay8910.ActionWrite.String(), "write")
}

type generator struct {
	regs   [16]uint8
	writes int
	resets int
}

func (g *generator) ReadRegister(reg uint8) uint8 {
	return g.regs[reg&0x0f]
}

func (g *generator) WriteRegister(reg uint8, value uint8) {
	g.regs[reg&0x0f] = value
	g.writes++
}

func (g *generator) Reset() {
	g.regs = [16]uint8{}
	g.resets++
}

func TestLatchInactiveWrite(t *testing.T) {
	var ora, reg uint8
	state := ay8910.INACTIVE
	gen := &generator{}
	port := ay8910.Port{Data: &ora, Direction: 0xff, Register: &reg}

	ora = 0x07
	port.Transact(orbLatch, &state, gen)
	port.Transact(orbInactive, &state, gen)
	ora = 0x3f
	port.Transact(orbWrite, &state, gen)
	port.Transact(orbInactive, &state, gen)

	test.ExpectEquality(t, reg, uint8(0x07))
	test.ExpectEquality(t, gen.regs[7], uint8(0x3f))
	test.ExpectEquality(t, gen.writes, 1)

	// read back with DDRA set to input
	port.Direction = 0x00
	ora = 0x00
	port.Transact(orbRead, &state, gen)
	test.ExpectEquality(t, ora, uint8(0x3f))
}

func TestLatchWriteWithoutInactive(t *testing.T) {
	var ora, reg uint8
	state := ay8910.INACTIVE
	gen := &generator{}
	port := ay8910.Port{Data: &ora, Direction: 0xff, Register: &reg}

	ora = 0x07
	port.Transact(orbLatch, &state, gen)
	ora = 0x3f
	test.ExpectEquality(t, port.Transact(orbWrite, &state, gen), ay8910.ActionNone)

	test.ExpectEquality(t, gen.writes, 0)
	test.ExpectEquality(t, gen.regs[7], uint8(0x00))
	test.ExpectEquality(t, state, ay8910.WRITE)
}

func TestReadMasking(t *testing.T) {
	var ora, reg uint8
	gen := &generator{}
	gen.regs[3] = 0xff
	reg = 3

	port := ay8910.Port{Data: &ora, Direction: 0xf0, Register: &reg}
	port.Apply(ay8910.ActionRead, gen)
	test.ExpectEquality(t, ora, uint8(0x0f))

	// Echo+ reads ones for the input bits
	gen.regs[3] = 0x00
	port.NoReadBack = true
	port.Apply(ay8910.ActionRead, gen)
	test.ExpectEquality(t, ora, uint8(0x0f))
}

func TestLatchOutOfRange(t *testing.T) {
	var ora, reg uint8
	gen := &generator{}
	port := ay8910.Port{Data: &ora, Direction: 0xff, Register: &reg}

	ora = 0x05
	port.Apply(ay8910.ActionLatch, gen)
	test.ExpectEquality(t, reg, uint8(0x05))

	ora = 0x10
	port.Apply(ay8910.ActionLatch, gen)
	test.ExpectEquality(t, reg, uint8(0x05))
}

func TestReset(t *testing.T) {
	var ora, reg uint8
	state := ay8910.LATCH
	gen := &generator{}
	gen.regs[0] = 0xff
	port := ay8910.Port{Data: &ora, Direction: 0xff, Register: &reg}

	test.ExpectEquality(t, port.Transact(orbReset, &state, gen), ay8910.ActionReset)
	test.ExpectEquality(t, gen.resets, 1)
	test.ExpectEquality(t, gen.regs[0], uint8(0x00))
	test.ExpectEquality(t, state, ay8910.LATCH)
}
