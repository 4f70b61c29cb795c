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

// a master clock that results in exactly one tone tick per sample
const (
	sampleRate = 44100
	oneTick    = 16 * sampleRate
)

func TestRegisterMasks(t *testing.T) {
	b := ay8910.NewBank(nil, oneTick, sampleRate)
	ch := b.Chip(0)

	ch.WriteRegister(ay8910.ToneCoarseA, 0xff)
	test.ExpectEquality(t, ch.ReadRegister(ay8910.ToneCoarseA), uint8(0x0f))
	ch.WriteRegister(ay8910.NoisePeriod, 0xff)
	test.ExpectEquality(t, ch.ReadRegister(ay8910.NoisePeriod), uint8(0x1f))
	ch.WriteRegister(ay8910.Enable, 0x3f)
	test.ExpectEquality(t, ch.ReadRegister(ay8910.Enable), uint8(0x3f))

	b.Reset(0)
	test.ExpectEquality(t, ch.ReadRegister(ay8910.Enable), uint8(0x00))
}

func TestEndToEndThroughBus(t *testing.T) {
	b := ay8910.NewBank(nil, oneTick, sampleRate)

	var ora, reg uint8
	state := ay8910.INACTIVE
	port := ay8910.Port{Data: &ora, Direction: 0xff, Register: &reg}

	ora = 0x07
	port.Transact(orbLatch, &state, b.Chip(1))
	port.Transact(orbInactive, &state, b.Chip(1))
	ora = 0x3f
	port.Transact(orbWrite, &state, b.Chip(1))
	port.Transact(orbInactive, &state, b.Chip(1))

	port.Direction = 0x00
	port.Transact(orbRead, &state, b.Chip(1))
	test.ExpectEquality(t, ora, uint8(0x3f))
	test.ExpectEquality(t, b.Chip(0).ReadRegister(ay8910.Enable), uint8(0x00))
}

func TestTone(t *testing.T) {
	b := ay8910.NewBank(nil, oneTick, sampleRate)
	ch := b.Chip(0)

	// tone A only with a period of ten ticks
	ch.WriteRegister(ay8910.ToneFineA, 10)
	ch.WriteRegister(ay8910.Enable, 0x3e)
	ch.WriteRegister(ay8910.AmplitudeA, 0x0f)

	out := b.Update(100)
	a := out[0][0]
	test.DemandEquality(t, len(a), 100)

	test.ExpectEquality(t, a[0], int16(0))
	test.ExpectEquality(t, a[8], int16(0))
	test.ExpectInequality(t, a[9], int16(0))
	test.ExpectInequality(t, a[18], int16(0))
	test.ExpectEquality(t, a[19], int16(0))

	// count the edges
	var edges int
	for i := 1; i < len(a); i++ {
		if a[i] != a[i-1] {
			edges++
		}
	}
	test.ExpectEquality(t, edges, 10)

	// voice B is silent
	for i := range out[0][1] {
		test.ExpectEquality(t, out[0][1][i], int16(0), i)
	}
}

func TestPendingWritePosition(t *testing.T) {
	var cycle uint64
	b := ay8910.NewBank(func() uint64 { return cycle }, oneTick, sampleRate)
	ch := b.Chip(2)

	// disable tone and noise so that output is a constant level
	ch.WriteRegister(ay8910.Enable, 0x3f)
	b.Update(10)

	cycle += 50
	ch.WriteRegister(ay8910.AmplitudeA, 0x0f)

	// the write is visible to the CPU immediately
	test.ExpectEquality(t, ch.ReadRegister(ay8910.AmplitudeA), uint8(0x0f))

	cycle += 50
	a := b.Update(100)[2][0]
	test.ExpectEquality(t, a[49], int16(0))
	test.ExpectInequality(t, a[50], int16(0))
	test.ExpectInequality(t, a[99], int16(0))
}

func TestSetCycles(t *testing.T) {
	var cycle uint64
	b := ay8910.NewBank(func() uint64 { return cycle }, oneTick, sampleRate)
	ch := b.Chip(3)

	ch.WriteRegister(ay8910.Enable, 0x3f)
	cycle += 1000000
	ch.WriteRegister(ay8910.AmplitudeA, 0x0f)

	// pending writes are applied and time restarts from now
	b.SetCycles()
	cycle += 100
	a := b.Update(100)[3][0]
	test.ExpectInequality(t, a[0], int16(0))
}

func TestEnvelopeShapes(t *testing.T) {
	level := func(shape uint8, sample int) int16 {
		b := ay8910.NewBank(nil, oneTick, sampleRate)
		ch := b.Chip(0)
		ch.WriteRegister(ay8910.Enable, 0x3f)
		ch.WriteRegister(ay8910.AmplitudeA, 0x10)
		ch.WriteRegister(ay8910.EnvelopeFine, 1)
		ch.WriteRegister(ay8910.EnvelopeShape, shape)
		return b.Update(sample + 1)[0][0][sample]
	}

	full := func() int16 {
		b := ay8910.NewBank(nil, oneTick, sampleRate)
		ch := b.Chip(0)
		ch.WriteRegister(ay8910.Enable, 0x3f)
		ch.WriteRegister(ay8910.AmplitudeA, 0x0f)
		return b.Update(1)[0][0][0]
	}()

	// decay then hold at zero
	test.ExpectEquality(t, level(0x00, 0), full)
	test.ExpectEquality(t, level(0x00, 300), int16(0))

	// attack then hold at zero
	test.ExpectEquality(t, level(0x04, 0), int16(0))
	test.ExpectEquality(t, level(0x04, 254), full)
	test.ExpectEquality(t, level(0x04, 300), int16(0))

	// attack then hold at maximum
	test.ExpectEquality(t, level(0x0d, 300), full)

	// decay then hold at maximum
	test.ExpectEquality(t, level(0x0b, 300), full)

	// sawtooth
	test.ExpectEquality(t, level(0x08, 254), int16(0))
	test.ExpectEquality(t, level(0x08, 255), full)

	// triangle
	test.ExpectEquality(t, level(0x0a, 254), int16(0))
	test.ExpectEquality(t, level(0x0a, 255), int16(0))
	test.ExpectEquality(t, level(0x0a, 254+256), full)
}

func TestRestore(t *testing.T) {
	b := ay8910.NewBank(nil, oneTick, sampleRate)
	ch := b.Chip(0)

	var regs [ay8910.NumRegisters]uint8
	regs[ay8910.Enable] = 0x3f
	regs[ay8910.AmplitudeA] = 0x0f
	ch.Restore(regs)

	test.ExpectEquality(t, ch.Registers(), regs)
	test.ExpectInequality(t, b.Update(1)[0][0][0], int16(0))
}
