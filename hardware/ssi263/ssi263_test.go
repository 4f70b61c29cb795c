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

package ssi263_test

import (
	"testing"

	"github.com/jetsetilly/mockingboard/hardware/clocks"
	"github.com/jetsetilly/mockingboard/hardware/ssi263"
	"github.com/jetsetilly/mockingboard/hardware/via"
	"github.com/jetsetilly/mockingboard/test"
)

type owner struct {
	ifr uint8
}

func (o *owner) UpdateIFR(clr uint8, set uint8) {
	o.ifr &= ^clr
	o.ifr |= set
}

func TestPhonemeTables(t *testing.T) {
	test.ExpectEquality(t, ssi263.SSI263Phonemes[0x00].Phoneme, "PA")
	test.ExpectEquality(t, ssi263.SSI263Phonemes[0x3f].Phoneme, "LB")
	test.ExpectEquality(t, ssi263.VotraxPhonemes[0x00].Phoneme, "EH3")
	test.ExpectEquality(t, ssi263.VotraxPhonemes[0x3f].String(), "STOP")

	for i := range ssi263.SSI263Phonemes {
		test.ExpectInequality(t, ssi263.SSI263Phonemes[i].Phoneme, "", i)
		test.ExpectInequality(t, ssi263.VotraxPhonemes[i].Phoneme, "", i)
	}
}

func TestIRQDisabled(t *testing.T) {
	o := &owner{}
	sp := ssi263.NewSpeech(o)

	sp.Write(ssi263.DurPhon, 0x01)
	test.ExpectEquality(t, sp.IsPhonemeActive(), true)
	test.ExpectEquality(t, sp.Phoneme().Phoneme, "E")

	sp.PeriodicUpdate(1000000)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)
	test.ExpectEquality(t, o.ifr, uint8(0x00))
	test.ExpectEquality(t, sp.Read(), uint8(0x00))
}

func TestModeAndRequest(t *testing.T) {
	o := &owner{}
	sp := ssi263.NewSpeech(o)

	// power down, set the mode in the duration bits then power up
	sp.Write(ssi263.CttRamp, 0x80)
	sp.Write(ssi263.DurPhon, ssi263.ModePhonemeTransitionedInflection)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)
	sp.Write(ssi263.CttRamp, 0x00)
	test.ExpectEquality(t, sp.Mode, ssi263.ModePhonemeTransitionedInflection)

	sp.Write(ssi263.DurPhon, 0x05)
	test.ExpectEquality(t, sp.IsPhonemeActive(), true)
	sp.PeriodicUpdate(1000000)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)
	test.ExpectEquality(t, o.ifr, via.IxrSSI263)
	test.ExpectEquality(t, sp.Read(), uint8(0x80))

	// the next phoneme clears the request
	sp.Write(ssi263.DurPhon, 0x06)
	test.ExpectEquality(t, o.ifr, uint8(0x00))
	test.ExpectEquality(t, sp.Read(), uint8(0x00))
}

func TestDuration(t *testing.T) {
	o := &owner{}
	sp := ssi263.NewSpeech(o)

	// slowest rate and longest duration is 128ms
	sp.Write(ssi263.RateInf, 0x00)
	sp.Write(ssi263.DurPhon, 0x00)
	sp.PeriodicUpdate(130620)
	test.ExpectEquality(t, sp.IsPhonemeActive(), true)
	sp.PeriodicUpdate(1)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)

	// fastest rate is one sixteenth of the length
	sp.Write(ssi263.RateInf, 0xf0)
	sp.Write(ssi263.DurPhon, 0x00)
	sp.PeriodicUpdate(8163)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)
}

func TestClock(t *testing.T) {
	o := &owner{}
	sp := ssi263.NewSpeech(o)
	test.ExpectEquality(t, sp.Remaining(), 0)

	sp.Write(ssi263.RateInf, 0x00)
	sp.Write(ssi263.DurPhon, 0x00)
	test.ExpectEquality(t, sp.Remaining(), 130621)

	// 128ms on a PAL machine
	sp.SetClock(clocks.PAL)
	sp.Write(ssi263.DurPhon, 0x00)
	test.ExpectEquality(t, sp.Remaining(), 130000)

	sp.PeriodicUpdate(129999)
	test.ExpectEquality(t, sp.Remaining(), 1)
	sp.PeriodicUpdate(1)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)
	test.ExpectEquality(t, sp.Remaining(), 0)
}

func TestVotrax(t *testing.T) {
	o := &owner{}
	sp := ssi263.NewSpeech(o)

	sp.VotraxWrite(0x3f)
	test.ExpectEquality(t, sp.VotraxPhoneme(), true)
	test.ExpectEquality(t, sp.Phoneme().Phoneme, "STOP")

	// 47ms
	sp.PeriodicUpdate(47000)
	test.ExpectEquality(t, sp.IsPhonemeActive(), true)
	sp.PeriodicUpdate(1000)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)

	// the SC-01 always interrupts
	test.ExpectEquality(t, o.ifr, via.IxrVotrax)

	sp.VotraxWrite(0x00)
	test.ExpectEquality(t, o.ifr, uint8(0x00))
}

func TestPowerDownStopsSpeech(t *testing.T) {
	sp := ssi263.NewSpeech(nil)
	sp.Write(ssi263.DurPhon, 0x10)
	sp.Write(ssi263.CttRamp, 0x80)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)
}

func TestMirroredRegisters(t *testing.T) {
	sp := ssi263.NewSpeech(nil)
	sp.Write(0x07, 0x55)
	test.ExpectEquality(t, sp.FilFreq, uint8(0x55))
	sp.Write(0x0c, 0x42)
	test.ExpectEquality(t, sp.FilFreq, uint8(0x42))
}

func TestRestore(t *testing.T) {
	sp := ssi263.NewSpeech(nil)
	regs := ssi263.Registers{
		DurPhon: 0x81,
		RateInf: 0x30,
		CttRamp: 0x80,
		Mode:    ssi263.ModePhonemeImmediateInflection,
	}
	sp.Restore(regs)
	test.ExpectEquality(t, sp.Registers, regs)

	// restored in power-down mode. phoneme writes are stored but not spoken
	sp.Write(ssi263.DurPhon, 0x02)
	test.ExpectEquality(t, sp.IsPhonemeActive(), false)
}

func TestVolume(t *testing.T) {
	sp := ssi263.NewSpeech(nil)
	sp.SetVolume(2.0)
	test.ExpectEquality(t, sp.Volume(), 1.0)
	sp.SetVolume(-1.0)
	test.ExpectEquality(t, sp.Volume(), 0.0)

	sp.Mute()
	test.ExpectEquality(t, sp.Muted(), true)
	sp.Unmute()
	test.ExpectEquality(t, sp.Muted(), false)
}
