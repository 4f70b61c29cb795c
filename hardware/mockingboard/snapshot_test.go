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

package mockingboard_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/mockingboard/curated"
	"github.com/jetsetilly/mockingboard/hardware/ay8910"
	"github.com/jetsetilly/mockingboard/hardware/mockingboard"
	"github.com/jetsetilly/mockingboard/hardware/via"
	"github.com/jetsetilly/mockingboard/test"
)

func saveSnapshot(t *testing.T, card *mockingboard.Card, slot int) string {
	t.Helper()
	var b bytes.Buffer
	test.DemandSuccess(t, card.SaveSnapshot(&b, slot))
	return b.String()
}

func TestSnapshotRoundTrip(t *testing.T) {
	card, host := newCard(t, mockingboard.Mockingboard)

	writeGenerator(card, 0xc400, 0x00, ay8910.ToneFineA, 0x55)
	writeGenerator(card, 0xc480, 0x00, ay8910.EnvelopeShape, 0x0a)
	card.Write(pc, 0xc40b, via.RunModeFreeRunning)
	card.Write(pc, 0xc40e, 0x80|via.IxrTimer1)
	card.Write(pc, 0xc404, 0x00)
	card.Write(pc, 0xc405, 0x10)
	card.Write(pc, 0xc4c4, 0x33)
	host.cycles = 0x0800
	card.UpdateCycles(host.cycles)

	s := saveSnapshot(t, card, mockingboard.Slot4)
	test.ExpectEquality(t, strings.Contains(s, "Card: Mockingboard C"), true)
	test.ExpectEquality(t, strings.Contains(s, "Version: 7"), true)
	test.ExpectEquality(t, strings.Contains(s, "Timer1 Latch: 0x1000"), true)
	test.ExpectEquality(t, strings.Contains(s, "AY8910-A"), false)

	restored, rhost := newCard(t, mockingboard.Mockingboard)
	rhost.cycles = host.cycles
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(s), mockingboard.Slot4))

	for i := 0; i < 2; i++ {
		test.ExpectEquality(t, restored.VIA(i).Registers, card.VIA(i).Registers, i)
		test.ExpectEquality(t, restored.VIA(i).Timer1Active(), card.VIA(i).Timer1Active(), i)
		test.ExpectEquality(t, restored.Generator(i).Registers(), card.Generator(i).Registers(), i)
		test.ExpectEquality(t, restored.Speech(i).Registers, card.Speech(i).Registers, i)
	}

	dev, ok := restored.TimerDevice()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, dev, 0)

	// the timer continues from where it was saved
	test.ExpectInequality(t, restored.Events(), "")
	host.cycles += 0x1000
	rhost.cycles += 0x1000
	card.UpdateCycles(host.cycles)
	restored.UpdateCycles(rhost.cycles)
	test.ExpectEquality(t, rhost.irq, host.irq)
	test.ExpectEquality(t, restored.VIA(0).Timer1Counter, card.VIA(0).Timer1Counter)

	// the second card is unaffected
	test.ExpectEquality(t, restored.VIA(2).DDRA, uint8(0x00))
}

func TestSnapshotSlot5(t *testing.T) {
	card, _ := newCard(t, mockingboard.Mockingboard)
	card.Write(pc, 0xc503, 0x77)
	card.Write(pc, 0xc583, 0x88)

	s := saveSnapshot(t, card, mockingboard.Slot5)

	restored, _ := newCard(t, mockingboard.Mockingboard)
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(s), mockingboard.Slot5))
	test.ExpectEquality(t, restored.VIA(2).DDRA, uint8(0x77))
	test.ExpectEquality(t, restored.VIA(3).DDRA, uint8(0x88))
	test.ExpectEquality(t, restored.VIA(0).DDRA, uint8(0x00))

	err := card.SaveSnapshot(&bytes.Buffer{}, 6)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, mockingboard.SnapshotError), true)
}

func TestSnapshotLatchFixup(t *testing.T) {
	card, _ := newCard(t, mockingboard.Mockingboard)
	card.Write(pc, 0xc486, 0x00)
	card.Write(pc, 0xc487, 0x00)
	test.DemandEquality(t, card.VIA(1).Timer1Latch, uint16(0x0000))

	s := saveSnapshot(t, card, mockingboard.Slot4)

	restored, _ := newCard(t, mockingboard.Mockingboard)
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(s), mockingboard.Slot4))
	test.ExpectEquality(t, restored.VIA(1).Timer1Latch, uint16(0x0000))

	// older versions never have a latch of zero
	s = strings.Replace(s, "Version: 7", "Version: 6", 1)
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(s), mockingboard.Slot4))
	test.ExpectEquality(t, restored.VIA(1).Timer1Latch, uint16(0xffff))
}

func TestSnapshotFailures(t *testing.T) {
	card, _ := newCard(t, mockingboard.Mockingboard)
	card.Write(pc, 0xc403, 0x5a)
	s := saveSnapshot(t, card, mockingboard.Slot4)

	target, _ := newCard(t, mockingboard.Mockingboard)
	target.Write(pc, 0xc403, 0x11)
	before := target.VIA(0).Registers

	// missing unit. the state of the first unit is not applied
	truncated := s[:strings.Index(s, "\n  Unit1:")+1]
	err := target.LoadSnapshot(strings.NewReader(truncated), mockingboard.Slot4)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, mockingboard.SnapshotError), true)
	test.ExpectEquality(t, target.VIA(0).Registers, before)

	// missing register
	err = target.LoadSnapshot(strings.NewReader(strings.Replace(s, "ACR:", "XXX:", 1)), mockingboard.Slot4)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, target.VIA(0).Registers, before)

	// unsupported versions
	err = target.LoadSnapshot(strings.NewReader(strings.Replace(s, "Version: 7", "Version: 8", 1)), mockingboard.Slot4)
	test.ExpectFailure(t, err)
	err = target.LoadSnapshot(strings.NewReader(strings.Replace(s, "Version: 7", "Version: 0", 1)), mockingboard.Slot4)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, target.VIA(0).Registers, before)

	// a snapshot for a different card
	phasor, _ := newCard(t, mockingboard.Phasor)
	err = phasor.LoadSnapshot(strings.NewReader(s), mockingboard.Slot4)
	test.ExpectFailure(t, err)

	// not yaml
	err = target.LoadSnapshot(strings.NewReader("{{{"), mockingboard.Slot4)
	test.ExpectFailure(t, err)

	// the phasor is only fitted to slot 4
	err = phasor.SaveSnapshot(&bytes.Buffer{}, mockingboard.Slot5)
	test.ExpectFailure(t, err)

	// nothing to save for an empty slot
	empty, _ := newCard(t, mockingboard.Empty)
	err = empty.SaveSnapshot(&bytes.Buffer{}, mockingboard.Slot4)
	test.ExpectFailure(t, err)
}

func TestSnapshotPhasor(t *testing.T) {
	card, _ := newCard(t, mockingboard.Phasor)
	card.IO(0xc0c5)
	writeGenerator(card, 0xc410, 0x08, ay8910.AmplitudeA, 0x0c)

	s := saveSnapshot(t, card, mockingboard.Slot4)
	test.ExpectEquality(t, strings.Contains(s, "Card: Phasor"), true)
	test.ExpectEquality(t, strings.Contains(s, "AY8910-B"), true)
	test.ExpectEquality(t, strings.Contains(s, "Unit State-B"), true)

	restored, _ := newCard(t, mockingboard.Phasor)
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(s), mockingboard.Slot4))
	test.ExpectEquality(t, restored.PhasorMode(), mockingboard.PhasorModePhasor)
	test.ExpectEquality(t, restored.Generator(2).ReadRegister(ay8910.AmplitudeA), uint8(0x0c))
	test.ExpectEquality(t, restored.Generator(0).ReadRegister(ay8910.AmplitudeA), uint8(0x00))

	// a mockingboard can't load the phasor snapshot
	mb, _ := newCard(t, mockingboard.Mockingboard)
	test.ExpectFailure(t, mb.LoadSnapshot(strings.NewReader(s), mockingboard.Slot4))
}

func TestSnapshotPhasorLegacyMode(t *testing.T) {
	card, _ := newCard(t, mockingboard.Phasor)
	card.IO(0xc0c5)
	card.IO(0xc0c2)
	test.DemandEquality(t, card.PhasorMode(), mockingboard.PhasorModeEchoPlus)
	s := saveSnapshot(t, card, mockingboard.Slot4)

	// before version 6 the mode was a flag and the clock scale was recorded
	// separately
	legacy := strings.Replace(s, "Version: 7", "Version: 5", 1)
	restored, _ := newCard(t, mockingboard.Phasor)
	err := restored.LoadSnapshot(strings.NewReader(legacy), mockingboard.Slot4)
	test.ExpectFailure(t, err)

	legacy = strings.Replace(legacy, "State:\n", "State:\n  Clock Scale Factor: 2\n", 1)
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(legacy), mockingboard.Slot4))
	test.ExpectEquality(t, restored.PhasorMode(), mockingboard.PhasorModePhasor)

	legacy = strings.Replace(legacy, "Mode: 7", "Mode: 0", 1)
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(legacy), mockingboard.Slot4))
	test.ExpectEquality(t, restored.PhasorMode(), mockingboard.PhasorModeMockingboard)
}

func TestSnapshotLegacyTimer(t *testing.T) {
	card, _ := newCard(t, mockingboard.Mockingboard)

	// timer 1 running but with the interrupt disabled
	card.Write(pc, 0xc404, 0x00)
	card.Write(pc, 0xc405, 0x10)
	test.DemandEquality(t, card.VIA(0).Timer1Active(), true)
	s := saveSnapshot(t, card, mockingboard.Slot4)

	restored, _ := newCard(t, mockingboard.Mockingboard)
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(s), mockingboard.Slot4))
	test.ExpectEquality(t, restored.VIA(0).Timer1Active(), true)

	// version 1 did not record the timer state. timer 1 is only restarted if
	// its interrupt is enabled
	s = strings.Replace(s, "Version: 7", "Version: 1", 1)
	restored, _ = newCard(t, mockingboard.Mockingboard)
	test.DemandSuccess(t, restored.LoadSnapshot(strings.NewReader(s), mockingboard.Slot4))
	test.ExpectEquality(t, restored.VIA(0).Timer1Active(), false)
	_, ok := restored.TimerDevice()
	test.ExpectEquality(t, ok, false)
}
