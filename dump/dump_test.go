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

package dump_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jetsetilly/mockingboard/audio/ring"
	"github.com/jetsetilly/mockingboard/demo"
	"github.com/jetsetilly/mockingboard/dump"
	"github.com/jetsetilly/mockingboard/hardware/mockingboard"
	"github.com/jetsetilly/mockingboard/test"
)

func dumpDemo(t *testing.T, cfg demo.Config) string {
	t.Helper()

	cfg.FullSpeed = true
	d, err := demo.NewDemo(cfg)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, d.Run(context.Background(), d.Seconds(0.1)))

	var s strings.Builder
	test.DemandSuccess(t, dump.Dump(&s, d.Card()))
	return s.String()
}

func TestMockingboard(t *testing.T) {
	s := dumpDemo(t, demo.Config{Variant: mockingboard.Mockingboard})

	test.ExpectEquality(t, strings.Contains(s, "MOCKINGBOARD"), true)
	test.ExpectEquality(t, strings.Contains(s, "slot4 A"), true)
	test.ExpectEquality(t, strings.Contains(s, "slot5 B"), true)
	test.ExpectEquality(t, strings.Contains(s, "AY3"), true)
	test.ExpectEquality(t, strings.Contains(s, "env shape"), true)
	test.ExpectEquality(t, strings.Contains(s, "INACTIVE"), true)
	test.ExpectEquality(t, strings.Contains(s, "DURPHON"), true)
	test.ExpectEquality(t, strings.Contains(s, "timer device: slot4 A"), true)
	test.ExpectEquality(t, strings.Contains(s, "slot4 A timer1"), true)

	// free-running latch of the player
	test.ExpectEquality(t, strings.Contains(s, "426e"), true)

	// no phasor in a mockingboard
	test.ExpectEquality(t, strings.Contains(s, "phasor mode"), false)
}

func TestPhasor(t *testing.T) {
	s := dumpDemo(t, demo.Config{
		Variant:    mockingboard.Phasor,
		PhasorMode: mockingboard.PhasorModePhasor,
	})

	test.ExpectEquality(t, strings.Contains(s, "PHASOR"), true)
	test.ExpectEquality(t, strings.Contains(s, "AY0-A"), true)
	test.ExpectEquality(t, strings.Contains(s, "AY1-B"), true)
	test.ExpectEquality(t, strings.Contains(s, "phasor mode: Phasor"), true)

	// only the units of one slot
	test.ExpectEquality(t, strings.Contains(s, "slot5"), false)
}

func TestEmpty(t *testing.T) {
	sink, err := ring.NewRing(4096, 512)
	test.DemandSuccess(t, err)
	card, err := mockingboard.NewCard(mockingboard.Empty, demo.NewHost(), sink, nil)
	test.DemandSuccess(t, err)

	var s strings.Builder
	test.DemandSuccess(t, dump.Dump(&s, card))
	test.ExpectEquality(t, strings.TrimSpace(s.String()), "EMPTY")
}
