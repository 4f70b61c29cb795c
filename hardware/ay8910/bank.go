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

package ay8910

import (
	"fmt"
)

// NumChips is the number of sound generators in a Bank. Two for each of the
// two cards.
const NumChips = 4

// MaxSamples is the maximum number of samples that can be generated by a
// single call to Bank.Update().
const MaxSamples = 16384

// clock measures time in CPU cycles since the most recent render.
type clock struct {
	now  func() uint64
	last uint64
}

func (clk *clock) since() uint64 {
	if clk.now == nil {
		return 0
	}
	n := clk.now()
	if n < clk.last {
		return 0
	}
	return n - clk.last
}

// Voices is the output of each voice of a chip.
type Voices [NumVoices][]int16

// Bank is a set of AY-3-8910 chips sharing the same master clock.
type Bank struct {
	clk   *clock
	chips [NumChips]*Chip

	// master clock of the chips in Hz
	clock      float64
	sampleRate int

	buffers [NumChips]Voices
}

// NewBank is the preferred method of initialisation for the Bank type. The now
// argument returns the current CPU cycle. The hz argument is the master
// clock in Hz.
func NewBank(now func() uint64, hz float64, sampleRate int) *Bank {
	b := &Bank{
		clk:        newClock(now),
		sampleRate: sampleRate,
	}
	for i := range b.chips {
		b.chips[i] = newChip(b.clk)
		for v := range b.buffers[i] {
			b.buffers[i][v] = make([]int16, MaxSamples)
		}
	}
	b.SetClock(hz)
	return b
}

func newClock(now func() uint64) *clock {
	clk := &clock{now: now}
	if now != nil {
		clk.last = now()
	}
	return clk
}

func (b *Bank) String() string {
	return fmt.Sprintf("%d chips @ %.0fHz -> %dHz", NumChips, b.clock, b.sampleRate)
}

// Chip returns the chip at index. Chips 0 and 1 are the chips of the first
// card and chips 2 and 3 are the chips of the second card.
func (b *Bank) Chip(i int) *Chip {
	return b.chips[i%NumChips]
}

// Reset the chip at index.
func (b *Bank) Reset(i int) {
	b.chips[i%NumChips].Reset()
}

// SetClock changes the master clock of the chips.
func (b *Bank) SetClock(hz float64) {
	b.clock = hz
}

// Clock returns the master clock of the chips in Hz.
func (b *Bank) Clock() float64 {
	return b.clock
}

// SetCycles restarts the measurement of time. Pending writes are applied
// immediately. Used when the generators have not been updated for a long
// period, for example while the emulation is running at full speed.
func (b *Bank) SetCycles() {
	for _, ch := range b.chips {
		ch.flush()
	}
	if b.clk.now != nil {
		b.clk.last = b.clk.now()
	}
}

// Update generates n samples for every voice of every chip. The returned
// slices are valid until the next call to Update().
func (b *Bank) Update(n int) [NumChips]Voices {
	if n > MaxSamples {
		n = MaxSamples
	}
	if n < 0 {
		n = 0
	}

	interval := b.clk.since()
	ticksPerSample := b.clock / 16.0 / float64(b.sampleRate)

	var out [NumChips]Voices
	for i, ch := range b.chips {
		for v := range b.buffers[i] {
			out[i][v] = b.buffers[i][v][:n]
		}
		ch.generate(out[i], n, interval, ticksPerSample)
	}

	if b.clk.now != nil {
		b.clk.last = b.clk.now()
	}

	return out
}
