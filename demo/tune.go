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

package demo

import (
	"math"

	"github.com/jetsetilly/mockingboard/hardware/ay8910"
)

// note is a pitch held for a number of ticks. pitch is a MIDI note number and
// zero is a rest
type note struct {
	pitch int
	ticks int
}

// the timer interrupt frequency of the player
const tickRate = 60

// notes are separated by silence of this many ticks
const articulation = 2

// the amplitude of a sounding note
const noteAmplitude = 0x0c

// length of a crotchet in ticks
const crotchet = 20

var melody = []note{
	{72, crotchet}, {72, crotchet}, {79, crotchet}, {79, crotchet},
	{81, crotchet}, {81, crotchet}, {79, crotchet * 2},
	{77, crotchet}, {77, crotchet}, {76, crotchet}, {76, crotchet},
	{74, crotchet}, {74, crotchet}, {72, crotchet * 2},
	{79, crotchet}, {79, crotchet}, {77, crotchet}, {77, crotchet},
	{76, crotchet}, {76, crotchet}, {74, crotchet * 2},
	{79, crotchet}, {79, crotchet}, {77, crotchet}, {77, crotchet},
	{76, crotchet}, {76, crotchet}, {74, crotchet * 2},
	{72, crotchet}, {72, crotchet}, {79, crotchet}, {79, crotchet},
	{81, crotchet}, {81, crotchet}, {79, crotchet * 2},
	{77, crotchet}, {77, crotchet}, {76, crotchet}, {76, crotchet},
	{74, crotchet}, {74, crotchet}, {72, crotchet * 2},
}

var bass = []note{
	{48, crotchet * 4}, {53, crotchet * 2}, {48, crotchet * 2},
	{53, crotchet * 2}, {48, crotchet * 2}, {55, crotchet * 2}, {48, crotchet * 2},
	{48, crotchet * 2}, {53, crotchet * 2}, {48, crotchet * 2}, {55, crotchet * 2},
	{48, crotchet * 2}, {53, crotchet * 2}, {48, crotchet * 2}, {55, crotchet * 2},
	{48, crotchet * 4}, {53, crotchet * 2}, {48, crotchet * 2},
	{53, crotchet * 2}, {48, crotchet * 2}, {55, crotchet * 2}, {48, crotchet * 2},
}

// frequency in Hz of a MIDI note number
func frequency(pitch int) float64 {
	return 440.0 * math.Pow(2, float64(pitch-69)/12)
}

// tonePeriod returns the value of the 12 bit tone period registers of the
// sound generator for the pitch.
func tonePeriod(pitch int, clock float64) uint16 {
	p := math.Round(clock / (16 * frequency(pitch)))
	if p < 1 {
		return 1
	}
	if p > 0x0fff {
		return 0x0fff
	}
	return uint16(p)
}

// register write produced by a voice
type regWrite struct {
	reg   uint8
	value uint8
}

// voice plays a sequence of notes on one channel of a sound generator.
type voice struct {
	notes   []note
	channel int

	idx  int
	tick int
}

func (v *voice) finished() bool {
	return v.idx >= len(v.notes)
}

// step the voice by one tick. returns the register writes required
func (v *voice) step(clock float64) []regWrite {
	if v.finished() {
		return nil
	}

	amp := uint8(ay8910.AmplitudeA + v.channel)
	n := v.notes[v.idx]

	var w []regWrite

	switch v.tick {
	case 0:
		if n.pitch == 0 {
			w = append(w, regWrite{amp, 0})
			break // switch
		}
		p := tonePeriod(n.pitch, clock)
		fine := uint8(ay8910.ToneFineA + v.channel*2)
		w = append(w,
			regWrite{fine, uint8(p)},
			regWrite{fine + 1, uint8(p >> 8)},
			regWrite{amp, noteAmplitude},
		)
	case n.ticks - articulation:
		w = append(w, regWrite{amp, 0})
	}

	v.tick++
	if v.tick >= n.ticks {
		v.tick = 0
		v.idx++
	}

	return w
}

