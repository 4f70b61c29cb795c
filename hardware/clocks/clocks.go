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

// Package clocks defines the constant values that define the speed of the
// clocks in the Apple II and the sound card.
//
// The sound generator chips on the card are clocked from the 6502 clock. The
// Phasor card can double the generator clock in its native mode.
package clocks

// Apple II 6502 clock speeds in MHz.
const (
	NTSC = 1.020484
	PAL  = 1.015625
)

// SampleRate is the base frequency of the audio produced by the card. Sinks
// should not need to resample.
const SampleRate = 44100

// CyclesPerSecond returns the number of 6502 cycles in one second for the
// specified clock speed in MHz.
func CyclesPerSecond(mhz float64) float64 {
	return mhz * 1000000
}
