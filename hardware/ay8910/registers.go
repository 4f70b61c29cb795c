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

// List of AY-3-8910 registers.
const (
	ToneFineA = iota
	ToneCoarseA
	ToneFineB
	ToneCoarseB
	ToneFineC
	ToneCoarseC
	NoisePeriod
	Enable
	AmplitudeA
	AmplitudeB
	AmplitudeC
	EnvelopeFine
	EnvelopeCoarse
	EnvelopeShape
	PortA
	PortB

	NumRegisters
)

// RegisterNames are the names of each register, indexed by register number.
var RegisterNames = [NumRegisters]string{
	"A fine", "A coarse", "B fine", "B coarse",
	"C fine", "C coarse", "noise", "enable",
	"A amp", "B amp", "C amp", "env fine",
	"env coarse", "env shape", "port A", "port B",
}

// registers do not implement all eight bits. unimplemented bits read as zero
var registerMasks = [NumRegisters]uint8{
	0xff, 0x0f, 0xff, 0x0f,
	0xff, 0x0f, 0x1f, 0xff,
	0x1f, 0x1f, 0x1f, 0xff,
	0xff, 0x0f, 0xff, 0xff,
}

// NumVoices is the number of tone channels in the chip.
const NumVoices = 3

// bits in the Enable register. a set bit disables the tone or noise for the
// channel
const (
	enableToneA  = 0x01
	enableNoiseA = 0x08
)

// bits in the amplitude registers
const (
	amplitudeLevel    = 0x0f
	amplitudeEnvelope = 0x10
)

// bits in the EnvelopeShape register
const (
	shapeHold      = 0x01
	shapeAlternate = 0x02
	shapeAttack    = 0x04
	shapeContinue  = 0x08
)
