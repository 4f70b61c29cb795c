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

import "math"

// maxVoiceOutput is the output of a single voice at full amplitude. six voices
// are mixed into each stereo channel so six voices at full amplitude must not
// exceed the range of a signed 16 bit value
const maxVoiceOutput = math.MaxInt16 / 6

// volumes is the output level for each of the sixteen amplitude values. each
// step is 3dB
var volumes [16]int16

func init() {
	v := float64(maxVoiceOutput)
	for i := 15; i > 0; i-- {
		volumes[i] = int16(v)
		v /= math.Sqrt2
	}
	volumes[0] = 0
}

type pendingWrite struct {
	// cycle of the write relative to the most recent render
	cycle uint64
	reg   uint8
	value uint8
}

// Chip is a single AY-3-8910.
type Chip struct {
	clk *clock

	// registers as seen by the CPU
	regs [NumRegisters]uint8

	// registers as seen by the sound generator
	render [NumRegisters]uint8

	// writes that have not yet been rendered
	pending []pendingWrite

	tone [NumVoices]struct {
		counter int
		output  bool
	}

	noise struct {
		counter int
		rng     uint32
		output  bool
	}

	env struct {
		counter  int
		step     int
		attack   int
		hold     bool
		alt      bool
		holding  bool
		volume   int
		prescale int
	}

	// fractional chip ticks carried over between samples
	ticks float64
}

func newChip(clk *clock) *Chip {
	ch := &Chip{clk: clk}
	ch.Reset()
	return ch
}

// Reset the chip. All registers are cleared and any unrendered writes are
// discarded.
func (ch *Chip) Reset() {
	ch.regs = [NumRegisters]uint8{}
	ch.render = [NumRegisters]uint8{}
	ch.pending = ch.pending[:0]
	for i := range ch.tone {
		ch.tone[i].counter = 0
		ch.tone[i].output = false
	}
	ch.noise.counter = 0
	ch.noise.rng = 1
	ch.noise.output = true
	ch.ticks = 0
	ch.resetEnvelope()
}

// ReadRegister returns the value of the register. Bits not implemented by the
// register are returned as zero.
func (ch *Chip) ReadRegister(reg uint8) uint8 {
	reg &= NumRegisters - 1
	return ch.regs[reg] & registerMasks[reg]
}

// WriteRegister updates the register. The write is rendered at the point in
// time at which it happened.
func (ch *Chip) WriteRegister(reg uint8, value uint8) {
	reg &= NumRegisters - 1
	ch.regs[reg] = value
	ch.pending = append(ch.pending, pendingWrite{
		cycle: ch.clk.since(),
		reg:   reg,
		value: value,
	})
}

// Registers returns a copy of the registers as seen by the CPU.
func (ch *Chip) Registers() [NumRegisters]uint8 {
	return ch.regs
}

// Restore the registers, for example from a save-state. Unrendered writes are
// discarded.
func (ch *Chip) Restore(regs [NumRegisters]uint8) {
	ch.regs = regs
	ch.render = regs
	ch.pending = ch.pending[:0]
	ch.resetEnvelope()
}

func (ch *Chip) flush() {
	for _, w := range ch.pending {
		ch.apply(w.reg, w.value)
	}
	ch.pending = ch.pending[:0]
}

func (ch *Chip) apply(reg uint8, value uint8) {
	ch.render[reg] = value
	if reg == EnvelopeShape {
		ch.resetEnvelope()
	}
}

func (ch *Chip) resetEnvelope() {
	shape := ch.render[EnvelopeShape]

	ch.env.step = 0x0f
	ch.env.holding = false
	ch.env.counter = 0
	ch.env.prescale = 0

	if shape&shapeAttack == shapeAttack {
		ch.env.attack = 0x0f
	} else {
		ch.env.attack = 0x00
	}

	if shape&shapeContinue == 0x00 {
		// shapes 0 to 7 end with the output held at zero
		ch.env.hold = true
		ch.env.alt = ch.env.attack == 0x0f
	} else {
		ch.env.hold = shape&shapeHold == shapeHold
		ch.env.alt = shape&shapeAlternate == shapeAlternate
	}

	ch.env.volume = ch.env.step ^ ch.env.attack
}

func (ch *Chip) tonePeriod(voice int) int {
	p := int(ch.render[ToneFineA+voice*2]) | int(ch.render[ToneCoarseA+voice*2]&0x0f)<<8
	if p == 0 {
		return 1
	}
	return p
}

func (ch *Chip) noisePeriod() int {
	p := int(ch.render[NoisePeriod] & 0x1f)
	if p == 0 {
		return 1
	}
	return p
}

func (ch *Chip) envelopePeriod() int {
	p := int(ch.render[EnvelopeFine]) | int(ch.render[EnvelopeCoarse])<<8
	if p == 0 {
		return 1
	}
	return p
}

// tick advances the generator by one tone clock (the master clock divided by
// 16).
func (ch *Chip) tick() {
	for i := range ch.tone {
		ch.tone[i].counter++
		if ch.tone[i].counter >= ch.tonePeriod(i) {
			ch.tone[i].counter = 0
			ch.tone[i].output = !ch.tone[i].output
		}
	}

	// the noise generator runs at half the rate of the tone generators
	ch.noise.counter++
	if ch.noise.counter >= ch.noisePeriod()*2 {
		ch.noise.counter = 0

		// 17 bit LFSR with taps at bits 0 and 3
		bit := (ch.noise.rng ^ (ch.noise.rng >> 3)) & 0x01
		ch.noise.rng = (ch.noise.rng >> 1) | (bit << 16)
		ch.noise.output = ch.noise.rng&0x01 == 0x01
	}

	// the envelope steps every 256 master clocks for each unit of the period
	ch.env.prescale++
	if ch.env.prescale < 16 {
		return
	}
	ch.env.prescale = 0

	ch.env.counter++
	if ch.env.counter < ch.envelopePeriod() {
		return
	}
	ch.env.counter = 0

	if ch.env.holding {
		return
	}

	ch.env.step--
	if ch.env.step < 0 {
		if ch.env.alt {
			ch.env.attack ^= 0x0f
		}
		if ch.env.hold {
			ch.env.holding = true
			ch.env.step = 0
		} else {
			ch.env.step = 0x0f
		}
	}

	ch.env.volume = ch.env.step ^ ch.env.attack
}

// output returns the current output of the voice.
func (ch *Chip) output(voice int) int16 {
	enable := ch.render[Enable]
	toneOff := enable&(enableToneA<<voice) != 0x00
	noiseOff := enable&(enableNoiseA<<voice) != 0x00

	if !((ch.tone[voice].output || toneOff) && (ch.noise.output || noiseOff)) {
		return 0
	}

	amp := ch.render[AmplitudeA+voice]
	if amp&amplitudeEnvelope == amplitudeEnvelope {
		return volumes[ch.env.volume]
	}
	return volumes[amp&amplitudeLevel]
}

// generate fills the voice buffers with samples. the interval is the number
// of CPU cycles covered by the samples and is used to position pending writes
func (ch *Chip) generate(voices [NumVoices][]int16, n int, interval uint64, ticksPerSample float64) {
	p := 0
	for i := 0; i < n; i++ {
		// apply writes that happened before this sample
		for p < len(ch.pending) {
			w := ch.pending[p]
			if interval > 0 && w.cycle*uint64(n) > uint64(i)*interval {
				break // for loop
			}
			ch.apply(w.reg, w.value)
			p++
		}

		ch.ticks += ticksPerSample
		for ch.ticks >= 1.0 {
			ch.tick()
			ch.ticks--
		}

		for v := 0; v < NumVoices; v++ {
			voices[v][i] = ch.output(v)
		}
	}

	// any writes not yet applied happened at the very end of the interval
	for ; p < len(ch.pending); p++ {
		ch.apply(ch.pending[p].reg, ch.pending[p].value)
	}
	ch.pending = ch.pending[:0]
}
