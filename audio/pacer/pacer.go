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

package pacer

import (
	"fmt"

	"github.com/jetsetilly/mockingboard/audio/mix"
	"github.com/jetsetilly/mockingboard/hardware/ay8910"
	"github.com/jetsetilly/mockingboard/logger"
)

// The range of intervals (in CPU cycles) between pumps. Shorter intervals are
// accumulated until the minimum is reached. Longer intervals are treated as
// the maximum interval of a 6522 timer.
const (
	MinInterval = 500
	MaxInterval = 0xffff + 2
)

// Generators is the bank of sound generators.
type Generators interface {
	// generate n samples for each voice of each generator
	Update(n int) [ay8910.NumChips]ay8910.Voices

	// apply pending register writes immediately and restart the measurement
	// of time
	SetCycles()
}

// Sink is the looping sound buffer. All positions and lengths are in stereo
// frames.
type Sink interface {
	Cursors() (play int, write int, err error)
	Size() int
	Lock(offset int, n int) ([]int16, []int16, error)
	Unlock(a []int16, b []int16) error
}

// Host is the emulated machine.
type Host interface {
	// the emulation is running as fast as possible, no audio is required
	FullSpeed() bool
}

// Recorder receives a copy of every block written to the sink. The block is
// interleaved stereo and is only valid for the duration of the call.
type Recorder interface {
	PutSamples(block []int16)
}

// Config is the configuration of a Pacer.
type Config struct {
	// CPU cycles per second
	CPUClock float64

	// sound buffer frames per second
	SampleRate int

	// number of samples to add or remove when the buffer is running short or
	// running long
	ErrorInc int

	// do not produce samples when the host is running at full speed
	FullSpeedSkip bool
}

// Pacer moves samples from the generators to the sink.
type Pacer struct {
	gen  Generators
	sink Sink
	host Host
	cfg  Config

	attenuation float64

	// the cycle of the most recent pump that produced samples
	lastUpdate uint64
	started    bool

	// correction to the number of samples in the next block
	sampleError int

	// write position in the sink. -1 until the first block is written
	offset int

	// interleaved stereo block
	block []int16

	recorder Recorder

	// activity tracking
	accessed      bool
	inactiveStart uint64
	active        bool
}

// NewPacer is the preferred method of initialisation for the Pacer type.
func NewPacer(gen Generators, sink Sink, host Host, cfg Config) *Pacer {
	p := &Pacer{
		gen:         gen,
		sink:        sink,
		host:        host,
		cfg:         cfg,
		attenuation: mix.NoAttenuation,
		block:       make([]int16, ay8910.MaxSamples*2),
	}
	p.Reset()
	return p
}

func (p *Pacer) String() string {
	return fmt.Sprintf("offset=%d error=%d last=%d", p.offset, p.sampleError, p.lastUpdate)
}

// Reset the pacer. The next block is written at the write cursor of the sink.
func (p *Pacer) Reset() {
	p.lastUpdate = 0
	p.started = false
	p.sampleError = 0
	p.offset = -1
	p.accessed = false
	p.inactiveStart = 0
	p.active = false
}

// SetAttenuation of the mix. See the mix package.
func (p *Pacer) SetAttenuation(attenuation float64) {
	p.attenuation = attenuation
}

// SetRecorder adds a recorder to the pacer. A nil recorder removes the current
// recorder.
func (p *Pacer) SetRecorder(r Recorder) {
	p.recorder = r
}

// SetErrorInc changes the correction step.
func (p *Pacer) SetErrorInc(inc int) {
	p.cfg.ErrorInc = inc
}

// SetCPUClock changes the number of CPU cycles per second.
func (p *Pacer) SetCPUClock(hz float64) {
	p.cfg.CPUClock = hz
}

// Offset returns the write position in the sink. -1 if no block has been
// written since the most recent reset.
func (p *Pacer) Offset() int {
	return p.offset
}

// SampleError returns the current correction to the number of samples.
func (p *Pacer) SampleError() int {
	return p.sampleError
}

// Accessed should be called whenever a register of the card is accessed. The
// card becomes active immediately.
func (p *Pacer) Accessed() {
	p.accessed = true
	p.active = true
}

// Active returns true if the card has been accessed recently.
func (p *Pacer) Active() bool {
	return p.active
}

// after this many cycles without an access the card is considered inactive
func (p *Pacer) inactiveLimit() uint64 {
	return uint64(p.cfg.CPUClock / 10)
}

func (p *Pacer) trackActivity(cycles uint64) {
	if p.accessed {
		p.accessed = false
		p.inactiveStart = 0
		p.active = true
		return
	}
	if p.inactiveStart == 0 {
		p.inactiveStart = cycles
		return
	}
	if cycles-p.inactiveStart > p.inactiveLimit() {
		p.active = false
	}
}

// Pump produces a block of samples for the time between the previous pump
// and the cycles argument, which is the cumulative CPU cycle count.
func (p *Pacer) Pump(cycles uint64) {
	if p.cfg.FullSpeedSkip && p.host != nil && p.host.FullSpeed() {
		p.gen.SetCycles()
		p.lastUpdate = cycles
		p.started = true
		return
	}

	p.trackActivity(cycles)

	if !p.started {
		p.lastUpdate = cycles
		p.started = true
		return
	}

	if cycles < p.lastUpdate {
		p.lastUpdate = cycles
		return
	}

	interval := cycles - p.lastUpdate
	if interval < MinInterval {
		return
	}
	if interval > MaxInterval {
		interval = MaxInterval
	}

	irqFreq := p.cfg.CPUClock/float64(interval) + 0.5
	perPeriod := int(float64(p.cfg.SampleRate) / irqFreq)

	samples := perPeriod + p.sampleError
	if samples > 2*perPeriod {
		samples = 2 * perPeriod
	}
	if samples < 0 {
		samples = 0
	}
	if samples > ay8910.MaxSamples {
		samples = ay8910.MaxSamples
	}

	play, write, err := p.sink.Cursors()
	if err != nil {
		logger.Logf(logger.Allow, "pacer", "skipping block: %v", err)
		return
	}

	size := p.sink.Size()

	// offset and error are only committed once the block has been accepted
	// by the sink
	offset := p.offset
	sampleError := p.sampleError

	if offset == -1 {
		offset = write
	} else if between(offset, play, write) {
		// the block would be written to a part of the buffer that is
		// being played. skip ahead to the write cursor
		offset = write
		sampleError = 0
	}

	remaining := offset - play
	if remaining < 0 {
		remaining += size
	}
	if remaining < size/4 {
		sampleError += p.cfg.ErrorInc
	} else if remaining > size/2 {
		sampleError -= p.cfg.ErrorInc
	} else {
		sampleError = 0
	}

	if samples == 0 {
		p.lastUpdate = cycles
		p.offset = offset
		p.sampleError = sampleError
		return
	}

	a, b, err := p.sink.Lock(offset, samples)
	if err != nil {
		logger.Logf(logger.Allow, "pacer", "skipping block: %v", err)
		return
	}

	p.lastUpdate = cycles
	p.sampleError = sampleError

	voices := p.gen.Update(samples)

	left := [][]int16{voices[0][0], voices[0][1], voices[0][2], voices[2][0], voices[2][1], voices[2][2]}
	right := [][]int16{voices[1][0], voices[1][1], voices[1][2], voices[3][0], voices[3][1], voices[3][2]}
	block := p.block[:samples*2]
	mix.Stereo(block, left, right, samples, p.attenuation)

	n := copy(a, block)
	copy(b, block[n:])
	err = p.sink.Unlock(a, b)
	if err != nil {
		logger.Logf(logger.Allow, "pacer", "%v", err)
	}

	p.offset = (offset + samples) % size

	if p.recorder != nil {
		p.recorder.PutSamples(block)
	}
}

// between returns true if offset lies strictly between the play cursor and
// the write cursor, taking into account the cursors wrapping at the end of
// the buffer.
func between(offset, play, write int) bool {
	if write > play {
		return offset > play && offset < write
	}
	return offset > play || offset < write
}
