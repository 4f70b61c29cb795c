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
	"context"
	"fmt"
	"time"

	"github.com/jetsetilly/mockingboard/audio/ring"
	"github.com/jetsetilly/mockingboard/curated"
	"github.com/jetsetilly/mockingboard/hardware/ay8910"
	"github.com/jetsetilly/mockingboard/hardware/clocks"
	"github.com/jetsetilly/mockingboard/hardware/mockingboard"
	"github.com/jetsetilly/mockingboard/hardware/preferences"
	"github.com/jetsetilly/mockingboard/hardware/via"
	"github.com/jetsetilly/mockingboard/logger"
)

// DemoError is the pattern of errors returned by the demo package.
const DemoError = "demo: %v"

// 6502 opcodes used by the player
const (
	opLDA = 0xad
	opSTA = 0x8d
)

// instruction timings in cycles
const (
	absoluteCycles = 4
	irqEntryCycles = 7
	rtiCycles      = 6

	// a JMP to itself while waiting for an interrupt
	idleCycles = 3
)

// the card is updated in slices of this many cycles
const sliceCycles = 1000

// ORB values for the sound generator bus. BC2 is wired high. the chip select
// bits of the Phasor are added by the caller
const (
	orbReset    = 0x00
	orbInactive = 0x04
	orbWrite    = 0x06
	orbLatch    = 0x07
)

// the ring buffer write cursor leads the play cursor by this fraction of the
// buffer size
const leadDivisor = 8

// Config for a new Demo.
type Config struct {
	Variant    mockingboard.Variant
	PhasorMode mockingboard.PhasorMode
	Prefs      *preferences.Preferences

	// Realtime throttles the emulation to the speed of the Apple II. otherwise
	// the emulation runs as fast as possible
	Realtime bool

	// Drain consumes the ring buffer at the rate of emulated time. use when no
	// audio device is reading from the buffer
	Drain bool

	// PAL runs the host and the card at the speed of a PAL Apple II
	PAL bool

	// FullSpeed tells the card that the host is not running in real time.
	// audio is not produced if the preferences allow it to be skipped
	FullSpeed bool
}

// output of a voice
type output struct {
	unit    int
	channel int
}

// Demo is the host machine running the music player.
type Demo struct {
	cfg Config

	host *Host
	card *mockingboard.Card
	sink *ring.Ring

	cyclesPerSecond float64

	// the VIAs used by the player and where the voices are sent
	timerUnit int
	units     []int
	outputs   [2]output
	voices    [2]voice

	started bool
	ticks   int

	// draining of the sink
	drained float64
	drain   []int16

	// realtime throttling
	wallStart   time.Time
	cyclesStart uint64
}

// NewDemo is the preferred method of initialisation for the Demo type.
func NewDemo(cfg Config) (*Demo, error) {
	if cfg.Variant == mockingboard.Empty {
		return nil, curated.Errorf(DemoError, "no card to play")
	}
	if cfg.Prefs == nil {
		cfg.Prefs = preferences.NewDefaultPreferences()
	}

	size := cfg.Prefs.RingSamples.Get().(int)
	sink, err := ring.NewRing(size, size/leadDivisor)
	if err != nil {
		return nil, curated.Errorf(DemoError, err)
	}

	d := &Demo{
		cfg:             cfg,
		host:            NewHost(),
		sink:            sink,
		cyclesPerSecond: clocks.CyclesPerSecond(clocks.NTSC),
		drain:           make([]int16, 2048),
	}
	d.host.SetFullSpeed(cfg.FullSpeed)

	d.card, err = mockingboard.NewCard(cfg.Variant, d.host, sink, cfg.Prefs)
	if err != nil {
		return nil, curated.Errorf(DemoError, err)
	}

	if cfg.PAL {
		d.cyclesPerSecond = clocks.CyclesPerSecond(clocks.PAL)
		d.card.SetCPUClock(clocks.PAL)
	}

	d.voices[0] = voice{notes: melody}
	d.voices[1] = voice{notes: bass}

	return d, nil
}

func (d *Demo) String() string {
	return fmt.Sprintf("%s tick=%d %s", d.card.Variant(), d.ticks, d.host)
}

// Card returns the card fitted to the demo host.
func (d *Demo) Card() *mockingboard.Card {
	return d.card
}

// Host returns the demo host.
func (d *Demo) Host() *Host {
	return d.host
}

// Sink returns the buffer receiving the output of the card.
func (d *Demo) Sink() *ring.Ring {
	return d.sink
}

// Ticks returns the number of timer interrupts serviced by the player.
func (d *Demo) Ticks() int {
	return d.ticks
}

// Finished returns true when the tune has finished.
func (d *Demo) Finished() bool {
	for i := range d.voices {
		if !d.voices[i].finished() {
			return false
		}
	}
	return true
}

// viaAddress returns the address of the VIA register in slot 4, as seen by
// the card in the current mode.
func (d *Demo) viaAddress(unit int, reg uint8) uint16 {
	addr := uint16(0xc400) | uint16(reg)
	if unit&0x01 == 0x01 {
		return addr | 0x80
	}
	if d.card.Variant() == mockingboard.Phasor && d.card.PhasorMode() == mockingboard.PhasorModePhasor {
		return addr | 0x10
	}
	return addr
}

// store executes STA abs.
func (d *Demo) store(addr uint16, value uint8) {
	pc := d.host.assemble(opSTA, uint8(addr), uint8(addr>>8))
	d.card.Write(pc, addr, value)
	d.host.advance(absoluteCycles)
}

// load executes LDA abs.
func (d *Demo) load(addr uint16) uint8 {
	pc := d.host.assemble(opLDA, uint8(addr), uint8(addr>>8))
	v := d.card.Read(pc, addr)
	d.host.advance(absoluteCycles)
	return v
}

// writeGenerator writes to a register of the sound generator connected to the
// unit. on the Phasor in native mode both generators of the unit are written.
func (d *Demo) writeGenerator(unit int, reg uint8, value uint8) {
	orb := d.viaAddress(unit, via.ORB)
	ora := d.viaAddress(unit, via.ORA)
	d.store(ora, reg)
	d.store(orb, orbLatch)
	d.store(orb, orbInactive)
	d.store(ora, value)
	d.store(orb, orbWrite)
	d.store(orb, orbInactive)
}

// generatorClock is the clock of the sound generators in the current mode.
func (d *Demo) generatorClock() float64 {
	if d.card.Variant() == mockingboard.Phasor && d.card.PhasorMode() == mockingboard.PhasorModePhasor {
		return d.cyclesPerSecond * 2
	}
	return d.cyclesPerSecond
}

// Start the player. This is the initialisation a program would perform
// before enabling interrupts.
func (d *Demo) Start() {
	if d.card.Variant() == mockingboard.Phasor {
		// clear the mode bits and then set the new mode in one access
		d.card.IO(0xc0c8 | uint16(d.cfg.PhasorMode&0x07))
		d.host.advance(absoluteCycles)
	}

	// echo+ mode only has the second VIA
	if d.card.Variant() == mockingboard.Phasor && d.card.PhasorMode() == mockingboard.PhasorModeEchoPlus {
		d.timerUnit = 1
		d.units = []int{1}
		d.outputs = [2]output{{unit: 1, channel: 0}, {unit: 1, channel: 1}}
	} else {
		d.timerUnit = 0
		d.units = []int{0, 1}
		d.outputs = [2]output{{unit: 0, channel: 0}, {unit: 1, channel: 0}}
	}

	for _, u := range d.units {
		d.store(d.viaAddress(u, via.DDRB), 0xff)
		d.store(d.viaAddress(u, via.DDRA), 0xff)
		d.store(d.viaAddress(u, via.ORB), orbReset)
		d.store(d.viaAddress(u, via.ORB), orbInactive)

		// tone only on channels A and B
		d.writeGenerator(u, ay8910.Enable, 0x3c)
	}

	for i := range d.voices {
		d.voices[i].channel = d.outputs[i].channel
	}

	latch := uint16(d.cyclesPerSecond/tickRate) - via.ExtraTimerCycles
	d.store(d.viaAddress(d.timerUnit, via.ACR), via.RunModeFreeRunning)
	d.store(d.viaAddress(d.timerUnit, via.IER), via.IxrSummary|via.IxrTimer1)
	d.store(d.viaAddress(d.timerUnit, via.T1CL), uint8(latch))
	d.store(d.viaAddress(d.timerUnit, via.T1CH), uint8(latch>>8))

	d.started = true
	d.wallStart = time.Now()
	d.cyclesStart = d.host.cycles

	logger.Logf(logger.Allow, "demo", "player started with %d cycle timer", latch)
}

// interrupt services the IRQ.
func (d *Demo) interrupt() {
	d.host.advance(irqEntryCycles)

	// acknowledge the timer by reading the low byte of the counter
	d.load(d.viaAddress(d.timerUnit, via.T1CL))

	d.ticks++
	clock := d.generatorClock()
	for i := range d.voices {
		for _, w := range d.voices[i].step(clock) {
			d.writeGenerator(d.outputs[i].unit, w.reg, w.value)
		}
	}

	d.host.advance(rtiCycles)
}

// Run the host for the number of cycles. The player is started if it has not
// already been started. Returns early if the context is cancelled.
func (d *Demo) Run(ctx context.Context, cycles uint64) error {
	if !d.started {
		d.Start()
	}

	end := d.host.cycles + cycles

	for d.host.cycles < end {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := d.host.cycles
		sliceEnd := start + sliceCycles
		if sliceEnd > end {
			sliceEnd = end
		}

		for d.host.cycles < sliceEnd {
			if d.host.irq {
				d.interrupt()
			} else {
				d.host.advance(idleCycles)
			}
			d.card.UpdateCycles(d.host.cycles)
		}

		d.card.PeriodicUpdate(int(d.host.cycles - start))

		if d.cfg.Drain {
			d.drainSink(d.host.cycles - start)
		}
		if d.cfg.Realtime {
			d.throttle()
		}
	}

	return nil
}

// drainSink consumes the number of frames played by an audio device in the
// time taken by the number of cycles.
func (d *Demo) drainSink(cycles uint64) {
	d.drained += float64(cycles) * clocks.SampleRate / d.cyclesPerSecond
	n := int(d.drained)
	d.drained -= float64(n)

	for n > 0 {
		frames := n
		if frames > len(d.drain)/2 {
			frames = len(d.drain) / 2
		}
		d.sink.ReadFrames(d.drain[:frames*2])
		n -= frames
	}
}

// throttle sleeps until wall time catches up with emulated time.
func (d *Demo) throttle() {
	emulated := time.Duration(float64(d.host.cycles-d.cyclesStart) / d.cyclesPerSecond * float64(time.Second))
	ahead := emulated - time.Since(d.wallStart)
	if ahead > 5*time.Millisecond {
		time.Sleep(ahead)
	}
}

// Seconds returns the number of cycles in the number of seconds.
func (d *Demo) Seconds(seconds float64) uint64 {
	return uint64(seconds * d.cyclesPerSecond)
}
