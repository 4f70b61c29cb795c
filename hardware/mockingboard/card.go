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

package mockingboard

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mockingboard/audio/mix"
	"github.com/jetsetilly/mockingboard/audio/pacer"
	"github.com/jetsetilly/mockingboard/curated"
	"github.com/jetsetilly/mockingboard/hardware/ay8910"
	"github.com/jetsetilly/mockingboard/hardware/clocks"
	"github.com/jetsetilly/mockingboard/hardware/cpu"
	"github.com/jetsetilly/mockingboard/hardware/irq"
	"github.com/jetsetilly/mockingboard/hardware/preferences"
	"github.com/jetsetilly/mockingboard/hardware/scheduler"
	"github.com/jetsetilly/mockingboard/hardware/ssi263"
	"github.com/jetsetilly/mockingboard/hardware/via"
	"github.com/jetsetilly/mockingboard/logger"
)

// Sentinel error patterns.
const (
	CardError     = "mockingboard: %v"
	SnapshotError = "mockingboard: snapshot: %v"
)

// The slots the cards can be fitted to.
const (
	Slot4 = 4
	Slot5 = 5
)

// NumUnits is the number of units over both cards.
const NumUnits = 4

const (
	unitsPerCard = 2

	// when no VIA timer is running audio is produced at this interval
	cyclesPerAudioFrame = 1000

	noTimerDevice = -1
)

// Host is the machine the cards are fitted to.
type Host interface {
	// instruction stream and index registers. used to decode the instruction
	// accessing a register
	cpu.Memory
	cpu.Registers

	// the IRQ line of the CPU
	irq.Line

	// the cumulative number of CPU cycles executed
	Cycles() uint64

	// the emulation is running as fast as possible
	FullSpeed() bool

	// the value of the data bus when no device drives it
	FloatingBus() uint8
}

// Sink is the sound buffer that receives the mixed output of the generators.
type Sink interface {
	pacer.Sink
	SetVolume(v float64)
	Mute(muted bool)
}

// unit is a VIA and the devices connected to it.
type unit struct {
	via    *via.VIA
	speech *ssi263.Speech

	// bus state of the first and second generators. the second generator is
	// only used by the Phasor
	stateA ay8910.BusState
	stateB ay8910.BusState

	// register latched by the most recent latch action. shared by both
	// generators
	register uint8
}

// Card is the sound cards in slots 4 and 5.
type Card struct {
	variant Variant
	host    Host
	sink    Sink
	prefs   *preferences.Preferences

	units  [NumUnits]unit
	sched  *scheduler.Manager
	irq    *irq.Aggregator
	bank   *ay8910.Bank
	pacer  *pacer.Pacer
	timing *cpu.AccessTiming

	// program counter of the instruction accessing the card
	pc uint16

	// the cycle count at the most recent call to UpdateCycles()
	lastCycles uint64

	// the VIA generating the periodic timer interrupt
	timerDevice int

	cyclesThisAudioFrame int

	phasorMode PhasorMode
	clockScale int

	// clock of the CPU in Hz. the generators are clocked at a multiple of
	// this value
	baseClock float64

	muted     bool
	volume    int
	volumeMax int
}

// NewCard is the preferred method of initialisation for the Card type. The
// prefs argument can be nil, in which case the default preferences are used.
func NewCard(variant Variant, host Host, sink Sink, prefs *preferences.Preferences) (*Card, error) {
	if !variant.Valid() {
		return nil, curated.Errorf(CardError, fmt.Sprintf("unknown variant (%d)", int(variant)))
	}
	if host == nil {
		return nil, curated.Errorf(CardError, "no host")
	}
	if sink == nil {
		return nil, curated.Errorf(CardError, "no sound sink")
	}
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}

	c := &Card{
		variant:     variant,
		host:        host,
		sink:        sink,
		prefs:       prefs,
		sched:       scheduler.NewManager(),
		irq:         irq.NewAggregator(host),
		timerDevice: noTimerDevice,
		clockScale:  1,
		baseClock:   clocks.CyclesPerSecond(clocks.NTSC),
		volume:      1,
		volumeMax:   1,
	}

	cpuVariant := cpu.MOS6502
	if prefs.CPU65C02.Get().(bool) {
		cpuVariant = cpu.WDC65C02
	}
	c.timing = cpu.NewAccessTiming(host, host, cpuVariant)

	c.bank = ay8910.NewBank(host.Cycles, c.baseClock, clocks.SampleRate)

	env := via.Environment{
		Scheduler: c.sched,
		Timing:    viaEnvironment{c: c},
		IRQ:       c.irq,
		Card:      viaEnvironment{c: c},
	}

	for i := range c.units {
		label := "A"
		if i&1 == 1 {
			label = "B"
		}
		v := via.NewVIA(env, i, label)
		c.irq.Add(v)
		c.units[i].via = v
		c.units[i].speech = ssi263.NewSpeech(v)

		slot := Slot4 + i/unitsPerCard
		c.sched.Register(via.TimerID(i, 1), fmt.Sprintf("slot%d %s timer1", slot, label), c.onTimerEvent)
		c.sched.Register(via.TimerID(i, 2), fmt.Sprintf("slot%d %s timer2", slot, label), c.onTimerEvent)
	}

	c.pacer = pacer.NewPacer(c.bank, sink, host, pacer.Config{
		CPUClock:      c.baseClock,
		SampleRate:    clocks.SampleRate,
		ErrorInc:      prefs.ErrorInc.Get().(int),
		FullSpeedSkip: prefs.FullSpeedSkip.Get().(bool),
	})
	if variant == Phasor {
		c.pacer.SetAttenuation(mix.PhasorAttenuation)
	}

	c.setVolume(prefs.Volume.Get().(float64))

	c.Reset(true)

	return c, nil
}

func (c *Card) String() string {
	s := strings.Builder{}
	s.WriteString(c.variant.String())
	if c.variant == Phasor {
		s.WriteString(fmt.Sprintf(" (%s mode)", c.phasorMode))
	}
	for i := range c.units {
		s.WriteString(fmt.Sprintf("\nslot%d %s", Slot4+i/unitsPerCard, c.units[i].via.String()))
	}
	return s.String()
}

// Variant returns the type of card.
func (c *Card) Variant() Variant {
	return c.variant
}

// PhasorMode returns the current mode of the Phasor card. Always
// PhasorModeMockingboard for other variants.
func (c *Card) PhasorMode() PhasorMode {
	return c.phasorMode
}

// SetPhasorMode changes the mode of the Phasor card as though the mode had
// been selected by the emulated program. Has no effect for other variants.
func (c *Card) SetPhasorMode(mode PhasorMode) {
	if c.variant != Phasor {
		return
	}
	c.setPhasorMode(mode)
}

func (c *Card) setPhasorMode(mode PhasorMode) {
	if mode != c.phasorMode {
		logger.Logf(logger.Allow, "mockingboard", "phasor: %s mode", mode)
	}
	c.phasorMode = mode
	c.clockScale = clockScale(mode, c.clockScale)
	c.bank.SetClock(c.baseClock * float64(c.clockScale))
	for i := range c.units {
		c.units[i].speech.SetCardMode(uint8(mode))
	}
}

// SetCPUClock changes the speed of the 6502 clock, specified in MHz. For
// example, when the host switches between the NTSC and PAL machines.
func (c *Card) SetCPUClock(mhz float64) {
	c.baseClock = clocks.CyclesPerSecond(mhz)
	c.bank.SetClock(c.baseClock * float64(c.clockScale))
	c.pacer.SetCPUClock(c.baseClock)
	for i := range c.units {
		c.units[i].speech.SetClock(mhz)
	}
	logger.Logf(logger.Allow, "mockingboard", "cpu clock %.6fMHz", mhz)
}

// CPUClock returns the speed of the 6502 clock in cycles per second.
func (c *Card) CPUClock() float64 {
	return c.baseClock
}

// VIA returns the VIA of the unit. Units 0 and 1 are the units of the card in
// slot 4 and units 2 and 3 are the units of the card in slot 5.
func (c *Card) VIA(unit int) *via.VIA {
	return c.units[unit%NumUnits].via
}

// Speech returns the speech chip of the unit.
func (c *Card) Speech(unit int) *ssi263.Speech {
	return c.units[unit%NumUnits].speech
}

// Generator returns a sound generator. Generator i is the first generator of
// unit i. On the Phasor, generator i+2 is the second generator of unit i.
func (c *Card) Generator(i int) *ay8910.Chip {
	return c.bank.Chip(i)
}

// BusState returns the state of the bus between a unit and its first and
// second generators.
func (c *Card) BusState(unit int) (ay8910.BusState, ay8910.BusState) {
	u := &c.units[unit%NumUnits]
	return u.stateA, u.stateB
}

// Events returns a description of the pending timer events.
func (c *Card) Events() string {
	return c.sched.String()
}

// IRQDescription returns a description of the interrupts currently asserted
// by the VIAs. For example "A:TIMER1 B:SSI263".
func (c *Card) IRQDescription() string {
	return c.irq.Describe()
}

// SetRecorder adds a recorder that receives every block of audio sent to the
// sink.
func (c *Card) SetRecorder(r pacer.Recorder) {
	c.pacer.SetRecorder(r)
}

// Reset the card. A power cycle also clears the registers of the VIAs.
func (c *Card) Reset(powerCycle bool) {
	for i := range c.units {
		u := &c.units[i]
		u.via.Reset(powerCycle)
		c.bank.Reset(i)
		u.register = 0
		u.stateA = ay8910.INACTIVE
		u.stateB = ay8910.INACTIVE
	}

	c.timerDevice = noTimerDevice
	c.lastCycles = c.host.Cycles()
	c.sched.Reset()

	c.phasorMode = PhasorModeMockingboard
	c.clockScale = 1
	c.cyclesThisAudioFrame = 0
	c.pacer.Reset()

	for i := range c.units {
		c.units[i].speech.SetCardMode(uint8(c.phasorMode))
		c.units[i].speech.Reset()
	}

	c.bank.SetClock(c.baseClock)

	if powerCycle {
		logger.Logf(logger.Allow, "mockingboard", "%s: power cycle", c.variant)
	} else {
		logger.Logf(logger.Allow, "mockingboard", "%s: reset", c.variant)
	}
}

// TimerDevice returns the unit generating the periodic timer interrupt. The
// boolean is false if there is no such unit.
func (c *Card) TimerDevice() (int, bool) {
	return c.timerDevice, c.timerDevice != noTimerDevice
}

// IsActive returns true if the card has been accessed recently or if a speech
// chip is speaking.
func (c *Card) IsActive() bool {
	if c.variant == Empty {
		return false
	}
	if c.pacer.Active() {
		return true
	}
	for i := range c.units {
		if c.units[i].speech.IsPhonemeActive() {
			return true
		}
	}
	return false
}

// Mute the card.
func (c *Card) Mute() {
	if c.variant == Empty {
		return
	}
	c.muted = true
	c.sink.Mute(true)
	for i := range c.units {
		c.units[i].speech.Mute()
	}
}

// Unmute the card.
func (c *Card) Unmute() {
	if c.variant == Empty {
		return
	}
	c.muted = false
	c.sink.Mute(false)
	for i := range c.units {
		c.units[i].speech.Unmute()
	}
}

// Muted returns true if the card is muted.
func (c *Card) Muted() bool {
	return c.muted
}

// SetVolume of the card. The volume is v/max.
func (c *Card) SetVolume(v int, max int) {
	if max <= 0 {
		logger.Logf(logger.Allow, "mockingboard", "illegal maximum volume (%d)", max)
		return
	}
	c.volume = v
	c.volumeMax = max
	c.setVolume(float64(v) / float64(max))
}

func (c *Card) setVolume(v float64) {
	c.sink.SetVolume(v)
	for i := range c.units {
		c.units[i].speech.SetVolume(v)
	}
}

// Volume returns the value most recently set with SetVolume().
func (c *Card) Volume() int {
	return c.volume
}

// viaEnvironment connects the VIAs to the card.
type viaEnvironment struct {
	c *Card
}

// WriteORB implements the via.Card interface.
func (e viaEnvironment) WriteORB(dev int, value uint8) {
	e.c.writeORB(dev, value)
}

// SetTimerDevice implements the via.Card interface.
func (e viaEnvironment) SetTimerDevice(dev int) {
	e.c.timerDevice = dev
}

// ClearTimerDevice implements the via.Card interface.
func (e viaEnvironment) ClearTimerDevice() {
	e.c.timerDevice = noTimerDevice
}

// Accessed implements the via.Card interface.
func (e viaEnvironment) Accessed() {
	if e.c.pacer != nil {
		e.c.pacer.Accessed()
	}
}

// AccessCycles implements the via.AccessTiming interface.
func (e viaEnvironment) AccessCycles(reg uint8, write bool) int {
	return e.c.timing.CyclesConsumedByTriggeringAccess(e.c.pc, reg, write)
}
