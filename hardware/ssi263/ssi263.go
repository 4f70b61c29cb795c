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

package ssi263

import (
	"fmt"
	"math"

	"github.com/jetsetilly/mockingboard/hardware/clocks"
	"github.com/jetsetilly/mockingboard/hardware/via"
	"github.com/jetsetilly/mockingboard/logger"
)

// List of SSI263 registers. The chip has three address lines. Registers five
// to seven are mirrors of the filter frequency register.
const (
	DurPhon = iota
	Inflect
	RateInf
	CttRamp
	FilFreq
)

// RegisterNames are the names of the five SSI263 registers.
var RegisterNames = [...]string{"DURPHON", "INFLECT", "RATEINF", "CTTRAMP", "FILFREQ"}

// The duration bits of the DURPHON register double as the operating mode.
// The mode is latched when the CTL bit of the CTTRAMP register goes low.
const (
	ModeIRQDisabled                   uint8 = 0x00
	ModeFrameImmediateInflection      uint8 = 0x40
	ModePhonemeImmediateInflection    uint8 = 0x80
	ModePhonemeTransitionedInflection uint8 = 0xc0

	modeMask    uint8 = 0xc0
	phonemeMask uint8 = 0x3f
	ctlBit      uint8 = 0x80
)

// longest phoneme at the slowest rate and longest duration
const maxPhonemeMsec = 128.0

// Owner is the 6522 whose handshake line is connected to the A/!R output of
// the speech chip.
type Owner interface {
	UpdateIFR(clr uint8, set uint8)
}

// Registers is the state of the SSI263 registers.
type Registers struct {
	DurPhon uint8
	Inflect uint8
	RateInf uint8
	CttRamp uint8
	FilFreq uint8

	// the operating mode latched from DURPHON
	Mode uint8
}

// Speech is a single speech chip. A Speech instance represents both the
// SSI263 and the SC-01 because a Mockingboard could be fitted with either and
// both share the same interrupt routing.
type Speech struct {
	owner Owner

	// cycles in one millisecond
	cyclesPerMsec float64

	Registers

	// chip is in power-down mode
	powerDown bool

	// phoneme in progress and the number of cycles remaining
	active    bool
	remaining int

	// the current phoneme was sent to the SC-01 rather than the SSI263
	votrax bool

	// the A/!R output is requesting a phoneme
	request bool

	// the mode of the Phasor card, see PhasorMode in the mockingboard package
	cardMode uint8

	muted  bool
	volume float64
}

// NewSpeech is the preferred method of initialisation for the Speech type.
func NewSpeech(owner Owner) *Speech {
	sp := &Speech{
		owner:         owner,
		cyclesPerMsec: clocks.CyclesPerSecond(clocks.NTSC) / 1000,
		volume:        1.0,
	}
	sp.Reset()
	return sp
}

func (sp *Speech) String() string {
	var phoneme string
	if sp.active {
		phoneme = sp.Phoneme().Phoneme
	} else {
		phoneme = "-"
	}
	return fmt.Sprintf("%s mode=%02x rate=%d phoneme=%s", RegisterNames[DurPhon], sp.Mode, sp.RateInf>>4, phoneme)
}

// Reset the speech chip. Any phoneme in progress is stopped.
func (sp *Speech) Reset() {
	sp.Registers = Registers{Mode: ModeIRQDisabled}
	sp.powerDown = false
	sp.active = false
	sp.remaining = 0
	sp.votrax = false
	sp.request = false
}

// SetClock changes the number of CPU cycles in a millisecond.
func (sp *Speech) SetClock(mhz float64) {
	sp.cyclesPerMsec = clocks.CyclesPerSecond(mhz) / 1000
}

// SetCardMode is called whenever the mode of a Phasor card changes.
func (sp *Speech) SetCardMode(mode uint8) {
	sp.cardMode = mode
}

// Mute the output of the speech chip.
func (sp *Speech) Mute() {
	sp.muted = true
}

// Unmute the output of the speech chip.
func (sp *Speech) Unmute() {
	sp.muted = false
}

// Muted returns true if the speech chip is muted.
func (sp *Speech) Muted() bool {
	return sp.muted
}

// SetVolume of the speech chip output. The value is clamped to the range 0.0
// to 1.0.
func (sp *Speech) SetVolume(v float64) {
	sp.volume = math.Max(0.0, math.Min(1.0, v))
}

// Volume returns the volume of the speech chip output.
func (sp *Speech) Volume() float64 {
	return sp.volume
}

// IsPhonemeActive returns true if a phoneme is being spoken.
func (sp *Speech) IsPhonemeActive() bool {
	return sp.active
}

// VotraxPhoneme returns true if the current or most recent phoneme was sent to
// the SC-01.
func (sp *Speech) VotraxPhoneme() bool {
	return sp.votrax
}

// SetVotraxPhoneme is used when restoring a save-state.
func (sp *Speech) SetVotraxPhoneme(votrax bool) {
	sp.votrax = votrax
}

// Phoneme returns the current or most recent phoneme.
func (sp *Speech) Phoneme() Phoneme {
	if sp.votrax {
		return VotraxPhonemes[sp.DurPhon&phonemeMask]
	}
	return SSI263Phonemes[sp.DurPhon&phonemeMask]
}

// Write a value to an SSI263 register.
func (sp *Speech) Write(reg uint8, value uint8) {
	switch reg & 0x07 {
	case DurPhon:
		sp.DurPhon = value
		if sp.powerDown {
			return
		}
		sp.votrax = false
		sp.start(sp.ssi263Duration())
	case Inflect:
		sp.Inflect = value
	case RateInf:
		sp.RateInf = value
	case CttRamp:
		wasPowerDown := sp.CttRamp&ctlBit == ctlBit
		sp.CttRamp = value
		if value&ctlBit == ctlBit {
			// power-down. speech stops
			sp.powerDown = true
			sp.stop()
		} else if wasPowerDown {
			// the falling edge of CTL latches the operating mode
			sp.powerDown = false
			sp.Mode = sp.DurPhon & modeMask
			logger.Logf(logger.Allow, "ssi263", "mode %02x", sp.Mode)
		}
	default:
		sp.FilFreq = value
	}
}

// Read returns the state of the A/!R output in bit 7. The SSI263 drives no
// other data lines.
func (sp *Speech) Read() uint8 {
	if sp.request {
		return 0x80
	}
	return 0x00
}

// Remaining returns the number of cycles before the current phoneme
// completes. Zero if no phoneme is active.
func (sp *Speech) Remaining() int {
	if !sp.active {
		return 0
	}
	return sp.remaining
}

// VotraxWrite sends a phoneme to the SC-01. Bits 7 and 6 of the value select
// the inflection, the remaining bits select the phoneme.
func (sp *Speech) VotraxWrite(value uint8) {
	sp.DurPhon = value
	sp.votrax = true
	sp.start(sp.votraxDuration())
}

func (sp *Speech) start(cycles int) {
	sp.active = true
	sp.remaining = cycles
	sp.clearRequest()
}

func (sp *Speech) stop() {
	sp.active = false
	sp.remaining = 0
}

func (sp *Speech) irqBit() uint8 {
	if sp.votrax {
		return via.IxrVotrax
	}
	return via.IxrSSI263
}

func (sp *Speech) clearRequest() {
	if !sp.request {
		return
	}
	sp.request = false
	if sp.owner != nil {
		sp.owner.UpdateIFR(sp.irqBit(), 0)
	}
}

func (sp *Speech) raiseRequest() {
	// the SSI263 can be configured not to interrupt. the SC-01 always
	// interrupts
	if !sp.votrax && sp.Mode == ModeIRQDisabled {
		return
	}
	sp.request = true
	if sp.owner != nil {
		sp.owner.UpdateIFR(0, sp.irqBit())
	}
}

// ssi263Duration returns the number of cycles for the phoneme in DURPHON. The
// slowest rate is zero and the longest duration is zero.
func (sp *Speech) ssi263Duration() int {
	rate := float64(sp.RateInf >> 4)
	dur := float64(sp.DurPhon >> 6)
	msec := maxPhonemeMsec * (16 - rate) / 16 * (4 - dur) / 4
	return int(msec * sp.cyclesPerMsec)
}

// votraxDuration returns the number of cycles for the SC-01 phoneme in DURPHON.
func (sp *Speech) votraxDuration() int {
	p := VotraxPhonemes[sp.DurPhon&phonemeMask]
	return int(float64(p.msec) * sp.cyclesPerMsec)
}

// PeriodicUpdate advances the current phoneme by the number of cycles.
func (sp *Speech) PeriodicUpdate(cycles int) {
	if !sp.active {
		return
	}

	sp.remaining -= cycles
	if sp.remaining > 0 {
		return
	}

	sp.stop()
	sp.raiseRequest()
}

// Restore the registers, for example from a save-state. No interrupts are
// raised and any phoneme in progress is stopped.
func (sp *Speech) Restore(regs Registers) {
	sp.Registers = regs
	sp.powerDown = regs.CttRamp&ctlBit == ctlBit
	sp.stop()
	sp.request = false
}
