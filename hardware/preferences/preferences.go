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

// Package preferences collates the preference values used by the card and by
// the audio pacer.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mockingboard/curated"
	"github.com/jetsetilly/mockingboard/paths"
	"github.com/jetsetilly/mockingboard/prefs"
)

// Card variants accepted by the Variant preference.
const (
	VariantMockingboard = "MOCKINGBOARD"
	VariantPhasor       = "PHASOR"
	VariantEmpty        = "EMPTY"
)

// Preferences defines and collates all the preference values used by the
// card.
type Preferences struct {
	dsk *prefs.Disk

	// the card fitted when no card is specified on the command line
	Variant prefs.String

	// output volume of the sink and speech chips. 0.0 to 1.0
	Volume prefs.Float

	// the number of samples added to or removed from a block when the sink
	// is running short or running long
	ErrorInc prefs.Int

	// do not produce audio when the host is running at full speed
	FullSpeedSkip prefs.Bool

	// capacity of the ring buffer sink in stereo frames
	RingSamples prefs.Int

	// the CPU is a 65C02 rather than a 6502. affects instruction timing
	// and the false-read quirk
	CPU65C02 prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("variant=%s volume=%s errorinc=%s", p.Variant.String(), p.Volume.String(), p.ErrorInc.String())
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but with an explicit path to
// the preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := NewDefaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("mockingboard.variant", &p.Variant)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mockingboard.volume", &p.Volume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mockingboard.pacer.errorinc", &p.ErrorInc)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mockingboard.pacer.fullspeedskip", &p.FullSpeedSkip)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mockingboard.ring.samples", &p.RingSamples)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mockingboard.cpu.65c02", &p.CPU65C02)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// NewDefaultPreferences returns preferences with default values that are not
// backed by a file. Load() and Save() are no-ops.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}

	p.Variant.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case VariantMockingboard, VariantPhasor, VariantEmpty:
			return nil
		}
		return fmt.Errorf("unknown card variant (%v)", v)
	})
	p.RingSamples.SetLimits(1024, 1<<20)
	p.ErrorInc.SetLimits(0, 1000)

	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Variant.Set(VariantMockingboard)
	_ = p.Volume.Set(1.0)
	_ = p.ErrorInc.Set(20)
	_ = p.FullSpeedSkip.Set(true)
	_ = p.RingSamples.Set(16384)
	_ = p.CPU65C02.Set(false)
}

// VariantName returns the value of the Variant preference normalised to
// upper case.
func (p *Preferences) VariantName() string {
	return strings.ToUpper(p.Variant.String())
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
