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
	"io"

	"github.com/jetsetilly/mockingboard/curated"
	"github.com/jetsetilly/mockingboard/hardware/ay8910"
	"github.com/jetsetilly/mockingboard/hardware/ssi263"
	"github.com/jetsetilly/mockingboard/hardware/via"
	"github.com/jetsetilly/mockingboard/logger"
	"gopkg.in/yaml.v3"
)

// SnapshotVersion is the version of the unit state written by SaveSnapshot().
// Versions 1 to SnapshotVersion can be loaded.
const SnapshotVersion = 7

// the card names used in the snapshot
const (
	mockingboardCardName = "Mockingboard C"
	phasorCardName       = "Phasor"
)

// hex values are written in the form "0x00"
type hex8 uint8
type hex16 uint16
type hex4 uint8

func hexNode(format string, v any) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf(format, v)}
}

func (h hex8) MarshalYAML() (any, error) {
	return hexNode("0x%02X", uint8(h)), nil
}

func (h hex16) MarshalYAML() (any, error) {
	return hexNode("0x%04X", uint16(h)), nil
}

func (h hex4) MarshalYAML() (any, error) {
	return hexNode("0x%01X", uint8(h)), nil
}

type viaState struct {
	ORB           hex8  `yaml:"ORB"`
	ORA           hex8  `yaml:"ORA"`
	DDRB          hex8  `yaml:"DDRB"`
	DDRA          hex8  `yaml:"DDRA"`
	Timer1Counter hex16 `yaml:"Timer1 Counter"`
	Timer1Latch   hex16 `yaml:"Timer1 Latch"`
	Timer1Delay   int   `yaml:"Timer1 IRQ Delay"`
	Timer2Counter hex16 `yaml:"Timer2 Counter"`
	Timer2Latch   hex16 `yaml:"Timer2 Latch"`
	Timer2Delay   int   `yaml:"Timer2 IRQ Delay"`
	SerialShift   hex8  `yaml:"Serial Shift"`
	ACR           hex8  `yaml:"ACR"`
	PCR           hex8  `yaml:"PCR"`
	IFR           hex8  `yaml:"IFR"`
	IER           hex8  `yaml:"IER"`
}

type generatorState struct {
	Registers []hex8 `yaml:"Registers,flow"`
}

type speechState struct {
	DurPhon       hex8 `yaml:"DURPHON"`
	Inflect       hex8 `yaml:"INFLECT"`
	RateInf       hex8 `yaml:"RATEINF"`
	CttRamp       hex8 `yaml:"CTTRAMP"`
	FilFreq       hex8 `yaml:"FILFREQ"`
	Mode          hex8 `yaml:"Current Mode"`
	ActivePhoneme bool `yaml:"Active Phoneme"`
}

type unitState struct {
	VIA           viaState        `yaml:"SY6522"`
	Generator     *generatorState `yaml:"AY8910,omitempty"`
	GeneratorA    *generatorState `yaml:"AY8910-A,omitempty"`
	GeneratorB    *generatorState `yaml:"AY8910-B,omitempty"`
	Speech        speechState     `yaml:"SSI263"`
	State         hex4            `yaml:"Unit State"`
	StateB        *hex4           `yaml:"Unit State-B,omitempty"`
	Register      hex4            `yaml:"AY Current Register"`
	Timer1Pending bool            `yaml:"Timer1 IRQ Pending"`
	Timer2Pending bool            `yaml:"Timer2 IRQ Pending"`
	SpeechPending bool            `yaml:"Speech IRQ Pending"`
	Timer1Active  bool            `yaml:"Timer1 Active"`
	Timer2Active  bool            `yaml:"Timer2 Active"`
}

type cardState struct {
	Mode   *int      `yaml:"Mode,omitempty"`
	Votrax bool      `yaml:"Votrax Phoneme"`
	Unit0  unitState `yaml:"Unit0"`
	Unit1  unitState `yaml:"Unit1"`
}

type snapshot struct {
	Card    string    `yaml:"Card"`
	Slot    int       `yaml:"Slot"`
	Version int       `yaml:"Version"`
	State   cardState `yaml:"State"`
}

func (c *Card) cardName() string {
	if c.variant == Phasor {
		return phasorCardName
	}
	return mockingboardCardName
}

// checkSlot returns the index of the first unit of the card in the slot.
func (c *Card) checkSlot(slot int) (int, error) {
	switch c.variant {
	case Empty:
		return 0, curated.Errorf(SnapshotError, "no card fitted")
	case Phasor:
		if slot != Slot4 {
			return 0, curated.Errorf(SnapshotError, fmt.Sprintf("phasor is not fitted to slot %d", slot))
		}
	default:
		if slot != Slot4 && slot != Slot5 {
			return 0, curated.Errorf(SnapshotError, fmt.Sprintf("no card in slot %d", slot))
		}
	}
	return (slot - Slot4) * unitsPerCard, nil
}

func generatorRegisters(ch *ay8910.Chip) *generatorState {
	regs := ch.Registers()
	g := &generatorState{Registers: make([]hex8, len(regs))}
	for i, r := range regs {
		g.Registers[i] = hex8(r)
	}
	return g
}

// SaveSnapshot writes the state of the card in the slot as a YAML document.
func (c *Card) SaveSnapshot(w io.Writer, slot int) error {
	base, err := c.checkSlot(slot)
	if err != nil {
		return err
	}

	c.UpdateCycles(c.host.Cycles())

	snap := snapshot{
		Card:    c.cardName(),
		Slot:    slot,
		Version: SnapshotVersion,
	}

	if c.variant == Phasor {
		mode := int(c.phasorMode)
		snap.State.Mode = &mode
	}
	snap.State.Votrax = c.units[base].speech.VotraxPhoneme()

	for i, us := range []*unitState{&snap.State.Unit0, &snap.State.Unit1} {
		dev := base + i
		u := &c.units[dev]
		r := u.via.Registers

		us.VIA = viaState{
			ORB:           hex8(r.ORB),
			ORA:           hex8(r.ORA),
			DDRB:          hex8(r.DDRB),
			DDRA:          hex8(r.DDRA),
			Timer1Counter: hex16(r.Timer1Counter),
			Timer1Latch:   hex16(r.Timer1Latch),
			Timer1Delay:   r.Timer1IrqDelay,
			Timer2Counter: hex16(r.Timer2Counter),
			Timer2Latch:   hex16(r.Timer2Latch),
			Timer2Delay:   r.Timer2IrqDelay,
			SerialShift:   hex8(r.SerialShift),
			ACR:           hex8(r.ACR),
			PCR:           hex8(r.PCR),
			IFR:           hex8(r.IFR),
			IER:           hex8(r.IER),
		}

		if c.variant == Phasor {
			us.GeneratorA = generatorRegisters(c.bank.Chip(dev))
			us.GeneratorB = generatorRegisters(c.bank.Chip(dev + 2))
			stateB := hex4(u.stateB)
			us.StateB = &stateB
		} else {
			us.Generator = generatorRegisters(c.bank.Chip(dev))
		}

		sp := u.speech.Registers
		us.Speech = speechState{
			DurPhon:       hex8(sp.DurPhon),
			Inflect:       hex8(sp.Inflect),
			RateInf:       hex8(sp.RateInf),
			CttRamp:       hex8(sp.CttRamp),
			FilFreq:       hex8(sp.FilFreq),
			Mode:          hex8(sp.Mode),
			ActivePhoneme: u.speech.IsPhonemeActive(),
		}

		us.State = hex4(u.stateA)
		us.Register = hex4(u.register)
		us.Timer1Active = u.via.Timer1Active()
		us.Timer2Active = u.via.Timer2Active()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&snap); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(SnapshotError, err)
	}

	return nil
}

// the unit state after it has been read from a snapshot but before it has
// been applied to the card
type stagedUnit struct {
	regs         via.Registers
	timer1Active bool
	timer2Active bool
	genA         [ay8910.NumRegisters]uint8
	genB         [ay8910.NumRegisters]uint8
	speech       ssi263.Registers
	stateA       ay8910.BusState
	stateB       ay8910.BusState
	register     uint8
}

type staged struct {
	version int
	mode    PhasorMode
	votrax  bool
	units   [unitsPerCard]stagedUnit
}

// yamlMap is a mapping read from the snapshot. every lookup of a missing key
// is an error
type yamlMap struct {
	path string
	m    map[string]any
}

func (y yamlMap) value(key string) (any, error) {
	v, ok := y.m[key]
	if !ok {
		return nil, curated.Errorf(SnapshotError, fmt.Sprintf("missing key: %s%s", y.path, key))
	}
	return v, nil
}

func (y yamlMap) has(key string) bool {
	_, ok := y.m[key]
	return ok
}

func (y yamlMap) sub(key string) (yamlMap, error) {
	v, err := y.value(key)
	if err != nil {
		return yamlMap{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return yamlMap{}, curated.Errorf(SnapshotError, fmt.Sprintf("not a mapping: %s%s", y.path, key))
	}
	return yamlMap{path: fmt.Sprintf("%s%s.", y.path, key), m: m}, nil
}

func (y yamlMap) getUint(key string, max uint64) (uint64, error) {
	v, err := y.value(key)
	if err != nil {
		return 0, err
	}

	var n uint64
	switch v := v.(type) {
	case int:
		if v < 0 {
			return 0, curated.Errorf(SnapshotError, fmt.Sprintf("negative value: %s%s", y.path, key))
		}
		n = uint64(v)
	case int64:
		if v < 0 {
			return 0, curated.Errorf(SnapshotError, fmt.Sprintf("negative value: %s%s", y.path, key))
		}
		n = uint64(v)
	case uint64:
		n = v
	default:
		return 0, curated.Errorf(SnapshotError, fmt.Sprintf("not an integer: %s%s", y.path, key))
	}

	if n > max {
		return 0, curated.Errorf(SnapshotError, fmt.Sprintf("value out of range: %s%s (%#x)", y.path, key, n))
	}

	return n, nil
}

func (y yamlMap) getUint8(key string) (uint8, error) {
	n, err := y.getUint(key, 0xff)
	return uint8(n), err
}

func (y yamlMap) getUint16(key string) (uint16, error) {
	n, err := y.getUint(key, 0xffff)
	return uint16(n), err
}

func (y yamlMap) getBool(key string) (bool, error) {
	v, err := y.value(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, curated.Errorf(SnapshotError, fmt.Sprintf("not a boolean: %s%s", y.path, key))
	}
	return b, nil
}

func (y yamlMap) getString(key string) (string, error) {
	v, err := y.value(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", curated.Errorf(SnapshotError, fmt.Sprintf("not a string: %s%s", y.path, key))
	}
	return s, nil
}

func loadVIA(y yamlMap, version int) (via.Registers, error) {
	var r via.Registers
	var err error

	u8 := func(key string, dst *uint8) {
		if err == nil {
			*dst, err = y.getUint8(key)
		}
	}
	u16 := func(key string, dst *uint16) {
		if err == nil {
			*dst, err = y.getUint16(key)
		}
	}
	delay := func(key string, dst *int) {
		if err == nil {
			var n uint64
			n, err = y.getUint(key, 1)
			*dst = int(n)
		}
	}

	u8("ORB", &r.ORB)
	u8("ORA", &r.ORA)
	u8("DDRB", &r.DDRB)
	u8("DDRA", &r.DDRA)
	u16("Timer1 Counter", &r.Timer1Counter)
	u16("Timer1 Latch", &r.Timer1Latch)
	u16("Timer2 Counter", &r.Timer2Counter)
	u16("Timer2 Latch", &r.Timer2Latch)
	if version >= 4 {
		delay("Timer1 IRQ Delay", &r.Timer1IrqDelay)
		delay("Timer2 IRQ Delay", &r.Timer2IrqDelay)
	}
	u8("Serial Shift", &r.SerialShift)
	u8("ACR", &r.ACR)
	u8("PCR", &r.PCR)
	u8("IFR", &r.IFR)
	u8("IER", &r.IER)

	if err != nil {
		return via.Registers{}, err
	}

	// older snapshots could record a latch of zero, which breaks the
	// detection routines of many programs
	if version < 7 && r.Timer1Latch == 0 {
		r.Timer1Latch = 0xffff
	}

	return r, nil
}

func loadGenerator(y yamlMap, key string) ([ay8910.NumRegisters]uint8, error) {
	var regs [ay8910.NumRegisters]uint8

	g, err := y.sub(key)
	if err != nil {
		return regs, err
	}

	v, err := g.value("Registers")
	if err != nil {
		return regs, err
	}
	l, ok := v.([]any)
	if !ok || len(l) != ay8910.NumRegisters {
		return regs, curated.Errorf(SnapshotError, fmt.Sprintf("%sRegisters must be a list of %d values", g.path, ay8910.NumRegisters))
	}

	for i, e := range l {
		n, ok := e.(int)
		if !ok || n < 0 || n > 0xff {
			return regs, curated.Errorf(SnapshotError, fmt.Sprintf("illegal register value: %sRegisters[%d]", g.path, i))
		}
		regs[i] = uint8(n)
	}

	return regs, nil
}

func loadSpeech(y yamlMap, version int) (ssi263.Registers, error) {
	var r ssi263.Registers
	var err error

	u8 := func(key string, dst *uint8) {
		if err == nil {
			*dst, err = y.getUint8(key)
		}
	}

	u8("DURPHON", &r.DurPhon)
	u8("INFLECT", &r.Inflect)
	u8("RATEINF", &r.RateInf)
	u8("CTTRAMP", &r.CttRamp)
	u8("FILFREQ", &r.FilFreq)
	u8("Current Mode", &r.Mode)

	// the phoneme in progress is not resumed
	if err == nil && version >= 7 {
		_, err = y.getBool("Active Phoneme")
	}

	return r, err
}

func (c *Card) loadUnit(y yamlMap, version int) (stagedUnit, error) {
	var su stagedUnit
	var err error

	v, err := y.sub("SY6522")
	if err != nil {
		return su, err
	}
	su.regs, err = loadVIA(v, version)
	if err != nil {
		return su, err
	}

	if c.variant == Phasor {
		if su.genA, err = loadGenerator(y, "AY8910-A"); err != nil {
			return su, err
		}
		if su.genB, err = loadGenerator(y, "AY8910-B"); err != nil {
			return su, err
		}
	} else {
		if su.genA, err = loadGenerator(y, "AY8910"); err != nil {
			return su, err
		}
	}

	sp, err := y.sub("SSI263")
	if err != nil {
		return su, err
	}
	if su.speech, err = loadSpeech(sp, version); err != nil {
		return su, err
	}

	su.stateA = ay8910.INACTIVE
	su.stateB = ay8910.INACTIVE

	if version >= 3 {
		n, err := y.getUint8("Unit State")
		if err != nil {
			return su, err
		}
		su.stateA = ay8910.BusState(n & 0x07)
	}

	if version >= 5 && c.variant == Phasor {
		n, err := y.getUint8("Unit State-B")
		if err != nil {
			return su, err
		}
		su.stateB = ay8910.BusState(n & 0x07)
	}

	if su.register, err = y.getUint8("AY Current Register"); err != nil {
		return su, err
	}

	// interrupt state is recovered from the IFR
	for _, key := range []string{"Timer1 IRQ Pending", "Timer2 IRQ Pending", "Speech IRQ Pending"} {
		if _, err := y.getBool(key); err != nil {
			return su, err
		}
	}

	if version >= 2 {
		if su.timer1Active, err = y.getBool("Timer1 Active"); err != nil {
			return su, err
		}
		if su.timer2Active, err = y.getBool("Timer2 Active"); err != nil {
			return su, err
		}
	}

	return su, nil
}

func (c *Card) loadSnapshot(doc map[string]any, slot int) (staged, error) {
	var st staged

	y := yamlMap{m: doc}

	name, err := y.getString("Card")
	if err != nil {
		return st, err
	}
	if name != c.cardName() {
		return st, curated.Errorf(SnapshotError, fmt.Sprintf("snapshot is for a %s card", name))
	}

	if y.has("Slot") {
		n, err := y.getUint("Slot", 7)
		if err != nil {
			return st, err
		}
		if int(n) != slot {
			logger.Logf(logger.Allow, "mockingboard", "snapshot: loading state from slot %d into slot %d", n, slot)
		}
	}

	version, err := y.getUint("Version", 0xff)
	if err != nil {
		return st, err
	}
	if version < 1 || version > SnapshotVersion {
		return st, curated.Errorf(SnapshotError, fmt.Sprintf("unsupported version (%d)", version))
	}
	st.version = int(version)

	state, err := y.sub("State")
	if err != nil {
		return st, err
	}

	if c.variant == Phasor {
		mode, err := state.getUint8("Mode")
		if err != nil {
			return st, err
		}
		if st.version < 6 {
			if _, err := state.getUint("Clock Scale Factor", 0xff); err != nil {
				return st, err
			}
			if mode == 0 {
				st.mode = PhasorModeMockingboard
			} else {
				st.mode = PhasorModePhasor
			}
		} else {
			st.mode = PhasorMode(mode)
		}
	}

	if st.version >= 6 {
		if st.votrax, err = state.getBool("Votrax Phoneme"); err != nil {
			return st, err
		}
	}

	for i := range st.units {
		u, err := state.sub(fmt.Sprintf("Unit%d", i))
		if err != nil {
			return st, err
		}
		if st.units[i], err = c.loadUnit(u, st.version); err != nil {
			return st, err
		}
	}

	return st, nil
}

// LoadSnapshot restores the state of the card in the slot from a YAML
// document created by SaveSnapshot(). The card is unchanged if the document
// cannot be loaded.
func (c *Card) LoadSnapshot(r io.Reader, slot int) error {
	base, err := c.checkSlot(slot)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return curated.Errorf(SnapshotError, err)
	}

	st, err := c.loadSnapshot(doc, slot)
	if err != nil {
		return err
	}

	c.UpdateCycles(c.host.Cycles())
	c.bank.SetCycles()

	for i := range st.units {
		dev := base + i
		c.sched.Remove(via.TimerID(dev, 1))
		c.sched.Remove(via.TimerID(dev, 2))
		if c.timerDevice == dev {
			c.timerDevice = noTimerDevice
		}
	}

	if c.variant == Phasor {
		c.setPhasorMode(st.mode)
	}

	for i, su := range st.units {
		dev := base + i
		u := &c.units[dev]

		u.via.Restore(su.regs, su.timer1Active, su.timer2Active)

		c.bank.Chip(dev).Restore(su.genA)
		if c.variant == Phasor {
			c.bank.Chip(dev + 2).Restore(su.genB)
		}

		u.speech.Restore(su.speech)
		u.stateA = su.stateA
		u.stateB = su.stateB
		u.register = su.register
	}
	c.units[base].speech.SetVotraxPhoneme(st.votrax)

	for i := range st.units {
		c.units[base+i].via.Resume(st.version == 1)
	}

	c.bank.SetClock(c.baseClock * float64(c.clockScale))

	logger.Logf(logger.Allow, "mockingboard", "snapshot: loaded version %d into slot %d", st.version, slot)

	return nil
}
