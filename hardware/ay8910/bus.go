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

// BusState is the value of the three bus control lines, BDIR, BC2 and BC1.
type BusState uint8

// List of valid BusState values. BC2 is wired high so only INACTIVE, READ,
// WRITE and LATCH can be selected by the Mockingboard.
const (
	NOP0 BusState = iota
	NOP1
	INACTIVE
	READ
	NOP4
	NOP5
	WRITE
	LATCH
)

func (s BusState) String() string {
	switch s {
	case NOP0:
		return "NOP0"
	case NOP1:
		return "NOP1"
	case INACTIVE:
		return "INACTIVE"
	case READ:
		return "READ"
	case NOP4:
		return "NOP4"
	case NOP5:
		return "NOP5"
	case WRITE:
		return "WRITE"
	case LATCH:
		return "LATCH"
	}
	return "unknown bus state"
}

// Action is the effect of a change to the bus control lines.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionReset
	ActionRead
	ActionWrite
	ActionLatch
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionReset:
		return "reset"
	case ActionRead:
		return "read"
	case ActionWrite:
		return "write"
	case ActionLatch:
		return "latch"
	}
	return "unknown action"
}

// bits in the output register B of the 6522
const (
	orbBC1   = 0x01
	orbBDIR  = 0x02
	orbRESET = 0x04
)

// Decode the value of output register B. The previous bus state is used to
// decide whether the function selected by the control lines has an effect.
//
// A low RESET line results in ActionReset and the bus state is unchanged.
// Otherwise the next bus state is always the function selected by the control
// lines, even if the function has no effect.
func Decode(orb uint8, previous BusState) (BusState, Action) {
	if orb&orbRESET == 0x00 {
		return previous, ActionReset
	}

	var fn BusState
	if orb&orbBDIR == orbBDIR {
		fn |= 0x04
	}
	fn |= 0x02
	if orb&orbBC1 == orbBC1 {
		fn |= 0x01
	}

	// functions only work from the inactive state
	if previous != INACTIVE {
		return fn, ActionNone
	}

	switch fn {
	case READ:
		return fn, ActionRead
	case WRITE:
		return fn, ActionWrite
	case LATCH:
		return fn, ActionLatch
	}

	return fn, ActionNone
}

// Generator is the register interface of a sound generator.
type Generator interface {
	ReadRegister(reg uint8) uint8
	WriteRegister(reg uint8, value uint8)
	Reset()
}

// Port is the 6522 side of the bus. Data is output register A and Direction
// is the DDRA register. Register is the address latched by the most recent
// latch action. On the Phasor the latched address is shared by both chips
// connected to the same 6522.
type Port struct {
	Data      *uint8
	Direction uint8
	Register  *uint8

	// the Phasor in Echo+ mode can't read the sound generator. the input bits
	// of the data register read as ones
	NoReadBack bool
}

// Apply performs the action on the generator.
func (p Port) Apply(action Action, gen Generator) {
	switch action {
	case ActionReset:
		gen.Reset()
	case ActionRead:
		if p.NoReadBack {
			*p.Data = ^p.Direction
		} else {
			*p.Data = gen.ReadRegister(*p.Register) & ^p.Direction
		}
	case ActionWrite:
		gen.WriteRegister(*p.Register, *p.Data)
	case ActionLatch:
		// selecting a register above $0f puts the chip into a state where
		// data is ignored. the previously latched register remains in effect
		// for this emulation
		if *p.Data <= 0x0f {
			*p.Register = *p.Data & 0x0f
		}
	}
}

// Transact decodes the value of output register B, updates the bus state and
// applies the resulting action to the generator. Returns the action.
func (p Port) Transact(orb uint8, state *BusState, gen Generator) Action {
	next, action := Decode(orb, *state)
	*state = next
	p.Apply(action, gen)
	return action
}
