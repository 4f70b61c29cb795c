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

package via

import "fmt"

// List of register selectors.
const (
	ORB = iota
	ORA
	DDRB
	DDRA
	T1CL
	T1CH
	T1LL
	T1LH
	T2CL
	T2CH
	SR
	ACR
	PCR
	IFR
	IER
	ORANoHS

	NumRegisters
)

// RegisterNames are the names of each register, indexed by register selector.
var RegisterNames = [NumRegisters]string{
	"ORB", "ORA", "DDRB", "DDRA",
	"T1C_L", "T1C_H", "T1L_L", "T1L_H",
	"T2C_L", "T2C_H", "SR", "ACR",
	"PCR", "IFR", "IER", "ORA_NO_HS",
}

// Bits in the IFR and IER registers.
const (
	// CA1 is connected to the A/!R output of the SSI263
	IxrSSI263 uint8 = 0x02

	// CB1 is connected to the A/!R output of the SC-01
	IxrVotrax uint8 = 0x10

	IxrTimer2 uint8 = 0x20
	IxrTimer1 uint8 = 0x40

	// the summary bit of the IFR. the IER equivalent is the set/clear bit
	IxrSummary uint8 = 0x80
)

// RunModeFreeRunning is the ACR bit that selects free-running mode for timer
// 1. When the bit is clear timer 1 is in one-shot mode.
const RunModeFreeRunning uint8 = 0x40

// ExtraTimerCycles is added to the latch value to get the timer period.
const ExtraTimerCycles = 2

// Registers is the register file of the 6522. The fields are exported so that
// the state of the VIA can be saved and restored.
type Registers struct {
	ORB  uint8
	ORA  uint8
	DDRB uint8
	DDRA uint8

	Timer1Counter uint16
	Timer1Latch   uint16
	Timer2Counter uint16

	// the real 6522 has no latch for the high byte of timer 2 but it's useful
	// to record it anyway
	Timer2Latch uint16

	SerialShift uint8
	ACR         uint8
	PCR         uint8
	IFR         uint8
	IER         uint8

	// one cycle delay between the timer reaching -1 and the interrupt flag
	// being set. only ever zero or one
	Timer1IrqDelay int
	Timer2IrqDelay int
}

func (r Registers) String() string {
	return fmt.Sprintf("ORB=%02x ORA=%02x DDRB=%02x DDRA=%02x T1C=%04x T1L=%04x T2C=%04x T2L=%04x ACR=%02x PCR=%02x IFR=%02x IER=%02x",
		r.ORB, r.ORA, r.DDRB, r.DDRA,
		r.Timer1Counter, r.Timer1Latch,
		r.Timer2Counter, r.Timer2Latch,
		r.ACR, r.PCR, r.IFR, r.IER,
	)
}

// powerOn returns the register file as it is after a power cycle.
func powerOn() Registers {
	// timer 1 latch is $ffff. a small value (less than about $0007) causes the
	// detection routines in many programs to fail
	return Registers{Timer1Latch: 0xffff}
}
