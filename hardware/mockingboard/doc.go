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

// Package mockingboard emulates the Mockingboard C and Phasor sound cards of
// the Apple II.
//
// A Card represents the cards in slots 4 and 5. Each card has two units and
// each unit is a 6522 VIA, the sound generator connected to the ports of the
// VIA and a speech chip. The Phasor is fitted to slot 4 only but drives the
// sound generators of both slots: the second generator of a Phasor unit is the
// generator that would belong to the same unit of the card in slot 5.
//
// The host calls Read() and Write() for accesses to the $Cn00-$CnFF range of
// either slot, IO() for accesses to the device select range of the Phasor
// ($C0C0-$C0CF for slot 4), UpdateCycles() whenever the CPU has executed
// instructions and PeriodicUpdate() at regular intervals.
//
// Interrupts from all four VIAs are combined and presented to the IRQ line of
// the host. Audio is produced by the pacer whenever timer 1 of a VIA
// underflows, or every 1000 cycles if no VIA timer is running.
package mockingboard
