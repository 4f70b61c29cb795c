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

package irq

import (
	"strings"
)

// Source is implemented by anything that can drive the shared IRQ line. In
// practice this is the 6522.
type Source interface {
	// IRQ returns true if the source is asserting the line. For the 6522
	// this is bit 7 of the IFR register.
	IRQ() bool

	// PendingIRQs returns the names of the interrupts responsible for the
	// assertion. Only called if IRQ() returns true.
	PendingIRQs() []string

	// Label is a short name for the source used by Describe()
	Label() string
}

// Line is the IRQ input of the host CPU.
type Line interface {
	IrqAssert()
	IrqDeassert()
}

// Aggregator is the wire-OR of every Source.
type Aggregator struct {
	line    Line
	sources []Source

	asserted bool
}

// NewAggregator is the preferred method of initialisation for the Aggregator
// type. The line argument can be nil.
func NewAggregator(line Line) *Aggregator {
	return &Aggregator{line: line}
}

// Add a source to the aggregator. The line is not recomputed.
func (agg *Aggregator) Add(src Source) {
	agg.sources = append(agg.sources, src)
}

// SetLine changes the CPU line driven by the aggregator.
func (agg *Aggregator) SetLine(line Line) {
	agg.line = line
}

// Recompute the state of the IRQ line from every source and assert or deassert
// the line accordingly. Returns the new state of the line.
//
// The line is signalled on every call, not just on change. The CPU treats
// repeated assertions as idempotent.
func (agg *Aggregator) Recompute() bool {
	agg.asserted = false
	for _, src := range agg.sources {
		if src.IRQ() {
			agg.asserted = true
			break // for loop
		}
	}

	if agg.line != nil {
		if agg.asserted {
			agg.line.IrqAssert()
		} else {
			agg.line.IrqDeassert()
		}
	}

	return agg.asserted
}

// Asserted returns the state of the line as of the most recent call to
// Recompute().
func (agg *Aggregator) Asserted() bool {
	return agg.asserted
}

// Describe returns a description of every pending interrupt. For example:
//
//	A:TIMER1 B:SSI263
//
// An empty string is returned if no source is asserting.
func (agg *Aggregator) Describe() string {
	var s strings.Builder
	for _, src := range agg.sources {
		if !src.IRQ() {
			continue // for loop
		}
		for _, p := range src.PendingIRQs() {
			if s.Len() > 0 {
				s.WriteRune(' ')
			}
			s.WriteString(src.Label())
			s.WriteRune(':')
			s.WriteString(p)
		}
	}
	return s.String()
}
