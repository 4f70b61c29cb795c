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

	"github.com/jetsetilly/mockingboard/curated"
)

// Variant is the type of card fitted to the slots.
type Variant int

// List of valid Variant values.
const (
	Empty Variant = iota
	Mockingboard
	Phasor
)

// VariantList is a list of all possible string representations of the
// Variant type.
var VariantList = []string{"EMPTY", "MOCKINGBOARD", "PHASOR"}

func (v Variant) String() string {
	switch v {
	case Empty:
		return "EMPTY"
	case Mockingboard:
		return "MOCKINGBOARD"
	case Phasor:
		return "PHASOR"
	}
	return fmt.Sprintf("UNKNOWN (%d)", int(v))
}

// Valid returns true if the Variant is one of the listed values.
func (v Variant) Valid() bool {
	return v >= Empty && v <= Phasor
}

// ParseVariant converts a string to a Variant. The string is not case
// sensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EMPTY":
		return Empty, nil
	case "MOCKINGBOARD", "MB":
		return Mockingboard, nil
	case "PHASOR":
		return Phasor, nil
	}
	return Empty, curated.Errorf(CardError, fmt.Sprintf("unknown variant (%s)", s))
}

// PhasorMode is the operating mode of the Phasor card.
type PhasorMode uint8

// List of PhasorMode values. The mode register has three bits and any value
// can be set but only these values are meaningful.
const (
	PhasorModeMockingboard PhasorMode = 0
	PhasorModePhasor       PhasorMode = 5
	PhasorModeEchoPlus     PhasorMode = 7
)

func (m PhasorMode) String() string {
	switch m {
	case PhasorModeMockingboard:
		return "Mockingboard"
	case PhasorModePhasor:
		return "Phasor"
	case PhasorModeEchoPlus:
		return "Echo+"
	}
	return fmt.Sprintf("mode %d", uint8(m))
}

// ParsePhasorMode converts a string to a PhasorMode.
func ParsePhasorMode(s string) (PhasorMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MB", "MOCKINGBOARD":
		return PhasorModeMockingboard, nil
	case "PHASOR":
		return PhasorModePhasor, nil
	case "ECHO", "ECHO+", "ECHOPLUS":
		return PhasorModeEchoPlus, nil
	}
	return PhasorModeMockingboard, curated.Errorf(CardError, fmt.Sprintf("unknown phasor mode (%s)", s))
}
