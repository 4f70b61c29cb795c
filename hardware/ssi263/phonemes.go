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

import "fmt"

// Phoneme describes a single sound that can be produced by a speech chip.
type Phoneme struct {
	Code    uint8
	Phoneme string
	Example string

	// nominal duration of the phoneme in milliseconds. zero for the SSI263
	// because the duration depends on the rate and duration registers
	msec int
}

func (p Phoneme) String() string {
	return p.Phoneme
}

// SSI263Phonemes is the list of SSI263 phonemes indexed by the phoneme code.
var SSI263Phonemes [64]Phoneme

// VotraxPhonemes is the list of SC-01 phonemes indexed by the phoneme code.
var VotraxPhonemes [64]Phoneme

func init() {
	for _, p := range ssi263Table {
		if SSI263Phonemes[p.Code].Phoneme != "" {
			panic(fmt.Sprintf("ssi263 phoneme table is malformed: %d already used", p.Code))
		}
		SSI263Phonemes[p.Code] = p
	}
	for _, p := range votraxTable {
		if VotraxPhonemes[p.Code].Phoneme != "" {
			panic(fmt.Sprintf("votrax phoneme table is malformed: %d already used", p.Code))
		}
		VotraxPhonemes[p.Code] = p
	}
}

var ssi263Table = [...]Phoneme{
	{0x00, "PA", "(pause)", 0},
	{0x01, "E", "MEET", 0},
	{0x02, "E1", "BENT", 0},
	{0x03, "Y", "BEFORE", 0},
	{0x04, "YI", "YEAR", 0},
	{0x05, "AY", "PLEASE", 0},
	{0x06, "IE", "ANY", 0},
	{0x07, "I", "SIX", 0},
	{0x08, "A", "MADE", 0},
	{0x09, "AI", "CARE", 0},
	{0x0a, "EH", "NEST", 0},
	{0x0b, "EH1", "BELT", 0},
	{0x0c, "AE", "DAD", 0},
	{0x0d, "AE1", "AFTER", 0},
	{0x0e, "AH", "GOT", 0},
	{0x0f, "AH1", "FATHER", 0},
	{0x10, "AW", "OFFICE", 0},
	{0x11, "O", "STORE", 0},
	{0x12, "OU", "BOAT", 0},
	{0x13, "OO", "LOOK", 0},
	{0x14, "IU", "YOU", 0},
	{0x15, "IU1", "COULD", 0},
	{0x16, "U", "TUNE", 0},
	{0x17, "U1", "CARTOON", 0},
	{0x18, "UH", "WONDER", 0},
	{0x19, "UH1", "LOVE", 0},
	{0x1a, "UH2", "WHAT", 0},
	{0x1b, "UH3", "NUT", 0},
	{0x1c, "ER", "BIRD", 0},
	{0x1d, "R", "ROOF", 0},
	{0x1e, "R1", "RUG", 0},
	{0x1f, "R2", "MUTTER", 0},
	{0x20, "L", "LIFT", 0},
	{0x21, "L1", "PLAY", 0},
	{0x22, "LF", "FALL", 0},
	{0x23, "W", "WATER", 0},
	{0x24, "B", "BAG", 0},
	{0x25, "D", "PAID", 0},
	{0x26, "KV", "TAG", 0},
	{0x27, "P", "PEN", 0},
	{0x28, "T", "TART", 0},
	{0x29, "K", "KIT", 0},
	{0x2a, "HV", "(hold vocal)", 0},
	{0x2b, "HVC", "(hold vocal closure)", 0},
	{0x2c, "HF", "HEART", 0},
	{0x2d, "HFC", "(hold frication closure)", 0},
	{0x2e, "HN", "(hold nasal)", 0},
	{0x2f, "Z", "ZERO", 0},
	{0x30, "S", "SAME", 0},
	{0x31, "J", "MEASURE", 0},
	{0x32, "SCH", "SHIP", 0},
	{0x33, "V", "VERY", 0},
	{0x34, "F", "FOUR", 0},
	{0x35, "THV", "THERE", 0},
	{0x36, "TH", "WITH", 0},
	{0x37, "M", "MORE", 0},
	{0x38, "N", "NINE", 0},
	{0x39, "NG", "RANG", 0},
	{0x3a, ":A", "MARCHEN", 0},
	{0x3b, ":OH", "LOWE", 0},
	{0x3c, ":U", "FUNF", 0},
	{0x3d, ":UH", "MENU", 0},
	{0x3e, "E2", "BITTE", 0},
	{0x3f, "LB", "LUBE", 0},
}

var votraxTable = [...]Phoneme{
	{0x00, "EH3", "JACKET", 59},
	{0x01, "EH2", "ENLIST", 71},
	{0x02, "EH1", "HEAVY", 121},
	{0x03, "PA0", "(pause)", 47},
	{0x04, "DT", "BUTTER", 47},
	{0x05, "A1", "MADE", 71},
	{0x06, "A2", "MADE", 103},
	{0x07, "ZH", "AZURE", 90},
	{0x08, "AH2", "HONEST", 71},
	{0x09, "I3", "INHIBIT", 55},
	{0x0a, "I2", "INHIBIT", 80},
	{0x0b, "I1", "INHIBIT", 121},
	{0x0c, "M", "MAT", 103},
	{0x0d, "N", "SUN", 80},
	{0x0e, "B", "BAG", 71},
	{0x0f, "V", "VAN", 71},
	{0x10, "CH", "CHIP", 71},
	{0x11, "SH", "SHOP", 121},
	{0x12, "Z", "ZOO", 71},
	{0x13, "AW1", "LAWFUL", 146},
	{0x14, "NG", "THING", 121},
	{0x15, "AH1", "FATHER", 146},
	{0x16, "OO1", "LOOKING", 103},
	{0x17, "OO", "BOOK", 185},
	{0x18, "L", "LAND", 103},
	{0x19, "K", "TRICK", 80},
	{0x1a, "J", "JUDGE", 47},
	{0x1b, "H", "HELLO", 71},
	{0x1c, "G", "GET", 71},
	{0x1d, "F", "FAST", 103},
	{0x1e, "D", "PAID", 55},
	{0x1f, "S", "PASS", 90},
	{0x20, "A", "DAY", 185},
	{0x21, "AY", "DAY", 65},
	{0x22, "Y1", "YARD", 80},
	{0x23, "UH3", "MISSION", 47},
	{0x24, "AH", "MOP", 250},
	{0x25, "P", "PAST", 103},
	{0x26, "O", "COLD", 185},
	{0x27, "I", "PIN", 185},
	{0x28, "U", "MOVE", 185},
	{0x29, "Y", "ANY", 103},
	{0x2a, "T", "TAP", 71},
	{0x2b, "R", "RED", 90},
	{0x2c, "E", "MEET", 185},
	{0x2d, "W", "WIN", 80},
	{0x2e, "AE", "DAD", 185},
	{0x2f, "AE1", "AFTER", 103},
	{0x30, "AW2", "SALTY", 90},
	{0x31, "UH2", "ABOUT", 71},
	{0x32, "UH1", "UNCLE", 103},
	{0x33, "UH", "CUP", 185},
	{0x34, "O2", "FOR", 80},
	{0x35, "O1", "ABOARD", 121},
	{0x36, "IU", "YOU", 59},
	{0x37, "U1", "YOU", 90},
	{0x38, "THV", "THE", 80},
	{0x39, "TH", "THIN", 71},
	{0x3a, "ER", "BIRD", 146},
	{0x3b, "EH", "GET", 185},
	{0x3c, "E1", "BE", 121},
	{0x3d, "AW", "CALL", 250},
	{0x3e, "PA1", "(pause)", 185},
	{0x3f, "STOP", "(stop)", 47},
}
