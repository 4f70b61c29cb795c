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

package cpu

import "fmt"

// AddressingMode describes how the effective address of an instruction is
// formed. Only the modes that can be used to access a memory mapped
// peripheral are listed.
type AddressingMode int

// List of supported addressing modes.
const (
	Absolute         AddressingMode = iota // abs
	AbsoluteIndexedX                       // abs,X
	AbsoluteIndexedY                       // abs,Y
	IndexedIndirect                        // (zp,X)
	IndirectIndexed                        // (zp),Y
	ZeroPageIndirect                       // (zp) 65C02 only
)

func (m AddressingMode) String() string {
	switch m {
	case Absolute:
		return "abs"
	case AbsoluteIndexedX:
		return "abs,X"
	case AbsoluteIndexedY:
		return "abs,Y"
	case IndexedIndirect:
		return "(zp,X)"
	case IndirectIndexed:
		return "(zp),Y"
	case ZeroPageIndirect:
		return "(zp)"
	}
	return "unknown addressing mode"
}

// operand length in bytes, not including the opcode.
func (m AddressingMode) operandBytes() uint16 {
	switch m {
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY:
		return 2
	}
	return 1
}

// EffectCategory categorises an instruction by the effect it has on memory.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	}
	return "unknown effect"
}

// Definition describes an instruction that accesses memory.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s %s (%d cycles)", defn.OpCode, defn.Mnemonic, defn.AddressingMode, defn.Cycles)
}

// the store instructions that can write to a peripheral. the order of the
// table is the order in which the instruction stream is tested
var writeDefinitions = []struct {
	Definition
	cmos bool
}{
	{Definition: Definition{OpCode: 0x8c, Mnemonic: "STY", Cycles: 4, AddressingMode: Absolute, Effect: Write}},
	{Definition: Definition{OpCode: 0x8d, Mnemonic: "STA", Cycles: 4, AddressingMode: Absolute, Effect: Write}},
	{Definition: Definition{OpCode: 0x8e, Mnemonic: "STX", Cycles: 4, AddressingMode: Absolute, Effect: Write}},
	{Definition: Definition{OpCode: 0x99, Mnemonic: "STA", Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write}},
	{Definition: Definition{OpCode: 0x9d, Mnemonic: "STA", Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write}},
	{Definition: Definition{OpCode: 0x81, Mnemonic: "STA", Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write}},
	{Definition: Definition{OpCode: 0x91, Mnemonic: "STA", Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write}},
	{Definition: Definition{OpCode: 0x92, Mnemonic: "STA", Cycles: 5, AddressingMode: ZeroPageIndirect, Effect: Write}, cmos: true},
	{Definition: Definition{OpCode: 0x9c, Mnemonic: "STZ", Cycles: 4, AddressingMode: Absolute, Effect: Write}, cmos: true},
	{Definition: Definition{OpCode: 0x9e, Mnemonic: "STZ", Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write}, cmos: true},
}

// mnemonics for the ALU group of instructions, indexed by the top three bits
// of the opcode
var aluMnemonics = [8]string{"ORA", "AND", "EOR", "ADC", "STA", "LDA", "CMP", "SBC"}

// absolute mode reads that are not part of the ALU group
var absoluteReads = map[uint8]string{
	0x2c: "BIT",
	0xac: "LDY",
	0xae: "LDX",
	0xcc: "CPY",
	0xec: "CPX",
}

// decodeWrite identifies the store instruction that precedes the program
// counter. The opcode of a two byte instruction is at pc-2 and the opcode of
// a three byte instruction is at pc-3.
func decodeWrite(opMinus3 uint8, opMinus2 uint8, variant Variant) (Definition, bool) {
	for _, d := range writeDefinitions {
		if d.cmos && variant != WDC65C02 {
			continue
		}
		op := opMinus2
		if d.AddressingMode.operandBytes() == 2 {
			op = opMinus3
		}
		if op == d.OpCode {
			return d.Definition, true
		}
	}
	return Definition{}, false
}

// decodeRead identifies the load, compare or ALU instruction that precedes
// the program counter. Read-modify-write instructions are not identified.
func decodeRead(opMinus3 uint8, opMinus2 uint8, variant Variant) (Definition, bool) {
	alu := aluMnemonics[opMinus2>>5]

	switch {
	case opMinus2&0x0f == 0x01 && opMinus2&0x10 == 0x00:
		return Definition{OpCode: opMinus2, Mnemonic: alu, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read}, true
	case opMinus2&0x0f == 0x01 && opMinus2&0x10 == 0x10:
		return Definition{OpCode: opMinus2, Mnemonic: alu, Cycles: 5, AddressingMode: IndirectIndexed, Effect: Read}, true
	case opMinus2&0x0f == 0x02 && opMinus2&0x10 == 0x10 && variant == WDC65C02:
		return Definition{OpCode: opMinus2, Mnemonic: alu, Cycles: 5, AddressingMode: ZeroPageIndirect, Effect: Read}, true
	}

	defn := Definition{OpCode: opMinus3, Cycles: 4, Effect: Read}
	alu = aluMnemonics[opMinus3>>5]

	if m, ok := absoluteReads[opMinus3]; ok {
		defn.Mnemonic = m
		defn.AddressingMode = Absolute
		return defn, true
	}

	switch {
	case opMinus3&0x0f == 0x0d && opMinus3&0x10 == 0x00:
		defn.Mnemonic = alu
		defn.AddressingMode = Absolute
	case opMinus3 == 0xbc:
		defn.Mnemonic = "LDY"
		defn.AddressingMode = AbsoluteIndexedX
	case opMinus3 == 0x3c && variant == WDC65C02:
		defn.Mnemonic = "BIT"
		defn.AddressingMode = AbsoluteIndexedX
	case opMinus3 == 0xbe:
		defn.Mnemonic = "LDX"
		defn.AddressingMode = AbsoluteIndexedY
	case opMinus3&0x10 == 0x10:
		defn.Mnemonic = alu
		switch opMinus3 & 0x0f {
		case 0x0d:
			defn.AddressingMode = AbsoluteIndexedX
		case 0x09:
			defn.AddressingMode = AbsoluteIndexedY
		default:
			// not a recognised instruction but the timing of an absolute
			// read is the best guess. the effective address check will
			// usually reject it
			defn.Mnemonic = "???"
			defn.AddressingMode = Absolute
		}
	default:
		return Definition{}, false
	}

	return defn, true
}
