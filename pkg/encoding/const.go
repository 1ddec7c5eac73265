// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.


package encoding

const (
	WORD_BITS    = 16
	ADDRESS_BITS = 15

	// Largest value an address instruction can load
	MAX_ADDRESS uint16 = (1 << ADDRESS_BITS) - 1
)

const (
	PREFIX_ADDRESS = "0"
	PREFIX_COMPUTE = "111"

	NO_DEST = "000"
	NO_JUMP = "000"
)

const (
	FIELD_COMP Field = "comp"
	FIELD_DEST Field = "dest"
	FIELD_JUMP Field = "jump"
)

// Computation codes, a c1 c2 c3 c4 c5 c6. The a bit selects M over A as the
// ALU's second operand.
var CompTable = map[string]uint16{
	"0":   0b0_101010,
	"1":   0b0_111111,
	"-1":  0b0_111010,
	"D":   0b0_001100,
	"A":   0b0_110000,
	"M":   0b1_110000,
	"!D":  0b0_001101,
	"!A":  0b0_110001,
	"!M":  0b1_110001,
	"-D":  0b0_001111,
	"-A":  0b0_110011,
	"-M":  0b1_110011,
	"D+1": 0b0_011111,
	"A+1": 0b0_110111,
	"M+1": 0b1_110111,
	"D-1": 0b0_001110,
	"A-1": 0b0_110010,
	"M-1": 0b1_110010,
	"D+A": 0b0_000010,
	"D+M": 0b1_000010,
	"D-A": 0b0_010011,
	"D-M": 0b1_010011,
	"A-D": 0b0_000111,
	"M-D": 0b1_000111,
	"D&A": 0b0_000000,
	"D&M": 0b1_000000,
	"D|A": 0b0_010101,
	"D|M": 0b1_010101,
}

// Destination codes, d1 d2 d3 = A D M
var DestTable = map[string]uint16{
	"M":   0b001,
	"D":   0b010,
	"MD":  0b011,
	"A":   0b100,
	"AM":  0b101,
	"AD":  0b110,
	"AMD": 0b111,
}

// Jump codes, j1 j2 j3 = out<0 out=0 out>0
var JumpTable = map[string]uint16{
	"JGT": 0b001,
	"JEQ": 0b010,
	"JGE": 0b011,
	"JLT": 0b100,
	"JNE": 0b101,
	"JLE": 0b110,
	"JMP": 0b111,
}

var compNames = invert(CompTable)
var destNames = invert(DestTable)
var jumpNames = invert(JumpTable)

func invert(table map[string]uint16) map[uint16]string {
	result := make(map[uint16]string, len(table))

	for name, code := range table {
		result[code] = name
	}

	return result
}
