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


package assembler

const (
	COMMENT        = "//"
	LABEL_START    = '('
	LABEL_END      = ')'
	ADDRESS_START  = '@'
	DEST_SEPARATOR = "="
	JUMP_SEPARATOR = ";"

	SOURCE_EXT = ".asm"
	BINARY_EXT = ".hack"
	DEBUG_EXT  = ".hackdb"
)

const (
	SYMBOL_NONE SymbolKind = iota
	SYMBOL_PREDEFINED
	SYMBOL_LABEL
	SYMBOL_VARIABLE
)

const (
	// Variables are allocated upward from here, after R0-R15
	VARIABLE_BASE uint16 = 16

	// Instruction memory holds at most this many words
	PROGRAM_SIZE = 1 << 15
)

// Seeds every SymbolTable. Never mutated; NewSymbolTable copies it.
var predefinedSymbols = map[string]uint16{
	"R0":     0,
	"R1":     1,
	"R2":     2,
	"R3":     3,
	"R4":     4,
	"R5":     5,
	"R6":     6,
	"R7":     7,
	"R8":     8,
	"R9":     9,
	"R10":    10,
	"R11":    11,
	"R12":    12,
	"R13":    13,
	"R14":    14,
	"R15":    15,
	"SCREEN": 16384,
	"KBD":    24576,

	"SP":   0,
	"LCL":  1,
	"ARG":  2,
	"THIS": 3,
	"THAT": 4,
}
