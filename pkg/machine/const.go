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


package machine

const (
	MEMORY_SIZE = 1 << 15
	ROM_SIZE    = 1 << 15
)

const (
	MEMSPACE_SCREEN uint16 = 0x4000
	MEMSPACE_KBD    uint16 = 0x6000
)

// Compute word fields
const (
	BIT_ADDRESS uint16 = 1 << 15
	BIT_M       uint16 = 1 << 12

	DEST_A uint16 = 0b100
	DEST_D uint16 = 0b010
	DEST_M uint16 = 0b001

	JUMP_LT uint16 = 0b100
	JUMP_EQ uint16 = 0b010
	JUMP_GT uint16 = 0b001
)

// ALU control bits, c1 through c6
const (
	ALU_ZX uint16 = 1 << 5
	ALU_NX uint16 = 1 << 4
	ALU_ZY uint16 = 1 << 3
	ALU_NY uint16 = 1 << 2
	ALU_F  uint16 = 1 << 1
	ALU_NO uint16 = 1 << 0
)

// Keyboard codes for keys outside printable ASCII
const (
	KEY_NEWLINE   uint16 = 128
	KEY_BACKSPACE uint16 = 129
	KEY_ESCAPE    uint16 = 140
)
