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

import (
	"errors"
	"io"

	"github.com/golang/glog"

	"github.com/lassandro/gohack/pkg/encoding"
)

var ErrOversizedProgram = errors.New("Program exceeds instruction memory")

// Clears registers and data memory. Instruction memory is kept.
func (mc *MachineState) Reset() {
	mc.A = 0
	mc.D = 0
	mc.Program = 0
	mc.Halted = false

	for i := range mc.Memory {
		mc.Memory[i] = 0x0000
	}
}

// Loads a binary text program into instruction memory and resets the machine
func (mc *Machine) LoadHack(reader io.Reader) error {
	words, err := encoding.ReadWords(reader)

	if err != nil {
		return err
	}

	return mc.Load(words)
}

func (mc *Machine) Load(words []uint16) error {
	if len(words) > ROM_SIZE {
		return ErrOversizedProgram
	}

	mc.State.Reset()

	for i := range mc.State.ROM {
		mc.State.ROM[i] = 0
	}

	copy(mc.State.ROM[:], words)
	mc.State.Size = len(words)

	return nil
}

func (mc *Machine) read(addr uint16) uint16 {
	addr &= MEMORY_SIZE - 1

	if addr == MEMSPACE_KBD && mc.Devices != nil && mc.Devices.Keyboard != nil {
		key, err := mc.Devices.Keyboard.ReadByte()

		if err == nil {
			mc.State.Memory[MEMSPACE_KBD] = keyCode(key)
		} else {
			mc.State.Memory[MEMSPACE_KBD] = 0
		}
	}

	return mc.State.Memory[addr]
}

func (mc *Machine) write(addr uint16, value uint16) {
	addr &= MEMORY_SIZE - 1

	if addr != MEMSPACE_KBD {
		mc.State.Memory[addr] = value
	}
}

func keyCode(key byte) uint16 {
	switch key {
	case '\n', '\r':
		return KEY_NEWLINE
	case 0x7F, 0x08:
		return KEY_BACKSPACE
	case 0x1B:
		return KEY_ESCAPE
	}

	return uint16(key)
}

func alu(control, x, y uint16) (out uint16) {
	if control&ALU_ZX != 0 {
		x = 0
	}

	if control&ALU_NX != 0 {
		x = ^x
	}

	if control&ALU_ZY != 0 {
		y = 0
	}

	if control&ALU_NY != 0 {
		y = ^y
	}

	if control&ALU_F != 0 {
		out = x + y
	} else {
		out = x & y
	}

	if control&ALU_NO != 0 {
		out = ^out
	}

	return out
}

// Executes the instruction at the program counter
func (mc *Machine) Step() {
	state := &mc.State
	instruction := state.ROM[state.Program&(ROM_SIZE-1)]

	if instruction&BIT_ADDRESS == 0 {
		state.A = instruction
		state.Program++
		return
	}

	addr := state.A
	y := addr

	if instruction&BIT_M != 0 {
		y = mc.read(addr)
	}

	out := alu((instruction>>6)&0x3F, state.D, y)
	dest := (instruction >> 3) & 0x7
	jump := instruction & 0x7

	if dest&DEST_M != 0 {
		mc.write(addr, out)
	}

	if dest&DEST_A != 0 {
		state.A = out
	}

	if dest&DEST_D != 0 {
		state.D = out
	}

	signed := int16(out)

	if (jump&JUMP_LT != 0 && signed < 0) ||
		(jump&JUMP_EQ != 0 && signed == 0) ||
		(jump&JUMP_GT != 0 && signed > 0) {
		// A jump with no side effects back to itself, or to the @ that
		// loaded its own address, can never leave the loop.
		if dest == 0 && (addr == state.Program ||
			(addr+1 == state.Program && state.ROM[addr&(ROM_SIZE-1)] == addr)) {
			state.Halted = true
		}

		state.Program = addr
	} else {
		state.Program++
	}
}

// Steps until the program jumps to itself, runs past its last instruction,
// or limit steps have executed. Returns the number of steps taken.
func (mc *Machine) Run(limit uint) uint {
	var steps uint

	for steps < limit && !mc.State.Halted {
		if int(mc.State.Program) >= mc.State.Size {
			mc.State.Halted = true
			break
		}

		if glog.V(3) {
			glog.Infof(
				"pc=%d a=%d d=%d ins=%s",
				mc.State.Program,
				mc.State.A,
				int16(mc.State.D),
				encoding.FormatWord(mc.State.ROM[mc.State.Program]),
			)
		}

		mc.Step()
		steps++
	}

	glog.V(1).Infof("ran %d steps, halted=%t", steps, mc.State.Halted)

	return steps
}
