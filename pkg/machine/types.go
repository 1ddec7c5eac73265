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
	"bufio"
)

type DeviceHandler struct {
	Keyboard *bufio.Reader
}

type MachineState struct {
	A       uint16
	D       uint16
	Program uint16
	Memory  [MEMORY_SIZE]uint16
	ROM     [ROM_SIZE]uint16
	Size    int
	Halted  bool
}

type Machine struct {
	Devices *DeviceHandler
	State   MachineState
}
