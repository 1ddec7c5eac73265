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

import (
	"fmt"
)

type Field string

// A decoded machine word. Address words only carry Value; compute words only
// carry the three mnemonics, with Dest and Jump empty when their bits are 0.
type Word struct {
	Address bool
	Value   uint16
	Dest    string
	Comp    string
	Jump    string
}

func (w Word) String() string {
	if w.Address {
		return fmt.Sprintf("@%d", w.Value)
	}

	result := w.Comp

	if w.Dest != "" {
		result = w.Dest + "=" + result
	}

	if w.Jump != "" {
		result = result + ";" + w.Jump
	}

	return result
}

type MnemonicError struct {
	Field Field
	Value string
}

func (err *MnemonicError) Error() string {
	return fmt.Sprintf("Unknown %s mnemonic '%s'", err.Field, err.Value)
}

type OversizedAddressError struct {
	Value uint16
}

func (err *OversizedAddressError) Error() string {
	return fmt.Sprintf(
		"Address exceeds allowed size\n\twant:%d\n\thave:%d",
		MAX_ADDRESS,
		err.Value,
	)
}

type InvalidWordError struct {
	Value string
}

func (err *InvalidWordError) Error() string {
	return fmt.Sprintf("Invalid machine word '%s'", err.Value)
}
