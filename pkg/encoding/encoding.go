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
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Decodes an unsigned base-10 address literal in the format: 123
func DecodeInt(s string) (uint16, error) {
	if s == "" || strings.IndexFunc(s, isNotDigit) != -1 {
		return 0, strconv.ErrSyntax
	}

	result, err := strconv.ParseUint(s, 10, WORD_BITS)

	if errors.Is(err, strconv.ErrRange) || (err == nil && result > uint64(MAX_ADDRESS)) {
		return 0, &OversizedAddressError{uint16(result)}
	} else if err != nil {
		return 0, err
	}

	return uint16(result), nil
}

func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}

// Formats a word as 16 characters of '0' and '1'
func FormatWord(value uint16) string {
	return leftPad(strconv.FormatUint(uint64(value), 2), WORD_BITS)
}

// Parses 16 characters of '0' and '1' into a word
func ParseWord(s string) (uint16, error) {
	if len(s) != WORD_BITS || strings.Trim(s, "01") != "" {
		return 0, &InvalidWordError{s}
	}

	result, err := strconv.ParseUint(s, 2, WORD_BITS)

	if err != nil {
		return 0, &InvalidWordError{s}
	}

	return uint16(result), nil
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}

func EncodeAddress(value uint16) (string, error) {
	if value > MAX_ADDRESS {
		return "", &OversizedAddressError{value}
	}

	return PREFIX_ADDRESS + leftPad(
		strconv.FormatUint(uint64(value), 2), ADDRESS_BITS,
	), nil
}

func EncodeComp(comp string) (string, error) {
	code, exists := CompTable[comp]

	if !exists {
		return "", &MnemonicError{FIELD_COMP, comp}
	}

	return leftPad(strconv.FormatUint(uint64(code), 2), 7), nil
}

func EncodeDest(dest string) (string, error) {
	if dest == "" {
		return NO_DEST, nil
	}

	code, exists := DestTable[dest]

	if !exists {
		return "", &MnemonicError{FIELD_DEST, dest}
	}

	return leftPad(strconv.FormatUint(uint64(code), 2), 3), nil
}

func EncodeJump(jump string) (string, error) {
	if jump == "" {
		return NO_JUMP, nil
	}

	code, exists := JumpTable[jump]

	if !exists {
		return "", &MnemonicError{FIELD_JUMP, jump}
	}

	return leftPad(strconv.FormatUint(uint64(code), 2), 3), nil
}

// Encodes dest=comp;jump. Empty dest or jump encode as 000.
func EncodeCompute(dest, comp, jump string) (string, error) {
	compBits, err := EncodeComp(comp)

	if err != nil {
		return "", err
	}

	destBits, err := EncodeDest(dest)

	if err != nil {
		return "", err
	}

	jumpBits, err := EncodeJump(jump)

	if err != nil {
		return "", err
	}

	return PREFIX_COMPUTE + compBits + destBits + jumpBits, nil
}

// Decodes a 16 character bit string back into its mnemonic form
func Decode(s string) (Word, error) {
	value, err := ParseWord(s)

	if err != nil {
		return Word{}, err
	}

	return DecodeWord(value)
}

func DecodeWord(value uint16) (Word, error) {
	if value>>ADDRESS_BITS == 0 {
		return Word{Address: true, Value: value}, nil
	}

	if value>>13 != 0b111 {
		return Word{}, &InvalidWordError{FormatWord(value)}
	}

	comp, exists := compNames[(value>>6)&0x7F]

	if !exists {
		return Word{}, &InvalidWordError{FormatWord(value)}
	}

	return Word{
		Comp: comp,
		Dest: destNames[(value>>3)&0x7],
		Jump: jumpNames[value&0x7],
	}, nil
}

// Reads a binary text file, one 16 character word per line. Blank lines are
// ignored.
func ReadWords(reader io.Reader) ([]uint16, error) {
	var result []uint16
	var scanner = bufio.NewScanner(reader)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		value, err := ParseWord(line)

		if err != nil {
			return nil, err
		}

		result = append(result, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
