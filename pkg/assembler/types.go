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

import (
	"fmt"
)

type SymbolKind uint

type Cursor struct {
	Line     int
	Column   int
	Byte     int64
	Size     int64
	LineByte int64
}

// A source line with its comment and surrounding whitespace removed
type Line struct {
	Text     string
	Position Cursor
}

// Instruction is one of *AddressInstruction, *LabelDeclaration, or
// *ComputeInstruction.
type Instruction interface {
	GetPosition() Cursor
	instruction()
}

// @Value or @Symbol. Symbol is empty once resolved.
type AddressInstruction struct {
	Position Cursor
	Symbol   string
	Value    uint16
}

func (ins *AddressInstruction) GetPosition() Cursor { return ins.Position }
func (ins *AddressInstruction) instruction()        {}

// (Name)
type LabelDeclaration struct {
	Position Cursor
	Name     string
}

func (ins *LabelDeclaration) GetPosition() Cursor { return ins.Position }
func (ins *LabelDeclaration) instruction()        {}

// Dest=Comp;Jump. Dest and Jump are empty when absent.
type ComputeInstruction struct {
	Position Cursor
	Dest     string
	Comp     string
	Jump     string
}

func (ins *ComputeInstruction) GetPosition() Cursor { return ins.Position }
func (ins *ComputeInstruction) instruction()        {}

// Debugging information produced alongside a binary. Symbols maps each word
// address to the byte offset of its source line; Values holds every label and
// variable of the program.
type SymTable struct {
	Source   string
	Symbols  map[uint16]int64
	Labels   map[uint16][]string
	Operands map[uint16]string
	Values   map[string]uint16
}

func NewSymTable(source string) *SymTable {
	return &SymTable{
		Source:   source,
		Symbols:  make(map[uint16]int64),
		Labels:   make(map[uint16][]string),
		Operands: make(map[uint16]string),
		Values:   make(map[string]uint16),
	}
}

type TokenError interface {
	GetPosition() Cursor
}

// Reports whether err is caused by malformed source rather than by the
// file system or the assembler itself.
func IsSyntaxError(err error) bool {
	switch err.(type) {
	case *UnknownInstructionError,
		*InvalidSymbolError,
		*InvalidLiteralError,
		*OversizedLiteralError,
		*InvalidCompError,
		*InvalidDestError,
		*InvalidJumpError,
		*RedeclaredLabelError:
		return true
	}

	return false
}

type FileError struct {
	Path string
	Err  error
}

func (err *FileError) Error() string {
	if err.Path == "" {
		return err.Err.Error()
	}

	return fmt.Sprintf("%s: %s", err.Path, err.Err)
}

func (err *FileError) Unwrap() error {
	return err.Err
}

type UnknownInstructionError struct {
	Position Cursor
	Received string
}

func (err *UnknownInstructionError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownInstructionError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown instruction '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidSymbolError struct {
	Position Cursor
	Received string
}

func (err *InvalidSymbolError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidSymbolError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid symbol '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidLiteralError struct {
	Position Cursor
}

func (err *InvalidLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid numeric literal",
		err.Position.Line,
		err.Position.Column,
	)
}

type OversizedLiteralError struct {
	Position Cursor
	Required uint16
	Received string
}

func (err *OversizedLiteralError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Literal exceeds allowed size\n\twant:%d\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type InvalidCompError struct {
	Position Cursor
	Received string
}

func (err *InvalidCompError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidCompError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid computation '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidDestError struct {
	Position Cursor
	Received string
}

func (err *InvalidDestError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidDestError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid destination '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidJumpError struct {
	Position Cursor
	Received string
}

func (err *InvalidJumpError) GetPosition() Cursor {
	return err.Position
}

func (err *InvalidJumpError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid jump '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type RedeclaredLabelError struct {
	Position Cursor
	Received string
}

func (err *RedeclaredLabelError) GetPosition() Cursor {
	return err.Position
}

func (err *RedeclaredLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Redeclaration of label '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OversizedMemoryError struct {
	Position Cursor
	Received string
}

func (err *OversizedMemoryError) GetPosition() Cursor {
	return err.Position
}

func (err *OversizedMemoryError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: No memory left for variable '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

// An unresolved symbol reached the encoder
type ResolverInternalError struct {
	Symbol string
}

func (err *ResolverInternalError) Error() string {
	return fmt.Sprintf("Internal error: symbol '%s' was never resolved", err.Symbol)
}

type OversizedBinaryError struct{}

func (err *OversizedBinaryError) Error() string {
	return "Binary exceeds allowed size"
}
