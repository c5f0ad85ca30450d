// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"strconv"

	"github.com/pkg/errors"
)

// Opcode selects the operation of an instruction.
type Opcode int

// Intcode opcodes.
const (
	OpAdd     Opcode = 1  // a b dst: dst = a + b
	OpMul     Opcode = 2  // a b dst: dst = a * b
	OpIn      Opcode = 3  // dst: dst = next input
	OpOut     Opcode = 4  // a: output a
	OpJnz     Opcode = 5  // a target: jump if a != 0
	OpJz      Opcode = 6  // a target: jump if a == 0
	OpLt      Opcode = 7  // a b dst: dst = a < b
	OpEq      Opcode = 8  // a b dst: dst = a == b
	OpArb     Opcode = 9  // a: relative base += a
	OpHalt    Opcode = 99 // stop
	maxRawIns        = 99999
)

type opInfo struct {
	name  string
	argc  int // number of parameters
	write int // index of the write target parameter, -1 if none
}

var opcodes = map[Opcode]opInfo{
	OpAdd:  {"add", 3, 2},
	OpMul:  {"mul", 3, 2},
	OpIn:   {"in", 1, 0},
	OpOut:  {"out", 1, -1},
	OpJnz:  {"jnz", 2, -1},
	OpJz:   {"jz", 2, -1},
	OpLt:   {"lt", 3, 2},
	OpEq:   {"eq", 3, 2},
	OpArb:  {"arb", 1, -1},
	OpHalt: {"hlt", 0, -1},
}

var opcodeIndex = make(map[string]Opcode, len(opcodes))

func init() {
	for op, info := range opcodes {
		opcodeIndex[info.name] = op
	}
}

// Valid returns true if op is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Argc returns the number of parameters taken by op, or -1 if op is not a
// valid opcode.
func (op Opcode) Argc() int {
	if info, ok := opcodes[op]; ok {
		return info.argc
	}
	return -1
}

// WriteParam returns the index of the parameter of op that is used as a write
// target, or -1 if op does not write to memory.
func (op Opcode) WriteParam() int {
	if info, ok := opcodes[op]; ok {
		return info.write
	}
	return -1
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// LookupOpcode returns the opcode for the given assembler mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	Position  Mode = iota // parameter is an address
	Immediate             // parameter is a literal value
	Relative              // parameter is an address relative to the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a decoded instruction cell.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode // Modes[0] is the mode of the first parameter
}

// Decode decodes a raw instruction cell. The cell is read as a 5 digit decimal
// number ABCDE where DE is the opcode and C, B, A are the modes of the first,
// second and third parameter.
//
// Decode does not check whether the opcode is part of the instruction set. It
// only fails for cells that cannot be read as 5 decimal digits, i.e. negative
// values or values above 99999.
func Decode(raw Cell) (Instruction, error) {
	if raw < 0 || raw > maxRawIns {
		return Instruction{}, errors.Wrapf(ErrUnknownOpcode, "cannot decode instruction %d", raw)
	}
	v := int(raw)
	return Instruction{
		Op: Opcode(v % 100),
		Modes: [3]Mode{
			Mode(v / 100 % 10),
			Mode(v / 1000 % 10),
			Mode(v / 10000 % 10),
		},
	}, nil
}

// Encode returns the raw cell value for ins. It is the inverse of Decode.
func (ins Instruction) Encode() Cell {
	return Cell(int(ins.Op) + int(ins.Modes[0])*100 + int(ins.Modes[1])*1000 + int(ins.Modes[2])*10000)
}

func (ins Instruction) String() string {
	return ins.Op.String() + " " + strconv.Itoa(int(ins.Modes[2])) + strconv.Itoa(int(ins.Modes[1])) + strconv.Itoa(int(ins.Modes[0]))
}
