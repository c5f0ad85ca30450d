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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting tape and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Tape, error) {
	return newParser().Parse(name, r)
}

// decodable returns true if the disassembly of ins assembles back to the same
// cell.
func decodable(ins vm.Instruction, argc int) bool {
	for n, m := range ins.Modes {
		if n < argc && m > vm.Relative || n >= argc && m != vm.Position {
			return false
		}
	}
	return true
}

// Disassemble writes a disassembly of the cells in the given tape at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not hold a valid instruction, or instructions whose parameters
// extend past the end of the tape, are written as a .dat directive.
func Disassemble(t vm.Tape, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)
	raw := t[pc]
	ins, err := vm.Decode(raw)
	argc := ins.Op.Argc()
	if err != nil || argc < 0 || pc+argc >= len(t) || !decodable(ins, argc) {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(raw), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.Op.String())
	for n := 0; n < argc; n++ {
		switch ins.Modes[n] {
		case vm.Immediate:
			io.WriteString(ew, " #")
		case vm.Relative:
			io.WriteString(ew, " ~")
		default:
			ew.Write([]byte{' '})
		}
		io.WriteString(ew, strconv.FormatInt(int64(t[pc+1+n]), 10))
	}
	return pc + 1 + argc, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given tape to the
// specified io.Writer. The base argument specifies the real address of the
// first cell (t[0]). It will return any write error.
func DisassembleAll(t vm.Tape, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(t); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(t, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
