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

package ascii

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/vm"
)

func dumpSlice(w io.Writer, prefix byte, a []vm.Cell) error {
	var err error
	l := len(a) - 1
	b := make([]byte, 0, 22)
	b = append(b, prefix)
	if l >= 0 {
		for i := 0; i < l; i++ {
			b = strconv.AppendInt(b, int64(a[i]), 10)
			b = append(b, ' ')
			_, err = w.Write(b)
			if err != nil {
				return err
			}
			b = b[:0]
		}
		b = strconv.AppendInt(b, int64(a[l]), 10)
	}
	_, err = w.Write(b)
	return err
}

// DumpState dumps a run state and tape to the specified io.Writer in a
// format suitable for external tools. Each group of values is introduced by
// an ASCII separator: '\x1C' before the registers (PC, relative base, reason
// and raw opcode), then '\x1D' before the output, and '\x1D' before the tape.
// Values in a group are separated by a single space.
func DumpState(w io.Writer, s vm.RunState, t vm.Tape) error {
	err := dumpSlice(w, '\x1C', []vm.Cell{vm.Cell(s.PC), s.RelBase, vm.Cell(s.Reason), s.Opcode})
	if err != nil {
		return err
	}
	err = dumpSlice(w, '\x1D', s.Output)
	if err != nil {
		return err
	}
	return dumpSlice(w, '\x1D', t)
}
