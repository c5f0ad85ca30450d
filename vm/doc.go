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

// Package vm implements a resumable Intcode virtual machine.
//
// An Intcode program is a Tape of integer Cells that serves both as code and
// as addressable memory. Each instruction cell encodes an opcode in its two
// lowest decimal digits and the addressing mode of up to three parameters in
// the digits above:
//
//	ABCDE
//	 1002
//
//	DE - two-digit opcode,      02 == opcode 2
//	 C - mode of 1st parameter,  0 == position mode
//	 B - mode of 2nd parameter,  1 == immediate mode
//	 A - mode of 3rd parameter,  0 == position mode (omitted leading zero)
//
// Supported modes are position (0), immediate (1) and relative (2). Relative
// mode addresses are offset by the relative base register, which starts at 0
// and is adjusted by the arb instruction.
//
// The tape grows on demand: reading or writing past its end zero-fills the
// missing cells first, up to a size limit set with the MaxTape option.
// Negative addresses and addresses past the limit are an error.
//
// Execution is synchronous. A run stops when the program halts, when the
// program counter walks off the end of the tape, when an instruction cannot be
// decoded or accesses an invalid address, or when an input instruction finds
// the input queue empty. In
// the latter case the returned RunState can be passed back together with fresh
// input to resume execution at the very same input instruction:
//
//	state, err := vm.Run(&tape, nil, vm.RunState{})
//	for err == nil && state.Reason == vm.InputEmpty {
//		state, err = vm.Run(&tape, []vm.Cell{next()}, state)
//	}
//
// The relative base is part of RunState, so resuming across calls is
// equivalent to a single uninterrupted run fed with the concatenation of all
// inputs.
//
// An Instance wraps a tape and its RunState for callers that prefer to keep
// the VM around between resumptions.
package vm
