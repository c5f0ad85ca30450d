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
	"go.uber.org/zap"
)

// Reason is the reason why a run stopped.
type Reason int

// Run interrupt reasons.
const (
	NotStarted    Reason = iota // the program has not run yet
	Finished                    // the program executed a halt instruction
	Exhausted                   // PC walked past the end of the tape without a halt
	InputEmpty                  // an input instruction found the input queue empty
	UnknownOpcode               // the instruction at PC could not be decoded
	AddressFault                // the instruction at PC accessed an invalid address
)

var reasons = [...]string{
	NotStarted:    "not started",
	Finished:      "finished",
	Exhausted:     "out of instructions",
	InputEmpty:    "input empty",
	UnknownOpcode: "unknown opcode",
	AddressFault:  "address fault",
}

func (r Reason) String() string {
	if r >= 0 && int(r) < len(reasons) {
		return reasons[r]
	}
	return "reason(" + strconv.Itoa(int(r)) + ")"
}

// Resumable returns true if a run that stopped for reason r may continue
// once more input is available.
func (r Reason) Resumable() bool {
	return r == NotStarted || r == InputEmpty
}

// RunState is a resumable snapshot of a VM's progress.
//
// The zero value is the initial state of a program: PC and relative base at 0,
// no output, and Reason set to NotStarted.
type RunState struct {
	PC      int    // address of the next instruction to execute
	RelBase Cell   // relative base register
	Output  []Cell // accumulated output, oldest first
	Reason  Reason // why the run stopped
	Opcode  Cell   // raw instruction cell at PC if Reason is UnknownOpcode
}

// Run runs the program on tape t with the given input, starting from state.
// Output produced by the run is appended to a copy of state.Output.
//
// Run returns when the program halts, runs out of instructions, faults, or
// when it needs more input than provided. In the last case, the returned
// state has its Reason set to InputEmpty and can be passed to another call to
// Run with more input. Running a program in several steps this way yields the
// same results as a single run with all inputs concatenated.
//
// The returned error is non-nil if the run stopped with an UnknownOpcode or
// AddressFault reason. In both cases, the state's PC points to the faulting
// instruction and the output produced so far is preserved.
//
// The tape is modified in place. It may be reallocated if it needs to grow.
func Run(t *Tape, input []Cell, state RunState, opts ...Option) (RunState, error) {
	i, err := New(*t, opts...)
	if err != nil {
		return state, err
	}
	i.Restore(state)
	s, err := i.Resume(input...)
	*t = i.Tape
	return s, err
}

// Resume appends the given values to the input queue and runs the program
// from the current PC. See Run for details.
//
// Resuming a program that stopped for any other reason than InputEmpty is
// allowed and will immediately stop again for the same reason.
func (i *Instance) Resume(input ...Cell) (RunState, error) {
	_, err := i.Continue(input...)
	return i.State(), err
}

// Continue is like Resume but only returns the reason why the run stopped.
// Unlike the RunState returned by Resume, it does not copy the output. Use
// Output to read it.
func (i *Instance) Continue(input ...Cell) (Reason, error) {
	i.input.push(input...)
	err := i.run()
	i.metrics.interrupted(i.reason)
	if ce := i.log.Check(zap.DebugLevel, "interrupt"); ce != nil {
		ce.Write(zap.Int("pc", i.PC), zap.Stringer("reason", i.reason), zap.Int("output", len(i.output)), zap.Error(err))
	}
	return i.reason, err
}

func (i *Instance) run() error {
	for {
		if i.PC < 0 || i.PC >= len(i.Tape) {
			i.reason = Exhausted
			return nil
		}
		raw := i.Tape[i.PC]
		ins, err := Decode(raw)
		if err != nil || !ins.Op.Valid() {
			i.reason, i.opcode = UnknownOpcode, raw
			return errors.WithStack(&OpcodeError{PC: i.PC, Raw: raw})
		}
		switch ins.Op {
		case OpHalt:
			i.reason = Finished
			return nil
		case OpIn:
			if i.input.len() == 0 {
				i.reason = InputEmpty
				return nil
			}
		}
		if ce := i.log.Check(zap.DebugLevel, "exec"); ce != nil {
			ce.Write(i.traceFields(ins)...)
		}
		next, err := i.exec(ins)
		if err != nil {
			i.reason = AddressFault
			return err
		}
		i.metrics.executed(ins.Op)
		i.PC = next
		i.insCount++
	}
}

func (i *Instance) traceFields(ins Instruction) []zap.Field {
	argc := ins.Op.Argc()
	params := make([]int64, argc)
	for n := range params {
		params[n] = int64(i.param(n))
	}
	return []zap.Field{
		zap.Int("pc", i.PC),
		zap.Stringer("op", ins.Op),
		zap.String("modes", modeString(ins, argc)),
		zap.Int64s("params", params),
		zap.Int64("rb", int64(i.RelBase)),
	}
}

func modeString(ins Instruction, argc int) string {
	b := make([]byte, argc)
	for n := range b {
		b[n] = '0' + byte(ins.Modes[n]%10)
	}
	return string(b)
}
