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
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int  // Program Counter (aka. Instruction Pointer)
	RelBase  Cell // Relative base register
	Tape     Tape // Memory
	output   []Cell
	input    queue
	reason   Reason
	opcode   Cell
	insCount int64
	margin   int
	maxTape  int
	log      *zap.Logger
	metrics  *Metrics
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(values ...Cell) Option {
	return func(i *Instance) error { i.input.push(values...); return nil }
}

// GrowMargin sets the number of extra cells allocated past the requested
// address when the tape needs to grow. The default is DefaultGrowMargin.
func GrowMargin(n int) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid grow margin %d", n)
		}
		i.margin = n
		return nil
	}
}

// MaxTape sets the size limit of the tape, in cells. Accessing an address at
// or above the limit that is not already part of the tape stops the program
// with an AddressFault. The default is DefaultMaxTape.
func MaxTape(n int) Option {
	return func(i *Instance) error {
		if n < 1 {
			return errors.Errorf("invalid tape size limit %d", n)
		}
		i.maxTape = n
		return nil
	}
}

// Trace enables instruction tracing. Every executed instruction, tape growth
// and interrupt is logged at debug level to the given logger. A nil logger
// disables tracing.
func Trace(l *zap.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = zap.NewNop()
		}
		i.log = l
		return nil
	}
}

// WithMetrics sets the metrics collector updated by the instance. Metrics can
// be shared between instances.
func WithMetrics(m *Metrics) Option {
	return func(i *Instance) error { i.metrics = m; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance.
//
// The instance takes ownership of the tape: the program modifies it in place
// and it may be reallocated when growing. Use Tape.Clone to run several
// instances of the same program.
//
// Options will be set by calling SetOptions.
func New(tape Tape, opts ...Option) (*Instance, error) {
	i := &Instance{
		Tape:    tape,
		margin:  DefaultGrowMargin,
		maxTape: DefaultMaxTape,
		log:     zap.NewNop(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Output returns the output produced so far. Note that value changes will be
// reflected in the instance's output, but re-slicing will not affect it.
func (i *Instance) Output() []Cell {
	return i.output
}

// PendingInput returns the input values not consumed yet.
func (i *Instance) PendingInput() []Cell {
	return i.input.values()
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Reason returns the reason why the last run stopped.
func (i *Instance) Reason() Reason {
	return i.reason
}

// State returns a snapshot of the instance's progress. The returned output
// slice is a copy.
func (i *Instance) State() RunState {
	return RunState{
		PC:      i.PC,
		RelBase: i.RelBase,
		Output:  append([]Cell(nil), i.output...),
		Reason:  i.reason,
		Opcode:  i.opcode,
	}
}

// Restore resets the instance's progress to the given state. The tape and
// input queue are left untouched.
func (i *Instance) Restore(s RunState) {
	i.PC = s.PC
	i.RelBase = s.RelBase
	i.output = append(i.output[:0:0], s.Output...)
	i.reason = s.Reason
	i.opcode = s.Opcode
}

func dumpSlice(w io.Writer, a []Cell) {
	b := make([]byte, 0, 20)
	for k, v := range a {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		w.Write(b)
	}
}

// Dump writes the instance registers, output and memory to the specified
// io.Writer, one item per line.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, "pc: "+strconv.Itoa(i.PC)+"\n")
	io.WriteString(ew, "rb: "+strconv.FormatInt(int64(i.RelBase), 10)+"\n")
	io.WriteString(ew, "reason: "+i.reason.String()+"\n")
	io.WriteString(ew, "output: ")
	dumpSlice(ew, i.output)
	io.WriteString(ew, "\ntape: ")
	dumpSlice(ew, i.Tape)
	ew.Write([]byte{'\n'})
	return ew.Err
}
