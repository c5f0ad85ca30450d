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

package vm_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRun_blockingInput(t *testing.T) {
	tape := vm.Tape{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}
	s, err := vm.Run(&tape, nil, vm.RunState{})
	require.NoError(t, err)
	require.Equal(t, vm.InputEmpty, s.Reason)
	require.Equal(t, 0, s.PC)
	require.Empty(t, s.Output)
	require.Equal(t, vm.Cell(-1), tape[9], "tape modified before blocking")

	s, err = vm.Run(&tape, []vm.Cell{8}, s)
	require.NoError(t, err)
	require.Equal(t, vm.Finished, s.Reason)
	require.Equal(t, []vm.Cell{1}, s.Output)
}

func TestRun_resumeKeepsOutput(t *testing.T) {
	// out 1, in, out input, halt
	tape := vm.Tape{104, 1, 3, 9, 4, 9, 99, 0, 0, 0}
	s, err := vm.Run(&tape, nil, vm.RunState{})
	require.NoError(t, err)
	require.Equal(t, vm.InputEmpty, s.Reason)
	require.Equal(t, 2, s.PC)
	require.Equal(t, []vm.Cell{1}, s.Output)

	prev := s
	s, err = vm.Run(&tape, []vm.Cell{7}, s)
	require.NoError(t, err)
	require.Equal(t, vm.Finished, s.Reason)
	require.Equal(t, []vm.Cell{1, 7}, s.Output)
	// the previous state must not be affected by the resumed run
	require.Equal(t, []vm.Cell{1}, prev.Output)
}

func TestRun_resumeKeepsRelBase(t *testing.T) {
	// arb 10, in ~0, out 10, hlt
	tape := vm.Tape{109, 10, 203, 0, 4, 10, 99}
	s, err := vm.Run(&tape, nil, vm.RunState{})
	require.NoError(t, err)
	require.Equal(t, vm.InputEmpty, s.Reason)
	require.Equal(t, 2, s.PC)
	require.Equal(t, vm.Cell(10), s.RelBase)

	s, err = vm.Run(&tape, []vm.Cell{42}, s)
	require.NoError(t, err)
	require.Equal(t, vm.Finished, s.Reason)
	require.Equal(t, []vm.Cell{42}, s.Output)
}

// echo reads values forever and outputs them back, using relative addressing
// and a moving relative base.
var echo = vm.Tape{109, 100, 203, 0, 204, 0, 109, 1, 1105, 1, 2}

func TestRun_chunkedInput(t *testing.T) {
	r := rand.New(rand.NewSource(2019))
	input := make([]vm.Cell, 200)
	for n := range input {
		input[n] = vm.Cell(r.Int63n(2000) - 1000)
	}

	tape := echo.Clone()
	whole, err := vm.Run(&tape, input, vm.RunState{})
	require.NoError(t, err)
	require.Equal(t, vm.InputEmpty, whole.Reason)
	require.Equal(t, input, whole.Output)

	for round := 0; round < 20; round++ {
		tape := echo.Clone()
		var s vm.RunState
		for rest := input; len(rest) > 0; {
			n := 1 + r.Intn(len(rest))
			s, err = vm.Run(&tape, rest[:n], s)
			require.NoError(t, err)
			require.Equal(t, vm.InputEmpty, s.Reason)
			rest = rest[n:]
		}
		require.Equal(t, whole, s)
	}
}

func TestInstance_Resume(t *testing.T) {
	i, err := vm.New(echo.Clone(), vm.Input(1, 2))
	require.NoError(t, err)
	s, err := i.Resume(3)
	require.NoError(t, err)
	require.Equal(t, vm.InputEmpty, s.Reason)
	require.Equal(t, []vm.Cell{1, 2, 3}, s.Output)
	require.Equal(t, vm.Cell(103), i.RelBase)
	require.Empty(t, i.PendingInput())
	require.Equal(t, int64(3*4+1), i.InstructionCount())

	// terminal states are sticky
	i, err = vm.New(vm.Tape{3, 0, 99}, vm.Input(1, 2))
	require.NoError(t, err)
	s, err = i.Resume()
	require.NoError(t, err)
	require.Equal(t, vm.Finished, s.Reason)
	require.Equal(t, []vm.Cell{2}, i.PendingInput())
	s2, err := i.Resume(5)
	require.NoError(t, err)
	require.Equal(t, s, s2)
}

func TestRun_exhausted(t *testing.T) {
	tape := vm.Tape{1, 0, 0, 0}
	s, err := vm.Run(&tape, nil, vm.RunState{})
	require.NoError(t, err)
	require.Equal(t, vm.Exhausted, s.Reason)
	require.Equal(t, 4, s.PC)
	require.Equal(t, vm.Tape{2, 0, 0, 0}, tape)

	// jump past the end
	tape = vm.Tape{104, 5, 1105, 1, 1000}
	s, err = vm.Run(&tape, nil, vm.RunState{})
	require.NoError(t, err)
	require.Equal(t, vm.Exhausted, s.Reason)
	require.Equal(t, 1000, s.PC)
	require.Equal(t, []vm.Cell{5}, s.Output)
}

func TestRun_unknownOpcode(t *testing.T) {
	for _, raw := range []vm.Cell{42, 0, -1, 100000, 10} {
		tape := vm.Tape{104, 5, raw, 99}
		s, err := vm.Run(&tape, nil, vm.RunState{})
		require.Error(t, err)
		require.True(t, errors.Is(err, vm.ErrUnknownOpcode), "%d: %v", raw, err)
		var oe *vm.OpcodeError
		require.True(t, errors.As(err, &oe))
		require.Equal(t, 2, oe.PC)
		require.Equal(t, raw, oe.Raw)
		require.Equal(t, vm.UnknownOpcode, s.Reason)
		require.Equal(t, raw, s.Opcode)
		require.Equal(t, 2, s.PC)
		require.Equal(t, []vm.Cell{5}, s.Output)
	}
}

func TestRun_negativeAddress(t *testing.T) {
	tests := []struct {
		name string
		code vm.Tape
		pc   int
		addr vm.Cell
	}{
		{"read", vm.Tape{104, 3, 1, -1, 0, 0, 99}, 2, -1},
		{"write", vm.Tape{1101, 1, 1, -3, 99}, 0, -3},
		{"write immediate", vm.Tape{11101, 1, 1, -3, 99}, 0, -3},
		{"relative read", vm.Tape{109, -5, 204, 1, 99}, 2, -4},
		{"relative write", vm.Tape{109, -5, 21101, 1, 1, 0, 99}, 2, -5},
		{"input", vm.Tape{3, -7, 99}, 0, -7},
		{"jump", vm.Tape{1105, 1, -1, 99}, 0, -1},
		{"growth", vm.Tape{1101, 0, 5, 1000, 1, 1000, 1001, -1, 99}, 4, -1},
	}
	for _, test := range tests {
		tape := test.code.Clone()
		s, err := vm.Run(&tape, []vm.Cell{9}, vm.RunState{})
		require.Error(t, err, test.name)
		require.True(t, errors.Is(err, vm.ErrNegativeAddress), "%s: %v", test.name, err)
		var ae *vm.AddressError
		require.True(t, errors.As(err, &ae), test.name)
		require.Equal(t, test.pc, ae.PC, test.name)
		require.Equal(t, test.addr, ae.Addr, test.name)
		require.Equal(t, vm.AddressFault, s.Reason, test.name)
		require.Equal(t, test.pc, s.PC, test.name)
	}

	// not taken
	tape := vm.Tape{1106, 1, -1, 99}
	s, err := vm.Run(&tape, nil, vm.RunState{})
	require.NoError(t, err)
	require.Equal(t, vm.Finished, s.Reason)
}

func TestRun_addressRange(t *testing.T) {
	tests := []struct {
		name  string
		code  vm.Tape
		limit int
		pc    int
		addr  vm.Cell
	}{
		{"read max int", vm.Tape{104, 1, 4, math.MaxInt64, 99}, vm.DefaultMaxTape, 2, math.MaxInt64},
		{"write max int", vm.Tape{1101, 1, 1, math.MaxInt64, 99}, vm.DefaultMaxTape, 0, math.MaxInt64},
		{"relative max int", vm.Tape{109, math.MaxInt64 - 1, 204, 1, 99}, vm.DefaultMaxTape, 2, math.MaxInt64},
		{"read default limit", vm.Tape{4, vm.DefaultMaxTape, 99}, vm.DefaultMaxTape, 0, vm.DefaultMaxTape},
		{"read limit", vm.Tape{4, 100, 99}, 100, 0, 100},
		{"write limit", vm.Tape{1101, 1, 1, 1 << 40, 99}, 1000, 0, 1 << 40},
		{"input", vm.Tape{3, 50, 99}, 50, 0, 50},
	}
	for _, test := range tests {
		tape := test.code.Clone()
		s, err := vm.Run(&tape, []vm.Cell{9}, vm.RunState{}, vm.MaxTape(test.limit))
		require.Error(t, err, test.name)
		require.True(t, errors.Is(err, vm.ErrAddressRange), "%s: %v", test.name, err)
		require.False(t, errors.Is(err, vm.ErrNegativeAddress), test.name)
		var ae *vm.AddressError
		require.True(t, errors.As(err, &ae), test.name)
		require.Equal(t, test.pc, ae.PC, test.name)
		require.Equal(t, test.addr, ae.Addr, test.name)
		require.Equal(t, vm.AddressFault, s.Reason, test.name)
		require.Equal(t, test.pc, s.PC, test.name)
		require.Equal(t, test.code, tape, test.name)
	}

	// the faulting input instruction does not consume its input
	i, err := vm.New(vm.Tape{3, 50, 99}, vm.MaxTape(50))
	require.NoError(t, err)
	_, err = i.Resume(7)
	require.Error(t, err)
	require.Equal(t, []vm.Cell{7}, i.PendingInput())

	// growth stops at the limit and cells already on the tape stay reachable
	tape := vm.Tape{1101, 1, 2, 9, 4, 2, 99}
	s, err := vm.Run(&tape, nil, vm.RunState{}, vm.MaxTape(10), vm.GrowMargin(math.MaxInt))
	require.NoError(t, err)
	require.Equal(t, vm.Finished, s.Reason)
	require.Equal(t, []vm.Cell{2}, s.Output)
	require.Len(t, tape, 10)

	tape = vm.Tape{4, 2, 99}
	s, err = vm.Run(&tape, nil, vm.RunState{}, vm.MaxTape(1))
	require.NoError(t, err)
	require.Equal(t, []vm.Cell{99}, s.Output)

	_, err = vm.New(nil, vm.MaxTape(0))
	require.Error(t, err)
}

func TestInstance_Continue(t *testing.T) {
	i, err := vm.New(echo.Clone())
	require.NoError(t, err)
	for n := vm.Cell(1); n <= 3; n++ {
		r, err := i.Continue(n)
		require.NoError(t, err)
		require.Equal(t, vm.InputEmpty, r)
		require.Equal(t, n, i.Output()[n-1])
	}
	require.Equal(t, []vm.Cell{1, 2, 3}, i.Output())
	require.Equal(t, i.Output(), i.State().Output)
}

func TestRun_immediateDoesNotMutate(t *testing.T) {
	for _, code := range []vm.Tape{
		{104, 7, 99},
		{104, 7},
		{104},
		{1105, 0, 5000, 1106, 1, 5000, 99},
	} {
		tape := code.Clone()
		_, err := vm.Run(&tape, nil, vm.RunState{})
		require.NoError(t, err)
		require.Equal(t, code, tape)
	}
}

func TestRun_growth(t *testing.T) {
	tape := vm.Tape{1101, 1, 2, 20, 4, 15, 99}
	s, err := vm.Run(&tape, nil, vm.RunState{})
	require.NoError(t, err)
	require.Equal(t, vm.Finished, s.Reason)
	require.Equal(t, []vm.Cell{0}, s.Output)
	require.Len(t, tape, 20+1+vm.DefaultGrowMargin)
	require.Equal(t, vm.Cell(3), tape[20])

	tape = vm.Tape{1101, 1, 2, 20, 99}
	_, err = vm.Run(&tape, nil, vm.RunState{}, vm.GrowMargin(0))
	require.NoError(t, err)
	require.Len(t, tape, 21)

	_, err = vm.New(nil, vm.GrowMargin(-1))
	require.Error(t, err)
}

func TestInstance_Dump(t *testing.T) {
	i, err := vm.New(vm.Tape{104, 42, 99})
	require.NoError(t, err)
	_, err = i.Resume()
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, i.Dump(&b))
	require.Equal(t, "pc: 2\nrb: 0\nreason: finished\noutput: 42\ntape: 104,42,99\n", b.String())
}

func TestReason_String(t *testing.T) {
	require.Equal(t, "not started", vm.RunState{}.Reason.String())
	require.Equal(t, "input empty", vm.InputEmpty.String())
	require.Equal(t, "reason(42)", vm.Reason(42).String())
	require.True(t, vm.InputEmpty.Resumable())
	require.False(t, vm.Finished.Resumable())
}
