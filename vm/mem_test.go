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
	"math"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTape_ReadWrite(t *testing.T) {
	var tape vm.Tape
	v, err := tape.Read(3)
	require.NoError(t, err)
	require.Equal(t, vm.Cell(0), v)
	require.Equal(t, 3+1+vm.DefaultGrowMargin, tape.Len())

	require.NoError(t, tape.Write(1, 42))
	require.Equal(t, vm.Tape{0, 42, 0, 0, 0, 0}, tape)

	_, err = tape.Read(-1)
	require.True(t, errors.Is(err, vm.ErrNegativeAddress))
	err = tape.Write(-2, 1)
	var ae *vm.AddressError
	require.True(t, errors.As(err, &ae))
	require.Equal(t, vm.Cell(-2), ae.Addr)
	require.Equal(t, -1, ae.PC)

	tape = vm.Tape{1}
	_, err = tape.Read(math.MaxInt64)
	require.True(t, errors.Is(err, vm.ErrAddressRange))
	require.EqualError(t, err, "address 9223372036854775807: address out of range")
	err = tape.Write(vm.DefaultMaxTape, 1)
	require.True(t, errors.Is(err, vm.ErrAddressRange))
	require.Equal(t, vm.Tape{1}, tape)
}

func TestTape_growClearsStaleCells(t *testing.T) {
	tape := vm.Tape{1, 2, 3, 4, 5, 6, 7, 8}
	tape = tape[:2]
	require.NoError(t, tape.Write(3, 9))
	require.Equal(t, vm.Tape{1, 2, 0, 9, 0, 0}, tape)
}

func TestTape_Clone(t *testing.T) {
	require.Nil(t, vm.Tape(nil).Clone())
	tape := vm.Tape{1, 2, 3}
	c := tape.Clone()
	c[0] = 42
	require.Equal(t, vm.Cell(1), tape[0])
}

func TestTape_String(t *testing.T) {
	require.Equal(t, "", vm.Tape{}.String())
	require.Equal(t, "1,-2,99", vm.Tape{1, -2, 99}.String())
}
