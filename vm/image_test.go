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
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want vm.Tape
		err  bool
	}{
		{"", vm.Tape{}, false},
		{" \n", vm.Tape{}, false},
		{"99", vm.Tape{99}, false},
		{"1,0,0,0,99\n", vm.Tape{1, 0, 0, 0, 99}, false},
		{" 1, -2 ,\t3 ", vm.Tape{1, -2, 3}, false},
		{"1125899906842624", vm.Tape{1125899906842624}, false},
		{"1,,2", nil, true},
		{"1,2,", nil, true},
		{"1;2", nil, true},
		{"0x10", nil, true},
		{"99999999999999999999", nil, true},
	}
	for _, test := range tests {
		got, err := vm.ParseString(test.in)
		if test.err {
			require.Error(t, err, "%q", test.in)
			continue
		}
		require.NoError(t, err, "%q", test.in)
		require.Equal(t, test.want, got, "%q", test.in)
	}
}

func TestParse_zstd(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	src := enc.EncodeAll([]byte("109,19,204,-15,99\n"), nil)
	require.NoError(t, enc.Close())

	tape, err := vm.Parse(bytes.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, vm.Tape{109, 19, 204, -15, 99}, tape)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	tape := vm.Tape{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}
	for _, name := range []string{"prog.txt", "prog.txt.zst"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, vm.Save(fn, tape))
		got, err := vm.Load(fn)
		require.NoError(t, err)
		require.Equal(t, tape, got, name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "prog.txt"))
	require.NoError(t, err)
	require.Equal(t, "3,9,8,9,10,9,4,9,99,-1,8\n", string(raw))

	_, err = vm.Load(filepath.Join(dir, "missing"))
	require.Error(t, err)
	require.Error(t, vm.Save(filepath.Join(dir, "nodir", "prog"), tape))
}
