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

package ici

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	ew := NewErrWriter(&b)
	_, err := ew.Write([]byte("ok"))
	require.NoError(t, err)
	require.Equal(t, "ok", b.String())
	require.Same(t, ew, NewErrWriter(ew))

	fw := NewErrWriter(&failWriter{n: 1})
	_, err = fw.Write([]byte("a"))
	require.NoError(t, err)
	_, err = fw.Write([]byte("b"))
	require.EqualError(t, err, "write failed: disk full")
	n, err := fw.Write([]byte("c"))
	require.Zero(t, n)
	require.Same(t, fw.Err, err)
}
