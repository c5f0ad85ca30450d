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
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_queue(t *testing.T) {
	var q queue
	require.Equal(t, 0, q.len())
	require.Nil(t, q.values())

	q.push()
	require.Nil(t, q.buf)

	q.push(1, 2, 3)
	require.Equal(t, 3, q.len())
	require.Equal(t, Cell(1), q.pop())
	q.push(4)
	require.Equal(t, []Cell{2, 3, 4}, q.values())

	for _, want := range []Cell{2, 3, 4} {
		require.Equal(t, want, q.pop())
	}
	require.Equal(t, 0, q.len())

	// a drained queue reuses its buffer from the start
	c := cap(q.buf)
	q.push(5)
	require.Equal(t, 0, q.head)
	require.Equal(t, c, cap(q.buf))
	require.Equal(t, []Cell{5}, q.values())
}

func Test_queue_valuesIsCopy(t *testing.T) {
	var q queue
	q.push(1, 2)
	v := q.values()
	v[0] = 42
	require.Equal(t, Cell(1), q.pop())
}
