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

// queue is the VM input stream. Values are consumed from the front in the
// order they were pushed.
type queue struct {
	buf  []Cell
	head int
}

func (q *queue) push(v ...Cell) {
	if len(v) == 0 {
		return
	}
	if q.head == len(q.buf) {
		// fully drained, reuse the buffer
		q.buf, q.head = q.buf[:0], 0
	}
	q.buf = append(q.buf, v...)
}

func (q *queue) pop() Cell {
	v := q.buf[q.head]
	q.head++
	return v
}

func (q *queue) len() int {
	return len(q.buf) - q.head
}

func (q *queue) values() []Cell {
	if q.len() == 0 {
		return nil
	}
	return append([]Cell(nil), q.buf[q.head:]...)
}
