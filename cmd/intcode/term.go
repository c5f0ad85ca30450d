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

package main

import (
	"bufio"
	"io"
)

// lineReader reads user input one line at a time. In raw terminal mode, it
// echoes input and handles backspace and CTRL-D itself.
type lineReader struct {
	r    *bufio.Reader
	echo *bufio.Writer
	raw  bool
}

func newLineReader(r io.Reader, echo *bufio.Writer, raw bool) *lineReader {
	return &lineReader{r: bufio.NewReader(r), echo: echo, raw: raw}
}

// readLine returns the next line of input, including the trailing new line.
// It returns io.EOF if no more input is available.
func (l *lineReader) readLine() (string, error) {
	if !l.raw {
		s, err := l.r.ReadString('\n')
		if err == io.EOF && s != "" {
			return s, nil
		}
		return s, err
	}
	var b []byte
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			return "", err
		}
		switch c {
		case 4: // CTRL-D
			if len(b) == 0 {
				return "", io.EOF
			}
		case 8, 127:
			if len(b) > 0 {
				b = b[:len(b)-1]
				l.echo.WriteString("\b \b")
			}
		case '\r', '\n':
			l.echo.WriteByte('\n')
			return string(append(b, '\n')), l.echo.Flush()
		default:
			b = append(b, c)
			l.echo.WriteByte(c)
		}
		if err = l.echo.Flush(); err != nil {
			return "", err
		}
	}
}
