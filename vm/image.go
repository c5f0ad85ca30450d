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
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Parse reads a program from r. The program must be a list of decimal
// integers separated by commas. Leading and trailing white space around each
// integer is ignored. Zstandard compressed input is detected and decompressed
// transparently.
func Parse(r io.Reader) (Tape, error) {
	br := bufio.NewReader(r)
	if magic, _ := br.Peek(len(zstdMagic)); bytes.Equal(magic, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "Parse")
		}
		defer dec.Close()
		r = dec
	} else {
		r = br
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return Tape{}, nil
	}
	fields := strings.Split(s, ",")
	t := make(Tape, len(fields))
	for n, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: cell %d", n)
		}
		t[n] = Cell(v)
	}
	return t, nil
}

// ParseString is a shorthand for Parse(strings.NewReader(s)).
func ParseString(s string) (Tape, error) {
	return Parse(strings.NewReader(s))
}

// Load loads a program from file fileName. See Parse for the file format.
func Load(fileName string) (Tape, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return t, nil
}

// Save saves the tape to file fileName in the format accepted by Load. The
// file is Zstandard compressed if fileName ends with ".zst". On error, the
// file is removed.
func Save(fileName string, t Tape) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		if err != nil {
			os.Remove(fileName)
		}
	}()
	var w io.WriteCloser = nopCloser{f}
	if strings.HasSuffix(fileName, ".zst") {
		if w, err = zstd.NewWriter(f); err != nil {
			return errors.Wrap(err, "save failed")
		}
	}
	if _, err = io.WriteString(w, t.String()+"\n"); err != nil {
		w.Close()
		return errors.Wrap(err, "write failed")
	}
	return errors.Wrap(w.Close(), "save failed")
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
