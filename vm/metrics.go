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
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects execution statistics for one or more instances. It is
// safe for concurrent use. A nil *Metrics is valid and collects nothing.
type Metrics struct {
	instructions map[Opcode]prometheus.Counter
	interrupts   *prometheus.CounterVec
	growth       prometheus.Counter
}

// NewMetrics creates a new Metrics and registers its collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	ins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "intcode",
		Name:      "instructions_total",
		Help:      "Number of executed instructions by opcode.",
	}, []string{"op"})
	m := &Metrics{
		instructions: make(map[Opcode]prometheus.Counter, len(opcodes)),
		interrupts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intcode",
			Name:      "interrupts_total",
			Help:      "Number of runs stopped by reason.",
		}, []string{"reason"}),
		growth: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intcode",
			Name:      "tape_growth_cells_total",
			Help:      "Number of cells added to tapes by automatic growth.",
		}),
	}
	for op, info := range opcodes {
		m.instructions[op] = ins.WithLabelValues(info.name)
	}
	for _, c := range []prometheus.Collector{ins, m.interrupts, m.growth} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "metrics registration failed")
		}
	}
	return m, nil
}

func (m *Metrics) executed(op Opcode) {
	if m == nil {
		return
	}
	m.instructions[op].Inc()
}

func (m *Metrics) interrupted(r Reason) {
	if m == nil {
		return
	}
	m.interrupts.WithLabelValues(r.String()).Inc()
}

func (m *Metrics) grew(n int) {
	if m == nil {
		return
	}
	m.growth.Add(float64(n))
}

// Instructions returns the counter of executed instructions for op, or nil if
// op is not a valid opcode or m is nil.
func (m *Metrics) Instructions(op Opcode) prometheus.Counter {
	if m == nil {
		return nil
	}
	return m.instructions[op]
}

// Interrupts returns the counter of runs stopped for reason r, or nil if m is
// nil.
func (m *Metrics) Interrupts(r Reason) prometheus.Counter {
	if m == nil {
		return nil
	}
	return m.interrupts.WithLabelValues(r.String())
}

// Growth returns the counter of cells added by tape growth, or nil if m is
// nil.
func (m *Metrics) Growth() prometheus.Counter {
	if m == nil {
		return nil
	}
	return m.growth
}
