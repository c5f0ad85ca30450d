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
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricValue(t dto.MetricType, m *dto.Metric) (float64, bool) {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	case dto.MetricType_UNTYPED:
		return m.GetUntyped().GetValue(), true
	}
	return 0, false
}

// dumpMetrics writes the non zero metrics gathered from g to w, one per line.
func dumpMetrics(g prometheus.Gatherer, w io.Writer) error {
	mfs, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "cannot gather metrics")
	}
	ew := ici.NewErrWriter(w)
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			v, ok := metricValue(mf.GetType(), m)
			if !ok || v == 0 {
				continue
			}
			io.WriteString(ew, mf.GetName())
			for n, lp := range m.GetLabel() {
				if n == 0 {
					ew.Write([]byte{'{'})
				} else {
					ew.Write([]byte{','})
				}
				io.WriteString(ew, lp.GetName()+"="+strconv.Quote(lp.GetValue()))
			}
			if len(m.GetLabel()) > 0 {
				ew.Write([]byte{'}'})
			}
			io.WriteString(ew, " "+strconv.FormatFloat(v, 'f', -1, 64)+"\n")
		}
	}
	return ew.Err
}
