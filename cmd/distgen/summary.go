/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/mukherjeesagar/simulation-of-probabilities/data"
	"github.com/mukherjeesagar/simulation-of-probabilities/sample"
)

// summary describes one column of drawn variates.
type summary struct {
	name     string
	params   string
	count    int
	mean     float64
	expected float64
	stddev   float64
	min      float64
	max      float64
}

func summarize(name, params string, vec data.Vector[float64], expected float64) summary {
	return summary{
		name:     name,
		params:   params,
		count:    len(vec),
		mean:     vec.Mean(),
		expected: expected,
		stddev:   math.Sqrt(vec.Variance()),
		min:      floats.Min(vec),
		max:      floats.Max(vec),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func renderSummaries(w io.Writer, rows []summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Distribution", "Parameters", "Count", "Mean", "Expected", "StdDev", "Min", "Max"})
	for _, r := range rows {
		table.Append([]string{
			r.name,
			r.params,
			strconv.Itoa(r.count),
			formatFloat(r.mean),
			formatFloat(r.expected),
			formatFloat(r.stddev),
			formatFloat(r.min),
			formatFloat(r.max),
		})
	}
	table.Render()
}

// drawN draws count variates of d. ys is nil for univariate distributions.
func drawN(d *distribution, p params, src sample.Source, count int) (xs, ys data.Vector[float64], err error) {
	if count < 1 {
		return nil, nil, errors.Errorf("count must be at least 1, got %d", count)
	}
	draw, err := d.build(src, p)
	if err != nil {
		return nil, nil, err
	}

	return draw(count)
}

func summarizeDraw(d *distribution, p params, xs, ys data.Vector[float64]) []summary {
	if ys == nil {
		return []summary{summarize(d.name, d.describe(p), xs, d.expected(p))}
	}

	return []summary{
		summarize(d.name+" (x)", d.describe(p), xs, d.expected(p)),
		summarize(d.name+" (y)", d.describe(p), ys, d.expected(p)),
	}
}

func writeVariates(w io.Writer, d *distribution, xs, ys data.Vector[float64]) error {
	bw := bufio.NewWriter(w)
	format := func(f float64) string {
		if d.discrete {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	for i, x := range xs {
		line := format(x)
		if ys != nil {
			line += "\t" + format(ys[i])
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
