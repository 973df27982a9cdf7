// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"time"
)

// Point is a single plotted value. X is a unix timestamp in milliseconds, Y is a price.
type Point struct {
	X int64   `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Time() time.Time {
	return time.UnixMilli(p.X)
}

// Line is a plotted series, ordered by timestamp.
type Line []Point

func (l Line) Timestamps() []int64 {
	t := make([]int64, len(l))
	for i := range l {
		t[i] = l[i].X
	}
	return t
}

func (l Line) Values() []float64 {
	v := make([]float64, len(l))
	for i := range l {
		v[i] = l[i].Y
	}
	return v
}

// NewLine combines timestamps and values. The shorter slice determines the length,
// values are aligned to the end of the timestamps, as indicator results usually are.
func NewLine(timestamps []int64, values []float64) Line {
	n := min(len(timestamps), len(values))
	l := make(Line, n)
	offsetT := len(timestamps) - n
	offsetV := len(values) - n
	for i := 0; i < n; i++ {
		l[i] = Point{X: timestamps[offsetT+i], Y: values[offsetV+i]}
	}
	return l
}
