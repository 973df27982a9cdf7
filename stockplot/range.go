// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"math"
	"stockaxes/stockval"
)

// ComputeRange returns a value range which is symmetric around the reference value
// and contains all values of all lines plus padding on both sides.
// Only positive values are considered for the minimum, zero means "no data".
func ComputeRange(lines []stockval.Line, reference, padding float64) AxisRange {
	minValue := math.MaxFloat64
	maxValue := -math.MaxFloat64
	hasValues := false
	for _, l := range lines {
		for _, p := range l {
			hasValues = true
			if p.Y > maxValue {
				maxValue = p.Y
			}
			if p.Y > 0 && p.Y < minValue {
				minValue = p.Y
			}
		}
	}
	var diff float64
	if hasValues {
		if minValue == math.MaxFloat64 {
			minValue = maxValue
		}
		diff = math.Max(math.Abs(minValue-reference), math.Abs(maxValue-reference))
	}
	r := AxisRange{
		Min: reference - diff - padding,
		Max: reference + diff + padding,
	}
	if r.Span() < stockval.NearZero {
		r.Min -= 1
		r.Max += 1
	}
	return r
}
