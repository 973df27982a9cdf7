// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"stockaxes/stockval"
)

// GenerateValueTicks divides the range into tickCount cells, starting at the top (Max).
// Ticks above the middle one are labelled as above the reference, ticks below it as below.
func GenerateValueTicks(r AxisRange, tickCount int, pixelHeight float32) ([]AxisTick, error) {
	return appendValueTicks(nil, r, tickCount, pixelHeight)
}

func appendValueTicks(ticks []AxisTick, r AxisRange, tickCount int, pixelHeight float32) ([]AxisTick, error) {
	if tickCount < 2 {
		return ticks, &InvalidInputError{Op: "value ticks", Reason: "at least two lines are required"}
	}
	step := r.Span() / float64(tickCount)
	pxStep := pixelHeight / float32(tickCount)
	middle := tickCount / 2
	for i := 0; i < tickCount; i++ {
		color := LabelNeutral
		if i < middle {
			color = LabelAbove
		} else if i > middle {
			color = LabelBelow
		}
		ticks = append(ticks, AxisTick{
			Value:    r.Max - float64(i)*step,
			Position: float32(i) * pxStep,
			Color:    color,
		})
	}
	return ticks, nil
}

// GenerateTimeTicks places lineCount vertical lines, the first one at the time of the first point.
// The last line is moved one pixel inwards so that it is not clipped at the border.
func GenerateTimeTicks(points stockval.Line, lineCount int, cellWidth float32, stepDuration int64) ([]AxisTick, error) {
	return appendTimeTicks(nil, points, lineCount, cellWidth, stepDuration)
}

func appendTimeTicks(ticks []AxisTick, points stockval.Line, lineCount int, cellWidth float32, stepDuration int64) ([]AxisTick, error) {
	if len(points) == 0 {
		return ticks, &InvalidInputError{Op: "time ticks", Reason: "no points to anchor the time axis"}
	}
	if lineCount < 2 {
		return ticks, &InvalidInputError{Op: "time ticks", Reason: "at least two lines are required"}
	}
	start := points[0].X
	for i := 0; i < lineCount; i++ {
		pos := float32(i) * cellWidth
		if i == lineCount-1 {
			pos -= 1
		}
		ticks = append(ticks, AxisTick{
			Value:    float64(start + int64(i)*stepDuration),
			Position: pos,
			Color:    LabelNeutral,
		})
	}
	return ticks, nil
}
