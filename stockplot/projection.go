// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import "stockaxes/stockval"

// Projection maps values and timestamps to pixels, consistent with the axis ticks.
type Projection struct {
	r            AxisRange
	height       float64
	start        float64
	stepDuration float64
	cellWidth    float64
}

func newProjection(r AxisRange, contentHeight float32, start int64, stepDuration int64, cellWidth float32) Projection {
	return Projection{
		r:            r,
		height:       float64(contentHeight),
		start:        float64(start),
		stepDuration: float64(max(stepDuration, 0)),
		cellWidth:    float64(cellWidth),
	}
}

func (proj Projection) GetXpos(timestamp int64) float32 {
	return float32(stockval.Lerp(float64(timestamp), proj.start, proj.start+proj.stepDuration, 0, proj.cellWidth))
}

// GetYpos maps the range maximum to the top and the minimum to the bottom of the content.
func (proj Projection) GetYpos(v float64) float32 {
	return float32(stockval.Lerp(v, proj.r.Max, proj.r.Min, 0, proj.height))
}
