// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"stockaxes/stockval"
	"stockaxes/widgets"
)

// Canvas is the drawing surface of the chart. Coordinates are in pixels,
// the origin is the top left corner and y grows downwards.
// Text is positioned by its left baseline point.
type Canvas interface {
	DrawLine(x0, y0, x1, y1 float32, style widgets.LineStyle)
	DrawText(text string, x, y float32, style widgets.LabelStyle)
	MeasureText(text string, style widgets.LabelStyle) float32
	Metrics(style widgets.LabelStyle) widgets.FontMetrics
}

// DataSource provides the plotted lines and the reference value (previous close).
type DataSource interface {
	Lines() []stockval.Line
	PreClose() float64
}

// Dimensions of the chart in pixels.
// ContentHeight excludes the strip of time labels at the bottom.
type Dimensions struct {
	Width         float32
	Height        float32
	ContentHeight float32
}

// NewDimensions reserves labelHeight at the bottom for time labels.
func NewDimensions(width, height, labelHeight float32) Dimensions {
	return Dimensions{
		Width:         width,
		Height:        height,
		ContentHeight: max(height-labelHeight, 0),
	}
}

// TimeFormatter converts a time tick value (unix milliseconds) to label text.
type TimeFormatter func(timestamp int64) string
