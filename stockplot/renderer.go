// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"image/color"
	"stockaxes/stockval"
	"stockaxes/widgets"
)

// AxisRenderer draws grid lines and labels of precomputed ticks.
// It never modifies the ticks.
type AxisRenderer struct {
	Theme *widgets.AxisTheme
}

// TickColor maps the semantic color of a tick to the theme.
func (r AxisRenderer) TickColor(c LabelColor) color.NRGBA {
	switch c {
	case LabelAbove:
		return r.Theme.RiseColor
	case LabelBelow:
		return r.Theme.FallColor
	default:
		return r.Theme.NeutralLabelColor
	}
}

func (r AxisRenderer) lineStyle(i, n int) widgets.LineStyle {
	if i == 0 || i == n-1 {
		return r.Theme.BorderLine
	}
	return r.Theme.GridLine
}

// valueLabelBaseline keeps labels inside the chart: the first label hangs below its line,
// the last one sits on top of its line, all others are centered.
func valueLabelBaseline(i, n int, pos float32, m widgets.FontMetrics) float32 {
	switch i {
	case 0:
		return pos + m.Ascent
	case n - 1:
		return pos
	default:
		return pos + (m.Ascent-m.Descent)/2
	}
}

// RenderValueAxis draws horizontal lines with the value on the left
// and the distance to the reference in percent on the right.
func (r AxisRenderer) RenderValueAxis(canvas Canvas, ticks []AxisTick, reference float64, width float32) {
	n := len(ticks)
	for i, tick := range ticks {
		canvas.DrawLine(0, tick.Position, width, tick.Position, r.lineStyle(i, n))

		c := r.TickColor(tick.Color)
		left := r.Theme.LeftLabel.WithColor(c)
		canvas.DrawText(
			stockval.FormatPrice(tick.Value),
			0,
			valueLabelBaseline(i, n, tick.Position, canvas.Metrics(left)),
			left,
		)

		right := r.Theme.RightLabel.WithColor(c)
		percentage := stockval.FormatPercentage(reference, tick.Value)
		canvas.DrawText(
			percentage,
			width-canvas.MeasureText(percentage, right),
			valueLabelBaseline(i, n, tick.Position, canvas.Metrics(right)),
			right,
		)
	}
}

// RenderTimeAxis draws vertical lines within the content area and time labels below them.
// The first and last labels are aligned to the chart borders, all others are centered.
func (r AxisRenderer) RenderTimeAxis(canvas Canvas, ticks []AxisTick, dims Dimensions, format TimeFormatter) {
	n := len(ticks)
	style := r.Theme.BottomLabel
	baseline := dims.Height - canvas.Metrics(style).Descent
	for i, tick := range ticks {
		canvas.DrawLine(tick.Position, 0, tick.Position, dims.ContentHeight, r.lineStyle(i, n))

		label := format(int64(tick.Value))
		textWidth := canvas.MeasureText(label, style)
		var x float32
		switch i {
		case 0:
			x = 0
		case n - 1:
			x = dims.Width - textWidth
		default:
			x = tick.Position - textWidth/2
		}
		canvas.DrawText(label, x, baseline, style)
	}
}

// BottomLabelHeight is the space needed below the chart for time labels.
func (r AxisRenderer) BottomLabelHeight(canvas Canvas) float32 {
	return canvas.Metrics(r.Theme.BottomLabel).Height()
}
