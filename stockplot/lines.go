// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"stockaxes/stockval"
	"stockaxes/widgets"
)

// PlotLine draws a line through all points using the projection.
// Segments which stay within the same pixel are skipped.
func PlotLine(canvas Canvas, proj Projection, line stockval.Line, style widgets.LineStyle) {
	if len(line) <= 1 {
		return
	}
	px := proj.GetXpos(line[0].X)
	py := proj.GetYpos(line[0].Y)
	for _, p := range line[1:] {
		x := proj.GetXpos(p.X)
		y := proj.GetYpos(p.Y)
		if int(x) == int(px) && int(y) == int(py) {
			continue
		}
		canvas.DrawLine(px, py, x, y, style)
		px = x
		py = y
	}
}

// LineStyler is implemented by data sources which choose the style of their lines.
type LineStyler interface {
	LineStyles(theme *widgets.AxisTheme) []widgets.LineStyle
}

// DefaultLineStyles draws the first line as price line and all others as indicators.
func DefaultLineStyles(theme *widgets.AxisTheme, numLines int) []widgets.LineStyle {
	styles := make([]widgets.LineStyle, numLines)
	for i := range styles {
		if i == 0 {
			styles[i] = widgets.LineStyle{Color: theme.PriceLineColor, Width: 2}
		} else {
			styles[i] = widgets.LineStyle{Color: theme.IndicatorColor, Width: 1}
		}
	}
	return styles
}
