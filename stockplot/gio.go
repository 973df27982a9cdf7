// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"image"
	"stockaxes/widgets"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	// The builtin gio stroke has a lot of issues, one being that horizontal and vertical lines
	// may have different thickness, even if the same width is specified.
	// We use the "x/stroke" extension instead.
	"gioui.org/x/stroke"
)

// Text used to determine ascent and descent of a font size.
const metricsSampleText = "0123456789%"

// GioCanvas draws into the operation list of a gio frame.
// Label sizes are in sp, line widths in dp.
type GioCanvas struct {
	th       *material.Theme
	gtx      layout.Context
	pxPerSp  float32
	metrics  map[float32]widgets.FontMetrics
	segments []stroke.Segment
	// Labels are laid out here for measuring only, never added to the frame.
	measureOps op.Ops
}

func NewGioCanvas(th *material.Theme) *GioCanvas {
	return &GioCanvas{
		th:      th,
		metrics: make(map[float32]widgets.FontMetrics),
	}
}

// Begin needs to be called for each frame before drawing.
func (c *GioCanvas) Begin(gtx layout.Context) {
	c.gtx = gtx
	c.gtx.Constraints.Min = image.Point{}
	c.measureOps.Reset()
	if gtx.Metric.PxPerSp != c.pxPerSp {
		// Cached metrics are in pixels, they are invalid if the scale changes.
		c.pxPerSp = gtx.Metric.PxPerSp
		clear(c.metrics)
	}
}

func (c *GioCanvas) DrawLine(x0, y0, x1, y1 float32, style widgets.LineStyle) {
	var path stroke.Path
	// Reuse segment buffer, there are many lines per frame.
	path.Segments = append(c.segments[:0],
		stroke.MoveTo(f32.Pt(x0, y0)),
		stroke.LineTo(f32.Pt(x1, y1)),
	)
	c.segments = path.Segments
	width := float32(c.gtx.Dp(unit.Dp(style.Width)))
	paint.FillShape(c.gtx.Ops, style.Color, stroke.Stroke{Path: path, Width: width}.Op(c.gtx.Ops))
}

func (c *GioCanvas) layoutLabel(gtx layout.Context, labelText string, style widgets.LabelStyle) layout.Dimensions {
	lbl := material.Label(c.th, unit.Sp(style.Size), labelText)
	lbl.Color = style.Color
	lbl.Alignment = text.Start
	lbl.MaxLines = 1
	return lbl.Layout(gtx)
}

func (c *GioCanvas) measureLabel(labelText string, style widgets.LabelStyle) layout.Dimensions {
	gtx := c.gtx
	gtx.Ops = &c.measureOps
	return c.layoutLabel(gtx, labelText, style)
}

func (c *GioCanvas) DrawText(labelText string, x, y float32, style widgets.LabelStyle) {
	macro := op.Record(c.gtx.Ops)
	dims := c.layoutLabel(c.gtx, labelText, style)
	call := macro.Stop()
	// Labels are laid out from their top left corner, y is the baseline.
	ascent := dims.Size.Y - dims.Baseline
	stack := op.Offset(image.Point{X: int(x), Y: int(y) - ascent}).Push(c.gtx.Ops)
	call.Add(c.gtx.Ops)
	stack.Pop()
}

func (c *GioCanvas) MeasureText(labelText string, style widgets.LabelStyle) float32 {
	return float32(c.measureLabel(labelText, style).Size.X)
}

func (c *GioCanvas) Metrics(style widgets.LabelStyle) widgets.FontMetrics {
	if m, ok := c.metrics[style.Size]; ok {
		return m
	}
	dims := c.measureLabel(metricsSampleText, style)
	m := widgets.FontMetrics{
		Ascent:  float32(dims.Size.Y - dims.Baseline),
		Descent: float32(dims.Baseline),
	}
	c.metrics[style.Size] = m
	return m
}
