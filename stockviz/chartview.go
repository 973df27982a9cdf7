// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"image"
	"log"
	"stockaxes/chartdata"
	"stockaxes/stockplot"
	"stockaxes/widgets"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/widget/material"
)

// ChartView shows a single chart with its axes, filling the available space.
type ChartView struct {
	engine      *stockplot.AxisLayoutEngine
	canvas      *stockplot.GioCanvas
	message     *widgets.MessageField
	size        image.Point
	dataVersion uint64
	layoutValid bool
	lastErr     string
}

func NewChartView(engine *stockplot.AxisLayoutEngine, th *material.Theme) *ChartView {
	return &ChartView{
		engine:  engine,
		canvas:  stockplot.NewGioCanvas(th),
		message: widgets.NewMessageField(engine.Theme().NeutralLabelColor),
	}
}

// Layout recomputes range and ticks only if the size or the data have changed.
func (v *ChartView) Layout(gtx layout.Context, th *material.Theme, chart *chartdata.Chart, dataVersion uint64) layout.Dimensions {
	size := gtx.Constraints.Max
	v.canvas.Begin(gtx)
	if !v.layoutValid || size != v.size || dataVersion != v.dataVersion {
		v.size = size
		v.dataVersion = dataVersion
		chart.Refresh()
		dims := stockplot.NewDimensions(float32(size.X), float32(size.Y), v.engine.BottomLabelHeight(v.canvas))
		err := v.engine.Update(chart, dims)
		v.layoutValid = err == nil
		if err != nil && err.Error() != v.lastErr {
			// Log once, this is expected as long as there is no data.
			log.Printf("Chart layout not available: %v", err)
			v.lastErr = err.Error()
		}
	}
	if !v.layoutValid {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return v.message.Layout("Waiting for data...", gtx, th)
		})
	}
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	v.engine.Render(v.canvas)
	v.engine.RenderSource(v.canvas, chart)
	return layout.Dimensions{Size: size}
}
