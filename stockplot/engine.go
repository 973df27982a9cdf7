// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"image/color"
	"stockaxes/config"
	"stockaxes/stockval"
	"stockaxes/widgets"
	"time"
)

type Options struct {
	HorizontalLines int
	VerticalLines   int
	Padding         float64
	// Milliseconds between two vertical lines.
	StepDuration  int64
	TimeFormatter TimeFormatter
}

func NewTimeFormatter(layout string, loc *time.Location) TimeFormatter {
	return func(timestamp int64) string {
		return time.UnixMilli(timestamp).In(loc).Format(layout)
	}
}

// OptionsFromConfig uses the label layout of the configured resolution in local time.
func OptionsFromConfig(c config.ChartConfig) Options {
	return Options{
		HorizontalLines: c.HorizontalLines,
		VerticalLines:   c.VerticalLines,
		Padding:         c.Padding,
		StepDuration:    c.StepDuration(),
		TimeFormatter:   NewTimeFormatter(c.Resolution.FormatString(), time.Local),
	}
}

// AxisLayoutEngine computes range and ticks of a chart once per data or size change,
// and draws them as often as needed.
type AxisLayoutEngine struct {
	renderer AxisRenderer
	opts     Options
	// Tick buffers are reused, they are rebuilt on every update.
	frame struct {
		valid      bool
		dims       Dimensions
		reference  float64
		axisRange  AxisRange
		valueTicks []AxisTick
		timeTicks  []AxisTick
		projection Projection
	}
}

func NewAxisLayoutEngine(theme *widgets.AxisTheme, opts Options) *AxisLayoutEngine {
	if opts.TimeFormatter == nil {
		opts.TimeFormatter = NewTimeFormatter(time.Kitchen, time.Local)
	}
	return &AxisLayoutEngine{
		renderer: AxisRenderer{Theme: theme},
		opts:     opts,
	}
}

func (e *AxisLayoutEngine) Theme() *widgets.AxisTheme {
	return e.renderer.Theme
}

// SetVerticalLines changes the number of vertical lines, e.g. to cover a trading session.
func (e *AxisLayoutEngine) SetVerticalLines(n int) {
	e.opts.VerticalLines = n
	e.frame.valid = false
}

// Update recomputes range and ticks. The time axis is anchored at the first point of the first line.
// On error the previous layout is discarded and Render draws nothing.
func (e *AxisLayoutEngine) Update(src DataSource, dims Dimensions) error {
	e.frame.valid = false
	lines := src.Lines()
	reference := src.PreClose()
	axisRange := ComputeRange(lines, reference, e.opts.Padding)

	valueTicks, err := appendValueTicks(e.frame.valueTicks[:0], axisRange, e.opts.HorizontalLines, dims.ContentHeight)
	e.frame.valueTicks = valueTicks
	if err != nil {
		return err
	}

	var anchor stockval.Line
	if len(lines) > 0 {
		anchor = lines[0]
	}
	var cellWidth float32
	if e.opts.VerticalLines > 1 {
		cellWidth = dims.Width / float32(e.opts.VerticalLines-1)
	}
	timeTicks, err := appendTimeTicks(e.frame.timeTicks[:0], anchor, e.opts.VerticalLines, cellWidth, e.opts.StepDuration)
	e.frame.timeTicks = timeTicks
	if err != nil {
		return err
	}

	e.frame.dims = dims
	e.frame.reference = reference
	e.frame.axisRange = axisRange
	e.frame.projection = newProjection(axisRange, dims.ContentHeight, anchor[0].X, e.opts.StepDuration, cellWidth)
	e.frame.valid = true
	return nil
}

// Render draws the value axis first, then the time axis.
func (e *AxisLayoutEngine) Render(canvas Canvas) {
	if !e.frame.valid {
		return
	}
	e.renderer.RenderValueAxis(canvas, e.frame.valueTicks, e.frame.reference, e.frame.dims.Width)
	e.renderer.RenderTimeAxis(canvas, e.frame.timeTicks, e.frame.dims, e.opts.TimeFormatter)
}

// RenderLines plots lines on top of the grid.
func (e *AxisLayoutEngine) RenderLines(canvas Canvas, lines []stockval.Line, style widgets.LineStyle) {
	if !e.frame.valid {
		return
	}
	for _, l := range lines {
		PlotLine(canvas, e.frame.projection, l, style)
	}
}

// RenderSource plots all lines of src, using the styles of src if it provides them.
func (e *AxisLayoutEngine) RenderSource(canvas Canvas, src DataSource) {
	lines := src.Lines()
	var styles []widgets.LineStyle
	if styler, ok := src.(LineStyler); ok {
		styles = styler.LineStyles(e.renderer.Theme)
	}
	if len(styles) < len(lines) {
		styles = DefaultLineStyles(e.renderer.Theme, len(lines))
	}
	for i, l := range lines {
		e.RenderLines(canvas, []stockval.Line{l}, styles[i])
	}
}

func (e *AxisLayoutEngine) BottomLabelHeight(canvas Canvas) float32 {
	return e.renderer.BottomLabelHeight(canvas)
}

// Reference returns the previous close of the last update.
func (e *AxisLayoutEngine) Reference() float64 {
	return e.frame.reference
}

func (e *AxisLayoutEngine) TickColor(c LabelColor) color.NRGBA {
	return e.renderer.TickColor(c)
}

func (e *AxisLayoutEngine) Range() AxisRange {
	return e.frame.axisRange
}

// ValueTicks returns the ticks of the last update. The slice is reused by the next update.
func (e *AxisLayoutEngine) ValueTicks() []AxisTick {
	return e.frame.valueTicks
}

// TimeTicks returns the ticks of the last update. The slice is reused by the next update.
func (e *AxisLayoutEngine) TimeTicks() []AxisTick {
	return e.frame.timeTicks
}

func (e *AxisLayoutEngine) Projection() Projection {
	return e.frame.projection
}

func (e *AxisLayoutEngine) FormatTime(timestamp int64) string {
	return e.opts.TimeFormatter(timestamp)
}
