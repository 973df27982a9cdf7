// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"stockaxes/widgets"
)

type Line struct {
	X0, Y0, X1, Y1 float32
	Style          widgets.LineStyle
}

type Text struct {
	Text  string
	X, Y  float32
	Style widgets.LabelStyle
}

// Canvas records all drawing calls. Every character is CharWidth pixels wide.
type Canvas struct {
	CharWidth float32
	Ascent    float32
	Descent   float32
	Lines     []Line
	Texts     []Text
}

func NewCanvas() *Canvas {
	return &Canvas{CharWidth: 10, Ascent: 12, Descent: 4}
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 float32, style widgets.LineStyle) {
	c.Lines = append(c.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Style: style})
}

func (c *Canvas) DrawText(text string, x, y float32, style widgets.LabelStyle) {
	c.Texts = append(c.Texts, Text{Text: text, X: x, Y: y, Style: style})
}

func (c *Canvas) MeasureText(text string, style widgets.LabelStyle) float32 {
	return float32(len([]rune(text))) * c.CharWidth
}

func (c *Canvas) Metrics(style widgets.LabelStyle) widgets.FontMetrics {
	return widgets.FontMetrics{Ascent: c.Ascent, Descent: c.Descent}
}

func (c *Canvas) Reset() {
	c.Lines = c.Lines[:0]
	c.Texts = c.Texts[:0]
}
