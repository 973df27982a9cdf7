// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartimage

import (
	"bytes"
	"image/png"
	"stockaxes/stockplot"
	"stockaxes/stockval"
	"stockaxes/widgets"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSource struct{}

func (testSource) Lines() []stockval.Line {
	return []stockval.Line{{{X: 1000, Y: 95}, {X: 3601000, Y: 99}, {X: 7201000, Y: 105}}}
}

func (testSource) PreClose() float64 {
	return 100
}

func newTestEngine() *stockplot.AxisLayoutEngine {
	return stockplot.NewAxisLayoutEngine(widgets.NewDarkAxisTheme(widgets.ConventionRedUp), stockplot.Options{
		HorizontalLines: 4,
		VerticalLines:   3,
		Padding:         30,
		StepDuration:    7200000,
	})
}

func TestFormatFromName(t *testing.T) {
	f, err := FormatFromName("svg")
	assert.NoError(t, err)
	assert.Equal(t, FormatSVG, f)
	_, err = FormatFromName("gif")
	assert.Error(t, err)
}

func TestCanvasMetrics(t *testing.T) {
	canvas, err := NewCanvas(200, 100, FormatPNG)
	require.NoError(t, err)
	style := widgets.LabelStyle{Size: 12}
	m := canvas.Metrics(style)
	assert.Greater(t, m.Ascent, m.Descent)
	assert.Greater(t, m.Descent, float32(0))
	assert.Greater(t, canvas.MeasureText("100.00", style), canvas.MeasureText("1", style))
}

func TestNewCanvasInvalidSize(t *testing.T) {
	_, err := NewCanvas(0, 100, FormatPNG)
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Render(&b, newTestEngine(), testSource{}, 640, 480, FormatPNG))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestRenderSVG(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Render(&b, newTestEngine(), testSource{}, 640, 480, FormatSVG))
	svg := b.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, ">135.00</text>")
	assert.Contains(t, svg, ">35.00%</text>")
	assert.Contains(t, svg, ">100.00</text>")
}

type emptySource struct{}

func (emptySource) Lines() []stockval.Line { return nil }
func (emptySource) PreClose() float64      { return 100 }

func TestRenderEmpty(t *testing.T) {
	var b bytes.Buffer
	err := Render(&b, newTestEngine(), emptySource{}, 640, 480, FormatPNG)
	assert.ErrorIs(t, err, stockplot.ErrInvalidInput)
}
