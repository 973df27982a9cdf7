// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartimage

import (
	"fmt"
	"image/color"
	"io"
	"stockaxes/widgets"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

func FormatFromName(name string) (Format, error) {
	switch name {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return FormatPNG, fmt.Errorf("unsupported image format %q", name)
	}
}

// Canvas draws into a PNG or SVG image. Label sizes are in points.
type Canvas struct {
	r       chart.Renderer
	font    *truetype.Font
	width   int
	height  int
	metrics map[float32]widgets.FontMetrics
}

func NewCanvas(width, height int, format Format) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	var r chart.Renderer
	var err error
	if format == FormatSVG {
		r, err = chart.SVG(width, height)
	} else {
		r, err = chart.PNG(width, height)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	r.SetDPI(chart.DefaultDPI)
	r.SetFont(f)
	return &Canvas{
		r:       r,
		font:    f,
		width:   width,
		height:  height,
		metrics: make(map[float32]widgets.FontMetrics),
	}, nil
}

func toDrawingColor(c color.NRGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) FillBackground(bg color.NRGBA) {
	c.r.SetFillColor(toDrawingColor(bg))
	c.r.SetStrokeWidth(0)
	c.r.MoveTo(0, 0)
	c.r.LineTo(c.width, 0)
	c.r.LineTo(c.width, c.height)
	c.r.LineTo(0, c.height)
	c.r.Close()
	c.r.Fill()
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 float32, style widgets.LineStyle) {
	c.r.SetStrokeColor(toDrawingColor(style.Color))
	c.r.SetStrokeWidth(float64(style.Width))
	c.r.MoveTo(int(x0), int(y0))
	c.r.LineTo(int(x1), int(y1))
	c.r.Stroke()
}

func (c *Canvas) DrawText(text string, x, y float32, style widgets.LabelStyle) {
	c.r.SetFontColor(toDrawingColor(style.Color))
	c.r.SetFontSize(float64(style.Size))
	c.r.Text(text, int(x), int(y))
}

func (c *Canvas) MeasureText(text string, style widgets.LabelStyle) float32 {
	c.r.SetFontSize(float64(style.Size))
	return float32(c.r.MeasureText(text).Width())
}

func (c *Canvas) Metrics(style widgets.LabelStyle) widgets.FontMetrics {
	if m, ok := c.metrics[style.Size]; ok {
		return m
	}
	face := truetype.NewFace(c.font, &truetype.Options{
		Size: float64(style.Size),
		DPI:  c.r.GetDPI(),
	})
	fm := face.Metrics()
	m := widgets.FontMetrics{
		Ascent:  float32(fm.Ascent.Ceil()),
		Descent: float32(fm.Descent.Ceil()),
	}
	c.metrics[style.Size] = m
	return m
}

func (c *Canvas) Save(w io.Writer) error {
	err := c.r.Save(w)
	if err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
