// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"fmt"
	"image/color"
	"stockaxes/config"
)

// MarketConvention selects which color marks prices above the reference.
// Chinese markets use red for rising prices, US markets use green.
type MarketConvention string

const (
	ConventionRedUp   MarketConvention = "red-up"
	ConventionGreenUp MarketConvention = "green-up"
)

// LineStyle is passed by value to every line drawing call.
type LineStyle struct {
	Color color.NRGBA
	Width float32
}

// LabelStyle is passed by value to every text drawing call.
// Size is in scaled pixels (sp) for on-screen canvases and in points for images.
type LabelStyle struct {
	Color color.NRGBA
	Size  float32
}

// WithColor returns a copy of the style using color c.
func (s LabelStyle) WithColor(c color.NRGBA) LabelStyle {
	s.Color = c
	return s
}

// FontMetrics are distances from the baseline, both positive.
type FontMetrics struct {
	Ascent  float32
	Descent float32
}

func (m FontMetrics) Height() float32 {
	return m.Ascent + m.Descent
}

type AxisTheme struct {
	Convention        MarketConvention
	GridLine          LineStyle
	BorderLine        LineStyle
	LeftLabel         LabelStyle
	RightLabel        LabelStyle
	BottomLabel       LabelStyle
	NeutralLabelColor color.NRGBA
	RiseColor         color.NRGBA
	FallColor         color.NRGBA
	BackgroundColor   color.NRGBA
	PriceLineColor    color.NRGBA
	IndicatorColor    color.NRGBA
}

var (
	labelRed   = color.NRGBA{R: 0xff, G: 0x2d, B: 0x19, A: 255}
	labelGreen = color.NRGBA{R: 0x33, G: 0xfd, B: 0x33, A: 255}
	labelGray  = color.NRGBA{R: 0xbd, G: 0xbe, B: 0xc1, A: 255}
)

const DefaultLabelSize = 17

func NewDarkAxisTheme(conv MarketConvention) *AxisTheme {
	th := &AxisTheme{
		GridLine:          LineStyle{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, Width: 1},
		BorderLine:        LineStyle{Color: color.NRGBA{R: 255, G: 0, B: 0, A: 255}, Width: 1},
		LeftLabel:         LabelStyle{Color: labelGray, Size: DefaultLabelSize},
		RightLabel:        LabelStyle{Color: labelGray, Size: DefaultLabelSize},
		BottomLabel:       LabelStyle{Color: labelGray, Size: DefaultLabelSize},
		NeutralLabelColor: labelGray,
		BackgroundColor:   color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 255},
		PriceLineColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		IndicatorColor:    color.NRGBA{R: 255, G: 200, B: 0, A: 255},
	}
	th.SetConvention(conv)
	return th
}

func NewLightAxisTheme(conv MarketConvention) *AxisTheme {
	th := &AxisTheme{
		GridLine:          LineStyle{Color: color.NRGBA{R: 230, G: 230, B: 230, A: 255}, Width: 1},
		BorderLine:        LineStyle{Color: color.NRGBA{R: 0, G: 0, B: 0, A: 255}, Width: 1},
		LeftLabel:         LabelStyle{Color: color.NRGBA{R: 0, G: 0, B: 0, A: 255}, Size: DefaultLabelSize},
		RightLabel:        LabelStyle{Color: color.NRGBA{R: 0, G: 0, B: 0, A: 255}, Size: DefaultLabelSize},
		BottomLabel:       LabelStyle{Color: color.NRGBA{R: 0, G: 0, B: 0, A: 255}, Size: DefaultLabelSize},
		NeutralLabelColor: color.NRGBA{R: 80, G: 80, B: 80, A: 255},
		BackgroundColor:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		PriceLineColor:    color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		IndicatorColor:    color.NRGBA{R: 0, G: 90, B: 200, A: 255},
	}
	th.SetConvention(conv)
	return th
}

// SetConvention assigns rise and fall colors. Unknown conventions fall back to red-up.
func (th *AxisTheme) SetConvention(conv MarketConvention) {
	switch conv {
	case ConventionGreenUp:
		th.Convention = ConventionGreenUp
		th.RiseColor = labelGreen
		th.FallColor = labelRed
	default:
		th.Convention = ConventionRedUp
		th.RiseColor = labelRed
		th.FallColor = labelGreen
	}
}

// SetLabelSize applies the same text size to all axis labels.
func (th *AxisTheme) SetLabelSize(size float32) {
	if size <= 0 {
		return
	}
	th.LeftLabel.Size = size
	th.RightLabel.Size = size
	th.BottomLabel.Size = size
}

// NewAxisThemeFromConfig builds a theme and applies the color overrides of c.
func NewAxisThemeFromConfig(c config.ChartConfig) (*AxisTheme, error) {
	var th *AxisTheme
	if c.LightTheme {
		th = NewLightAxisTheme(MarketConvention(c.Convention))
	} else {
		th = NewDarkAxisTheme(MarketConvention(c.Convention))
	}
	th.SetLabelSize(float32(c.LabelSize))
	overrides := []struct {
		value  string
		target *color.NRGBA
	}{
		{c.Colors.Rise, &th.RiseColor},
		{c.Colors.Fall, &th.FallColor},
		{c.Colors.Neutral, &th.NeutralLabelColor},
		{c.Colors.Grid, &th.GridLine.Color},
		{c.Colors.Border, &th.BorderLine.Color},
		{c.Colors.Background, &th.BackgroundColor},
	}
	for _, o := range overrides {
		if len(o.value) == 0 {
			continue
		}
		parsed, err := ParseColor(o.value)
		if err != nil {
			return nil, fmt.Errorf("invalid theme color: %w", err)
		}
		*o.target = parsed
	}
	return th, nil
}
