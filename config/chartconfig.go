// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"log"
	"stockaxes/indapi/candles"
	"stockaxes/indapi/indicators"
)

const (
	DefaultHorizontalLines = 4
	DefaultVerticalLines   = 5
	DefaultPadding         = 30
	// Two hours between vertical grid lines.
	DefaultStepMillis  = 7200000
	DefaultLabelSize   = 17
	DefaultConvention  = "red-up"
	DefaultResolution  = candles.CandleFifteenMinutes
	minGridLineCount   = 2
	envOverridesPrefix = "STOCKAXES_"
)

// ColorConfig overrides theme colors, either "#rrggbb" or a color name.
type ColorConfig struct {
	Rise       string `yaml:",omitempty" env:"RISE"`
	Fall       string `yaml:",omitempty" env:"FALL"`
	Neutral    string `yaml:",omitempty" env:"NEUTRAL"`
	Grid       string `yaml:",omitempty" env:"GRID"`
	Border     string `yaml:",omitempty" env:"BORDER"`
	Background string `yaml:",omitempty" env:"BACKGROUND"`
}

type ChartConfig struct {
	HorizontalLines int                      `yaml:",omitempty" env:"HORIZONTAL_LINES"`
	VerticalLines   int                      `yaml:",omitempty" env:"VERTICAL_LINES"`
	Padding         float64                  `env:"PADDING"`
	Resolution      candles.CandleResolution `env:"RESOLUTION"`
	// Zero means the step is derived from the resolution.
	StepMillis int64             `env:"STEP_MILLIS"`
	LabelSize  int               `yaml:",omitempty" env:"LABEL_SIZE"`
	LightTheme bool              `yaml:",omitempty" env:"LIGHT_THEME"`
	Convention string            `yaml:",omitempty" env:"CONVENTION"`
	Colors     ColorConfig       `yaml:",omitempty" envPrefix:"COLOR_"`
	Indicators []IndicatorConfig `yaml:",omitempty" env:"-"`
}

func NewChartConfig() ChartConfig {
	return ChartConfig{
		HorizontalLines: DefaultHorizontalLines,
		VerticalLines:   DefaultVerticalLines,
		Padding:         DefaultPadding,
		Resolution:      DefaultResolution,
		StepMillis:      DefaultStepMillis,
		LabelSize:       DefaultLabelSize,
		Convention:      DefaultConvention,
	}
}

// StepDuration returns the time between two vertical grid lines in milliseconds.
func (c *ChartConfig) StepDuration() int64 {
	if c.StepMillis > 0 {
		return c.StepMillis
	}
	return c.Resolution.AxisStep().Milliseconds()
}

func (c *ChartConfig) Sanitize() {
	if c.HorizontalLines < minGridLineCount {
		c.HorizontalLines = DefaultHorizontalLines
	}
	if c.VerticalLines < minGridLineCount {
		c.VerticalLines = DefaultVerticalLines
	}
	if c.Padding < 0 {
		c.Padding = DefaultPadding
	}
	if c.StepMillis < 0 {
		c.StepMillis = 0
	}
	if !c.Resolution.IsValid() {
		c.Resolution = DefaultResolution
	}
	var valid []IndicatorConfig
	for _, ind := range c.Indicators {
		if !indicators.IsValid(ind.IndicatorId) {
			log.Printf("Unknown indicator %s was removed from the configuration.", ind.IndicatorId)
			continue
		}
		valid = append(valid, ind)
	}
	c.Indicators = valid
	c.restoreDefaults()
}

func (c *ChartConfig) removeDefaults() {
	if c.HorizontalLines == DefaultHorizontalLines {
		c.HorizontalLines = 0
	}
	if c.VerticalLines == DefaultVerticalLines {
		c.VerticalLines = 0
	}
	if c.LabelSize == DefaultLabelSize {
		c.LabelSize = 0
	}
	if c.Convention == DefaultConvention {
		c.Convention = ""
	}
}

func (c *ChartConfig) restoreDefaults() {
	if c.HorizontalLines == 0 {
		c.HorizontalLines = DefaultHorizontalLines
	}
	if c.VerticalLines == 0 {
		c.VerticalLines = DefaultVerticalLines
	}
	if c.LabelSize <= 0 {
		c.LabelSize = DefaultLabelSize
	}
	if len(c.Convention) == 0 {
		c.Convention = DefaultConvention
	}
}
