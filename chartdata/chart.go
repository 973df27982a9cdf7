// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"fmt"
	"image/color"
	"stockaxes/config"
	"stockaxes/indapi"
	"stockaxes/indapi/indicators"
	"stockaxes/stockplot"
	"stockaxes/stockval"
	"stockaxes/widgets"
)

const (
	priceLineWidth     = 2
	indicatorLineWidth = 1
)

// Chart draws the price lines of a source together with overlay indicators.
// Lines returns the snapshot of the last Refresh, so that layout and plotting use the same data.
type Chart struct {
	src        stockplot.DataSource
	indicators []indapi.IndicatorData
	lines      []stockval.Line
	// Indicator of each line, nil for price lines.
	owners   []indapi.IndicatorData
	preClose float64
}

func NewChart(src stockplot.DataSource, indicatorConfigs []config.IndicatorConfig) (*Chart, error) {
	c := &Chart{src: src}
	for _, ic := range indicatorConfigs {
		var col color.NRGBA
		if len(ic.Color) > 0 {
			var err error
			col, err = widgets.ParseColor(ic.Color)
			if err != nil {
				return nil, fmt.Errorf("indicator %s: %w", ic.IndicatorId, err)
			}
		}
		ind, err := indicators.Create(ic.IndicatorId, ic.Properties, col)
		if err != nil {
			return nil, err
		}
		c.indicators = append(c.indicators, ind)
	}
	c.Refresh()
	return c, nil
}

func (c *Chart) Indicators() []indapi.IndicatorData {
	return c.indicators
}

// Refresh takes a new snapshot of the source and recalculates the indicators
// from its first line.
func (c *Chart) Refresh() {
	c.lines = c.lines[:0]
	c.owners = c.owners[:0]
	prices := c.src.Lines()
	c.preClose = c.src.PreClose()
	for _, l := range prices {
		c.lines = append(c.lines, l)
		c.owners = append(c.owners, nil)
	}
	if len(prices) == 0 {
		return
	}
	for _, ind := range c.indicators {
		ind.Update(prices[0])
		for _, l := range ind.Lines() {
			c.lines = append(c.lines, l)
			c.owners = append(c.owners, ind)
		}
	}
}

func (c *Chart) Lines() []stockval.Line {
	return c.lines
}

func (c *Chart) PreClose() float64 {
	return c.preClose
}

// LineStyles uses the indicator color if it is set, and the theme colors otherwise.
func (c *Chart) LineStyles(theme *widgets.AxisTheme) []widgets.LineStyle {
	styles := make([]widgets.LineStyle, len(c.owners))
	for i, ind := range c.owners {
		if ind == nil {
			styles[i] = widgets.LineStyle{Color: theme.PriceLineColor, Width: priceLineWidth}
		} else {
			styles[i] = widgets.LineStyle{
				Color: indapi.GetNormalisedColor(ind.GetColor(), theme.IndicatorColor),
				Width: indicatorLineWidth,
			}
		}
	}
	return styles
}
