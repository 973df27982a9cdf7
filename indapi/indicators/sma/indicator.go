// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package sma

import (
	"image/color"
	"log"
	"stockaxes/indapi"
	"stockaxes/indapi/properties"
	"stockaxes/stockval"
	"strconv"

	"github.com/cinar/indicator"
)

type Indicator struct {
	line       stockval.Line
	numPeriods int
	color      color.NRGBA
}

const Id = "sma"

func NewIndicator() indapi.IndicatorData {
	return &Indicator{numPeriods: 9}
}

func (d *Indicator) GetId() indapi.IndicatorId {
	return Id
}

func (d *Indicator) GetProperties() map[string]string {
	return map[string]string{
		"Time Periods": strconv.Itoa(d.numPeriods),
	}
}

func (d *Indicator) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Time Periods":
			properties.SetPositiveInt(&d.numPeriods, key, value)
		default:
			log.Printf("Unknown property %s was ignored.", key)
		}
	}
}

func (d *Indicator) GetColor() color.NRGBA {
	return d.color
}

func (d *Indicator) SetColor(c color.NRGBA) {
	d.color = c
}

// Update computes the moving average. The first values are averaged over fewer periods.
func (d *Indicator) Update(prices stockval.Line) {
	d.line = d.line[:0]
	if len(prices) == 0 {
		return
	}
	result := indicator.Sma(d.numPeriods, prices.Values())
	d.line = append(d.line, stockval.NewLine(prices.Timestamps(), result)...)
}

func (d *Indicator) Lines() []stockval.Line {
	if len(d.line) == 0 {
		return nil
	}
	return []stockval.Line{d.line}
}
