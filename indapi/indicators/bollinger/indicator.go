// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package bollinger

import (
	"image/color"
	"log"
	"stockaxes/indapi"
	"stockaxes/indapi/calc"
	"stockaxes/indapi/properties"
	"stockaxes/stockval"
	"strconv"

	"github.com/ericlagergren/decimal"
)

type Indicator struct {
	top       stockval.Line
	mid       stockval.Line
	bottom    stockval.Line
	prices    []*decimal.Big
	timeUnits int
	bandWidth float64
	color     color.NRGBA
}

const Id = "bollinger"

func NewIndicator() indapi.IndicatorData {
	return &Indicator{timeUnits: 20, bandWidth: 2}
}

func (d *Indicator) GetId() indapi.IndicatorId {
	return Id
}

func (d *Indicator) GetProperties() map[string]string {
	return map[string]string{
		"Width":      properties.FormatFloat(d.bandWidth),
		"Time Units": strconv.Itoa(d.timeUnits),
	}
}

func (d *Indicator) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case "Width":
			properties.SetPositiveFloat(&d.bandWidth, key, value)
		case "Time Units":
			properties.SetPositiveInt(&d.timeUnits, key, value)
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

func (d *Indicator) Update(prices stockval.Line) {
	d.top = d.top[:0]
	d.mid = d.mid[:0]
	d.bottom = d.bottom[:0]
	d.prices = d.prices[:0]
	for i := range prices {
		d.prices = append(d.prices, stockval.ConvertFloatToDecimal(prices[i].Y, 64))
	}
	width := stockval.ConvertFloatToDecimal(d.bandWidth, 64)
	for i := range prices {
		subSet := d.prices[max(0, i+1-d.timeUnits) : i+1]
		mean := calc.Mean(new(decimal.Big), subSet)
		stdDev := calc.StdDev(new(decimal.Big), subSet)
		stdDev.Mul(stdDev, width)
		top := new(decimal.Big).Add(mean, stdDev)
		bottom := new(decimal.Big).Sub(mean, stdDev)
		x := prices[i].X
		d.top = append(d.top, stockval.Point{X: x, Y: toFloat(top)})
		d.mid = append(d.mid, stockval.Point{X: x, Y: toFloat(mean)})
		d.bottom = append(d.bottom, stockval.Point{X: x, Y: toFloat(bottom)})
	}
}

func (d *Indicator) Lines() []stockval.Line {
	if len(d.mid) == 0 {
		return nil
	}
	return []stockval.Line{d.top, d.mid, d.bottom}
}

func toFloat(v *decimal.Big) float64 {
	f, _ := v.Float64()
	return f
}
