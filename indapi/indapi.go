// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indapi

import (
	"image/color"
	"stockaxes/stockval"
)

type IndicatorId string

// For sorting
type IndicatorList []IndicatorId

func (x IndicatorList) Len() int           { return len(x) }
func (x IndicatorList) Less(i, j int) bool { return x[i] < x[j] }
func (x IndicatorList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// IndicatorData is an overlay computed from the price line.
// Its lines share the value axis with the price line.
type IndicatorData interface {
	Update(prices stockval.Line)
	Lines() []stockval.Line
	GetId() IndicatorId
	GetProperties() map[string]string
	SetProperties(map[string]string)
	GetColor() color.NRGBA
	SetColor(color.NRGBA)
}

// GetNormalisedColor returns def if c is not set.
func GetNormalisedColor(c color.NRGBA, def color.NRGBA) color.NRGBA {
	if empty := (color.NRGBA{}); c == empty {
		return def
	}
	return c
}
