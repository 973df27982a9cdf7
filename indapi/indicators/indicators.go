// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package indicators

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"stockaxes/indapi"
	"stockaxes/indapi/indicators/bollinger"
	"stockaxes/indapi/indicators/sma"

	"golang.org/x/exp/maps"
)

var ErrUnknownIndicator = errors.New("unknown indicator")

// Overlay indicators only, their values share the value axis with the price.
var registry = map[indapi.IndicatorId]func() indapi.IndicatorData{
	bollinger.Id: bollinger.NewIndicator,
	sma.Id:       sma.NewIndicator,
}

func IsValid(id indapi.IndicatorId) bool {
	_, ok := registry[id]
	return ok
}

// Create returns a new indicator. Properties which are not set keep their defaults.
func Create(id indapi.IndicatorId, properties map[string]string, color color.NRGBA) (indapi.IndicatorData, error) {
	newIndicator, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w %q, available: %v", ErrUnknownIndicator, id, GetList())
	}
	ind := newIndicator()
	ind.SetProperties(properties)
	ind.SetColor(color)
	return ind, nil
}

func GetDefaultProperties(id indapi.IndicatorId) (map[string]string, error) {
	newIndicator, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownIndicator, id)
	}
	return newIndicator().GetProperties(), nil
}

func GetList() indapi.IndicatorList {
	l := indapi.IndicatorList(maps.Keys(registry))
	sort.Sort(l)
	return l
}
