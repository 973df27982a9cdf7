// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"stockaxes/indapi"
)

// IndicatorConfig describes an overlay indicator drawn on top of the price line.
// Its values are part of the value range of the chart.
type IndicatorConfig struct {
	IndicatorId indapi.IndicatorId
	Properties  map[string]string `yaml:",omitempty"`
	Color       string            `yaml:",omitempty"`
}
