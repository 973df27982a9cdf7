// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"github.com/barkimedes/go-deepcopy"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type AppConfig struct {
	WindowConfig WindowConfig
	ChartConfig  ChartConfig
}

func NewAppConfig() AppConfig {
	return AppConfig{
		WindowConfig: NewWindowConfig(),
		ChartConfig:  NewChartConfig(),
	}
}

func (a *AppConfig) deepCopy() AppConfig {
	c, err := deepcopy.Anything(a)
	if err != nil {
		panic(err)
	}
	return *c.(*AppConfig)
}

// equal reports whether b holds the same settings as a. Deep copies turn nil
// slices and maps into empty ones, both mean "not set".
func (a *AppConfig) equal(b *AppConfig) bool {
	return cmp.Equal(*a, *b, cmpopts.EquateEmpty())
}

func (a *AppConfig) Sanitize() {
	a.WindowConfig.sanitize()
	a.ChartConfig.Sanitize()
}

// RemoveDefaults clears settings which equal their defaults, so that they are not
// written and changed defaults of a new release are picked up.
func (a *AppConfig) RemoveDefaults() {
	a.ChartConfig.removeDefaults()
}
