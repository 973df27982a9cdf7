// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package initapp

import (
	"context"
	"log"
	"os"
	"stockaxes/config"
	"stockaxes/stockviz"
)

type InitApp struct {
	config config.Config
}

func NewInitApp(c config.Config) *InitApp {
	return &InitApp{
		config: c,
	}
}

// Configuration problems are reported before any window is opened.
func (a *InitApp) reloadConfiguration() error {
	_, err := a.config.Copy()
	return err
}

func (a *InitApp) Run(ctx context.Context) {
	err := a.reloadConfiguration()
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	s := stockviz.NewChartApp(a.config)
	err = s.Initialize()
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}
	s.Run(ctx)

	os.Exit(0)
}
