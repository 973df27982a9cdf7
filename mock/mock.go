// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"log"
	"os"
	"stockaxes/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func NewLogger(t *testing.T) (*log.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return log.New(w, "", log.LstdFlags), bufio.NewScanner(r)
}

// NewChartConfig returns a test configuration with modified chart settings.
func NewChartConfig(modify func(c *config.ChartConfig)) config.Config {
	c := config.NewTestConfig()
	appConfig, _ := c.Lock()
	modify(&appConfig.ChartConfig)
	_ = c.Unlock(appConfig)
	return c
}
