// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"os"
	"path/filepath"
	"stockaxes/indapi/candles"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartConfigDefaults(t *testing.T) {
	c := NewChartConfig()
	assert.Equal(t, 4, c.HorizontalLines)
	assert.Equal(t, 5, c.VerticalLines)
	assert.Equal(t, 30.0, c.Padding)
	assert.Equal(t, int64(7200000), c.StepDuration())
}

func TestChartConfigStepFromResolution(t *testing.T) {
	c := NewChartConfig()
	c.StepMillis = 0
	c.Resolution = candles.CandleFiveMinutes
	assert.Equal(t, candles.CandleFiveMinutes.AxisStep().Milliseconds(), c.StepDuration())
}

func TestChartConfigSanitize(t *testing.T) {
	c := ChartConfig{HorizontalLines: 1, VerticalLines: -3, Padding: -1, StepMillis: -5, Resolution: 99}
	c.Sanitize()
	assert.Equal(t, DefaultHorizontalLines, c.HorizontalLines)
	assert.Equal(t, DefaultVerticalLines, c.VerticalLines)
	assert.Equal(t, float64(DefaultPadding), c.Padding)
	assert.Equal(t, int64(0), c.StepMillis)
	assert.Equal(t, DefaultResolution, c.Resolution)
	assert.Equal(t, DefaultConvention, c.Convention)
	assert.Equal(t, DefaultLabelSize, c.LabelSize)

	c.Indicators = []IndicatorConfig{{IndicatorId: "macd"}, {IndicatorId: "sma"}}
	c.Sanitize()
	require.Len(t, c.Indicators, 1)
	assert.EqualValues(t, "sma", c.Indicators[0].IndicatorId)
	c.Indicators = []IndicatorConfig{{IndicatorId: "macd"}}
	c.Sanitize()
	assert.Nil(t, c.Indicators)

	// zero padding is a valid choice
	c.Padding = 0
	c.Sanitize()
	assert.Equal(t, 0.0, c.Padding)
}

func TestGlobalConfigMissingFile(t *testing.T) {
	g := NewGlobalConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	c, err := g.Copy()
	require.NoError(t, err)
	def := NewAppConfig()
	assert.Equal(t, def.WindowConfig, c.WindowConfig)
	assert.Equal(t, def.ChartConfig.StepDuration(), c.ChartConfig.StepDuration())
	assert.Equal(t, def.ChartConfig.Convention, c.ChartConfig.Convention)
	assert.Empty(t, c.ChartConfig.Indicators)
}

func TestGlobalConfigWriteRead(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "sub", "chart.yaml")
	g := NewGlobalConfigFile(fileName)
	c, err := g.Lock()
	require.NoError(t, err)
	c.ChartConfig.HorizontalLines = 6
	c.ChartConfig.Convention = "green-up"
	c.ChartConfig.Indicators = []IndicatorConfig{{IndicatorId: "sma", Properties: map[string]string{"Time Periods": "5"}}}
	require.NoError(t, g.Unlock(c))

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	// defaults are not written
	assert.NotContains(t, string(data), "verticallines")
	assert.Contains(t, string(data), "horizontallines: 6")

	reread := NewGlobalConfigFile(fileName)
	c2, err := reread.Copy()
	require.NoError(t, err)
	assert.Equal(t, 6, c2.ChartConfig.HorizontalLines)
	assert.Equal(t, DefaultVerticalLines, c2.ChartConfig.VerticalLines)
	assert.Equal(t, "green-up", c2.ChartConfig.Convention)
	require.Len(t, c2.ChartConfig.Indicators, 1)
	assert.Equal(t, "5", c2.ChartConfig.Indicators[0].Properties["Time Periods"])
}

func TestGlobalConfigNewerVersion(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("fileversion: 99\n"), 0600))
	_, err := NewGlobalConfigFile(fileName).Copy()
	assert.Error(t, err)
}

func TestCopyIsDeep(t *testing.T) {
	g := NewTestConfig()
	c, err := g.Lock()
	require.NoError(t, err)
	c.ChartConfig.Indicators = []IndicatorConfig{{IndicatorId: "sma"}}
	require.NoError(t, g.Unlock(c))

	c1, err := g.Copy()
	require.NoError(t, err)
	c1.ChartConfig.Indicators[0].IndicatorId = "bollinger"
	c2, err := g.Copy()
	require.NoError(t, err)
	assert.EqualValues(t, "sma", c2.ChartConfig.Indicators[0].IndicatorId)
}

func TestGlobalConfigUnchangedUnlock(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "chart.yaml")
	g := NewGlobalConfigFile(fileName)
	c, err := g.Lock()
	require.NoError(t, err)
	require.NoError(t, g.Unlock(c))
	// nothing changed, nothing written
	_, err = os.Stat(fileName)
	assert.True(t, os.IsNotExist(err))
}

func TestDeepCopyEqualsOriginal(t *testing.T) {
	a := NewAppConfig()
	c := a.deepCopy()
	assert.True(t, a.equal(&c))
	c.ChartConfig.Indicators = []IndicatorConfig{{IndicatorId: "sma"}}
	assert.False(t, a.equal(&c))
}

func TestUnlockWritesOnlyChanges(t *testing.T) {
	g := NewTestConfig()
	c, err := g.Lock()
	require.NoError(t, err)
	require.NoError(t, g.Unlock(c))
	assert.Equal(t, 0, g.Writes)

	c, err = g.Lock()
	require.NoError(t, err)
	c.ChartConfig.LightTheme = true
	require.NoError(t, g.Unlock(c))
	assert.Equal(t, 1, g.Writes)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("STOCKAXES_HORIZONTAL_LINES", "8")
	t.Setenv("STOCKAXES_RESOLUTION", "1h")
	t.Setenv("STOCKAXES_COLOR_RISE", "#00ff00")
	c := NewChartConfig()
	require.NoError(t, ApplyEnv(&c))
	assert.Equal(t, 8, c.HorizontalLines)
	assert.Equal(t, candles.CandleSixtyMinutes, c.Resolution)
	assert.Equal(t, "#00ff00", c.Colors.Rise)
	// untouched
	assert.Equal(t, DefaultVerticalLines, c.VerticalLines)

	t.Setenv("STOCKAXES_PADDING", "abc")
	assert.Error(t, ApplyEnv(&c))
}
