// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image/color"
	"stockaxes/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff2d19")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x2d, B: 0x19, A: 0xff}, c)

	c, err = ParseColor("#10203040")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	c, err = ParseColor("Red")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#gggggg")
	assert.Error(t, err)
	_, err = ParseColor("notacolor")
	assert.Error(t, err)
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#ff2d19", FormatColor(color.NRGBA{R: 0xff, G: 0x2d, B: 0x19, A: 0xff}))
	assert.Equal(t, "#10203040", FormatColor(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}))
}

func TestConvention(t *testing.T) {
	th := NewDarkAxisTheme(ConventionRedUp)
	assert.Equal(t, labelRed, th.RiseColor)
	assert.Equal(t, labelGreen, th.FallColor)

	th.SetConvention(ConventionGreenUp)
	assert.Equal(t, labelGreen, th.RiseColor)
	assert.Equal(t, labelRed, th.FallColor)

	// unknown values use the default
	th = NewLightAxisTheme("sideways")
	assert.Equal(t, ConventionRedUp, th.Convention)
}

func TestLabelStylesAreIndependent(t *testing.T) {
	th := NewDarkAxisTheme(ConventionRedUp)
	left := th.LeftLabel.WithColor(th.RiseColor)
	assert.Equal(t, th.RiseColor, left.Color)
	assert.Equal(t, labelGray, th.LeftLabel.Color)
	assert.Equal(t, labelGray, th.RightLabel.Color)

	th.RightLabel.Size = 30
	assert.Equal(t, float32(DefaultLabelSize), th.LeftLabel.Size)
}

func TestNewAxisThemeFromConfig(t *testing.T) {
	c := config.NewChartConfig()
	c.LightTheme = true
	c.Convention = string(ConventionGreenUp)
	c.LabelSize = 24
	c.Colors.Grid = "silver"
	th, err := NewAxisThemeFromConfig(c)
	require.NoError(t, err)
	assert.Equal(t, ConventionGreenUp, th.Convention)
	assert.Equal(t, float32(24), th.BottomLabel.Size)
	assert.Equal(t, color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}, th.GridLine.Color)

	c.Colors.Rise = "#xyz"
	_, err = NewAxisThemeFromConfig(c)
	assert.Error(t, err)
}
