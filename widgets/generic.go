// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

// Title is the single line caption above a chart.
func Title(th *material.Theme, t string) material.LabelStyle {
	l := material.H6(th, t)
	l.Alignment = text.Start
	l.MaxLines = 1
	return l
}

func Divider(th *material.Theme, margin unit.Dp) component.DividerStyle {
	return component.DividerStyle{
		Thickness: unit.Dp(1),
		Fill:      component.WithAlpha(th.Fg, 0x60),
		Inset: layout.Inset{
			Top:    margin,
			Bottom: margin,
		},
	}
}
