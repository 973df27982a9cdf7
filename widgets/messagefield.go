// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// MessageField shows a short status text on a colored box, e.g. while no data is available.
type MessageField struct {
	Background color.NRGBA
	Padding    unit.Dp
}

func NewMessageField(bg color.NRGBA) *MessageField {
	return &MessageField{Background: bg, Padding: 20}
}

func (f *MessageField) Layout(txt string, gtx layout.Context, th *material.Theme) layout.Dimensions {
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := material.Body1(th, txt).Layout(gtx)
	call := macro.Stop()

	pad := gtx.Dp(f.Padding)
	box := image.Rectangle{Max: dims.Size.Add(image.Pt(2*pad, 2*pad))}
	paint.FillShape(gtx.Ops, f.Background, clip.UniformRRect(box, gtx.Dp(4)).Op(gtx.Ops))
	textArea := op.Offset(image.Pt(pad, pad)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	textArea.Pop()
	return layout.Dimensions{Size: box.Size()}
}
