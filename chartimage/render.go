// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartimage

import (
	"fmt"
	"io"
	"stockaxes/stockplot"
)

// Render draws the chart of src into an image of the given size and writes it to w.
func Render(w io.Writer, engine *stockplot.AxisLayoutEngine, src stockplot.DataSource, width, height int, format Format) error {
	canvas, err := NewCanvas(width, height, format)
	if err != nil {
		return err
	}
	canvas.FillBackground(engine.Theme().BackgroundColor)
	dims := stockplot.NewDimensions(float32(width), float32(height), engine.BottomLabelHeight(canvas))
	err = engine.Update(src, dims)
	if err != nil {
		return fmt.Errorf("failed to lay out axes: %w", err)
	}
	engine.Render(canvas)
	engine.RenderSource(canvas, src)
	return canvas.Save(w)
}
