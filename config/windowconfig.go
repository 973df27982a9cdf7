// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"image"
)

const minWindowSize = 200

type WindowConfig struct {
	Size image.Point `yaml:",omitempty"`
}

func NewWindowConfig() WindowConfig {
	return WindowConfig{
		Size: image.Point{X: 1024, Y: 768},
	}
}

func (w *WindowConfig) sanitize() {
	if w.Size.X < minWindowSize || w.Size.Y < minWindowSize {
		w.Size = NewWindowConfig().Size
	}
}
