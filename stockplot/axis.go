// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"errors"
	"fmt"
)

// LabelColor is the semantic color of an axis label.
// The actual color depends on the market convention of the theme.
type LabelColor int

const (
	LabelNeutral LabelColor = iota
	LabelBelow
	LabelAbove
)

func (c LabelColor) String() string {
	switch c {
	case LabelBelow:
		return "below"
	case LabelAbove:
		return "above"
	default:
		return "neutral"
	}
}

// AxisTick is a single grid line together with the value of its label.
// For the value axis Position is the y pixel, for the time axis it is the x pixel.
type AxisTick struct {
	Value    float64
	Position float32
	Color    LabelColor
}

// AxisRange is the value range of the chart, Min < Max.
type AxisRange struct {
	Min float64
	Max float64
}

func (r AxisRange) Span() float64 {
	return r.Max - r.Min
}

var ErrInvalidInput = errors.New("invalid axis input")

type InvalidInputError struct {
	Op     string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
