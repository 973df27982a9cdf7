// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"fmt"
	"strconv"

	"github.com/ericlagergren/decimal"
	"golang.org/x/exp/constraints"
)

const NearZero = 0.000001

// Returns a new decimal containing the delta percentage value.
func CalculateDeltaPercentage(baseValue, currentValue *decimal.Big) *decimal.Big {
	percentage := new(decimal.Big)
	// Check for non-zero, see https://github.com/ericlagergren/decimal/pull/157
	if baseValue.Sign() != 0 {
		percentage.Quo(currentValue, baseValue)
		percentage.Sub(percentage, decimal.New(1, 0))
		percentage.Mul(percentage, decimal.New(100, 0))
	}
	return percentage
}

// AbsDeltaPercentage returns |value - reference| / reference * 100.
// A zero reference yields a zero percentage.
func AbsDeltaPercentage(reference, value float64) *decimal.Big {
	percentage := CalculateDeltaPercentage(ConvertFloatToDecimal(reference, 64), ConvertFloatToDecimal(value, 64))
	return percentage.Abs(percentage)
}

// RoundPrice rounds price z to two digits after decimal point and returns z.
func RoundPrice(z *decimal.Big) *decimal.Big {
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	return z.Quantize(2).Quantize(2)
}

// RoundPercentage rounds percentage z to two digits after decimal point and returns z.
func RoundPercentage(z *decimal.Big) *decimal.Big {
	return z.Quantize(2).Quantize(2)
}

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64, bitSize int) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, bitSize))
	return d
}

// FormatPrice formats an axis value with two digits after the decimal point.
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		// we do not want negative zero on our label
		return "0.00"
	}
	return s
}

// FormatPercentage formats the distance of value to reference as percentage label, e.g. "5.00%".
func FormatPercentage(reference, value float64) string {
	p := AbsDeltaPercentage(reference, value)
	// Halves are rounded up like printf does.
	p.Context.RoundingMode = decimal.ToNearestAway
	return fmt.Sprintf("%f%%", RoundPercentage(p))
}

// Lerp maps v from [from0, from1] to [to0, to1].
func Lerp[T constraints.Float](v, from0, from1, to0, to1 T) T {
	if from1 == from0 {
		return to0
	}
	return to0 + (v-from0)*(to1-to0)/(from1-from0)
}

func IsGreaterThanZero(v *decimal.Big) bool {
	return v != nil && v.CmpTotal(new(decimal.Big)) > 0
}
