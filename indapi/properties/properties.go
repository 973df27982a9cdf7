// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package properties

import (
	"log"
	"math"
	"strconv"
)

// SetPositiveInt stores value in n if it is a positive integer.
// Invalid values are logged and n keeps its previous value.
func SetPositiveInt(n *int, key string, value string) bool {
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 {
		log.Printf("Invalid value %q for property %s was ignored.", value, key)
		return false
	}
	*n = v
	return true
}

// SetPositiveFloat is SetPositiveInt for fractional values like band widths.
func SetPositiveFloat(f *float64, key string, value string) bool {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		log.Printf("Invalid value %q for property %s was ignored.", value, key)
		return false
	}
	*f = v
	return true
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
