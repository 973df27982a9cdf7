// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package candles

import (
	"fmt"
	"strconv"
	"time"
)

type CandleResolution int32

const (
	CandleOneMinute CandleResolution = iota
	CandleFiveMinutes
	CandleFifteenMinutes
	CandleThirtyMinutes
	CandleSixtyMinutes
	CandleOneDay
	CandleOneWeek
	CandleOneMonth
)

const NumCandleResolutions = CandleOneMonth + 1

var candleResolutionNames = [NumCandleResolutions]string{"1m", "5m", "15m", "30m", "1h", "1d", "1w", "1M"}

func (r CandleResolution) IsValid() bool {
	return r >= CandleOneMinute && r < NumCandleResolutions
}

func (r CandleResolution) String() string {
	if !r.IsValid() {
		return "invalid"
	}
	return candleResolutionNames[r]
}

func (r CandleResolution) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid candle resolution %d", r)
	}
	return []byte(candleResolutionNames[r]), nil
}

// UnmarshalText accepts short names like "15m" or "1d" and plain resolution numbers.
func (r *CandleResolution) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range candleResolutionNames {
		if s == name {
			*r = CandleResolution(i)
			return nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || !CandleResolution(n).IsValid() {
		return fmt.Errorf("unknown candle resolution %q", s)
	}
	*r = CandleResolution(n)
	return nil
}

// Nominal candle lengths. Day based entries are only used for axis steps,
// calendar candles vary with month lengths and daylight saving time.
var candleLengths = [NumCandleResolutions]time.Duration{
	time.Minute, 5 * time.Minute, 15 * time.Minute, 30 * time.Minute, time.Hour,
	24 * time.Hour, 7 * 24 * time.Hour, 30 * 24 * time.Hour,
}

// Number of candles between two vertical grid lines.
var axisStepCandles = [NumCandleResolutions]int{15, 12, 8, 8, 24, 7, 4, 12}

func (r CandleResolution) isIntraday() bool {
	return r >= CandleOneMinute && r < CandleOneDay
}

func (r CandleResolution) mustBeValid() {
	if !r.IsValid() {
		panic("unsupported candle resolution")
	}
}

// AxisStep returns the time between two vertical grid lines of a chart using this resolution.
// Day based steps are nominal, calendar candles vary in length.
func (r CandleResolution) AxisStep() time.Duration {
	r.mustBeValid()
	if r == CandleOneMonth {
		return 365 * 24 * time.Hour
	}
	return time.Duration(axisStepCandles[r]) * candleLengths[r]
}

func (r CandleResolution) FormatString() string {
	r.mustBeValid()
	if r.isIntraday() {
		return "15:04"
	}
	return "02 Jan 06"
}

// GetNthCandleTime returns the start of the candle n candles after the one containing t.
// Day based candles start at midnight UTC.
func (r CandleResolution) GetNthCandleTime(t time.Time, n int) time.Time {
	r.mustBeValid()
	if r.isIntraday() {
		l := candleLengths[r]
		minutes := int(l / time.Minute)
		start := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/minutes*minutes, 0, 0, t.Location())
		return start.Add(time.Duration(n) * l)
	}
	return r.calendarAdd(r.calendarStart(t, time.UTC), n)
}

// calendarStart returns the start of the day, week or month containing t. Weeks start on Mondays.
func (r CandleResolution) calendarStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	switch r {
	case CandleOneWeek:
		d -= (int(t.Weekday()) + 6) % 7
	case CandleOneMonth:
		d = 1
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (r CandleResolution) calendarAdd(start time.Time, n int) time.Time {
	switch r {
	case CandleOneWeek:
		return start.AddDate(0, 0, 7*n)
	case CandleOneMonth:
		return start.AddDate(0, n, 0)
	default:
		return start.AddDate(0, 0, n)
	}
}
