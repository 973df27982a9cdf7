// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import "time"

type Session struct {
	Open     time.Time
	Close    time.Time
	PreOpen  time.Time
	ExtClose time.Time
	Partial  bool
}

func (s Session) State(t time.Time) string {
	if t.Before(s.PreOpen) || t.After(s.ExtClose) {
		return "Market Closed"
	} else if t.Before(s.Open) {
		return "Pre-Market"
	} else if t.Before(s.Close) {
		return "Open"
	} else {
		return "After-Hours"
	}
}

// GridLines returns the time of the first vertical grid line and the number of lines needed
// so that the grid covers the regular session with the given step.
func (s Session) GridLines(step time.Duration) (start int64, lineCount int) {
	start = s.Open.UnixMilli()
	if step <= 0 {
		return start, 2
	}
	length := s.Close.Sub(s.Open)
	cells := int(length / step)
	if length%step != 0 {
		cells++
	}
	return start, max(cells, 1) + 1
}
