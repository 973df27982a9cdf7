// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHoliday2023(t *testing.T) {
	c := NewUSSessionCalendar()
	holidays := []time.Time{
		time.Date(2023, 1, 1, 0, 0, 0, 0, c.location),
		time.Date(2023, 1, 16, 0, 0, 0, 0, c.location),
		time.Date(2023, 2, 20, 0, 0, 0, 0, c.location),
		time.Date(2023, 5, 29, 0, 0, 0, 0, c.location),
		time.Date(2023, 6, 19, 0, 0, 0, 0, c.location),
		time.Date(2023, 7, 4, 0, 0, 0, 0, c.location),
		time.Date(2023, 9, 4, 0, 0, 0, 0, c.location),
		time.Date(2023, 11, 23, 0, 0, 0, 0, c.location),
		time.Date(2023, 12, 25, 0, 0, 0, 0, c.location),
	}
	for _, h := range holidays {
		isHoliday, _ := c.IsHoliday(h)
		assert.True(t, isHoliday, h.String())
	}
	// observed holiday
	isHoliday, name := c.IsHoliday(time.Date(2023, 1, 2, 0, 0, 0, 0, c.location))
	assert.True(t, isHoliday)
	assert.True(t, strings.HasSuffix(name, observedHolidayPostfix))

	isHoliday, _ = c.IsHoliday(time.Date(2023, 8, 9, 0, 0, 0, 0, c.location))
	assert.False(t, isHoliday)
}

func TestSessionNormal(t *testing.T) {
	c := NewUSSessionCalendar()
	s, trading := c.Session(time.Date(2023, 8, 9, 12, 0, 0, 0, c.location))
	require.True(t, trading)
	assert.False(t, s.Partial)
	assert.True(t, s.Open.Equal(time.Date(2023, 8, 9, 9, 30, 0, 0, c.location)))
	assert.True(t, s.Close.Equal(time.Date(2023, 8, 9, 16, 0, 0, 0, c.location)))
	assert.True(t, s.PreOpen.Equal(time.Date(2023, 8, 9, 4, 0, 0, 0, c.location)))
	assert.True(t, s.ExtClose.Equal(time.Date(2023, 8, 9, 20, 0, 0, 0, c.location)))
}

func TestSessionPartial(t *testing.T) {
	c := NewUSSessionCalendar()
	// Christmas eve 2018 was a partial trading day.
	s, trading := c.Session(time.Date(2018, 12, 24, 0, 0, 0, 0, c.location))
	require.True(t, trading)
	assert.True(t, s.Partial)
	assert.True(t, s.Close.Equal(time.Date(2018, 12, 24, 13, 0, 0, 0, c.location)))

	// Day after thanksgiving
	s, trading = c.Session(time.Date(2023, 11, 24, 0, 0, 0, 0, c.location))
	require.True(t, trading)
	assert.True(t, s.Partial)
}

func TestNoSession(t *testing.T) {
	c := NewUSSessionCalendar()
	// Saturday
	_, trading := c.Session(time.Date(2023, 8, 5, 0, 0, 0, 0, c.location))
	assert.False(t, trading)
	// Christmas eve is Friday in 2021, but observed holiday
	_, trading = c.Session(time.Date(2021, 12, 24, 0, 0, 0, 0, c.location))
	assert.False(t, trading)
}

func TestLatestSession(t *testing.T) {
	c := NewUSSessionCalendar()
	// Sunday morning, latest session is Friday.
	s, ok := c.LatestSession(time.Date(2023, 8, 6, 10, 0, 0, 0, c.location))
	require.True(t, ok)
	assert.True(t, s.Open.Equal(time.Date(2023, 8, 4, 9, 30, 0, 0, c.location)))
	// Monday before the open, latest session is still Friday.
	s, ok = c.LatestSession(time.Date(2023, 8, 7, 8, 0, 0, 0, c.location))
	require.True(t, ok)
	assert.True(t, s.Open.Equal(time.Date(2023, 8, 4, 9, 30, 0, 0, c.location)))
}

func TestSessionState(t *testing.T) {
	c := NewUSSessionCalendar()
	s, _ := c.Session(time.Date(2023, 8, 9, 0, 0, 0, 0, c.location))
	assert.Equal(t, "Market Closed", s.State(time.Date(2023, 8, 9, 3, 0, 0, 0, c.location)))
	assert.Equal(t, "Pre-Market", s.State(time.Date(2023, 8, 9, 8, 0, 0, 0, c.location)))
	assert.Equal(t, "Open", s.State(time.Date(2023, 8, 9, 11, 0, 0, 0, c.location)))
	assert.Equal(t, "After-Hours", s.State(time.Date(2023, 8, 9, 17, 0, 0, 0, c.location)))
}

func TestGridLines(t *testing.T) {
	c := NewUSSessionCalendar()
	s, _ := c.Session(time.Date(2023, 8, 9, 0, 0, 0, 0, c.location))
	start, n := s.GridLines(2 * time.Hour)
	assert.Equal(t, s.Open.UnixMilli(), start)
	// 6.5 hours need four cells
	assert.Equal(t, 5, n)
	_, n = s.GridLines(30 * time.Minute)
	assert.Equal(t, 14, n)
	_, n = s.GridLines(24 * time.Hour)
	assert.Equal(t, 2, n)
	_, n = s.GridLines(0)
	assert.Equal(t, 2, n)
}
