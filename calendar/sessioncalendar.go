// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const observedHolidayPostfix = "(observed)"

// Search limit when looking for the previous session, covers long holiday weekends.
const maxSessionLookback = 10

type clockTime struct {
	hours   int
	minutes int
}

// SessionCalendar knows the regular trading sessions of an exchange.
type SessionCalendar struct {
	location         *time.Location
	calendar         *cal.BusinessCalendar
	openTime         clockTime
	closeTime        clockTime
	partialCloseTime clockTime
	preMarket        time.Duration
	afterHours       time.Duration
}

func NewUSSessionCalendar() SessionCalendar {
	// NYSE uses ET, which can be either EST or EDT.
	// Changing to/from daylight saving time does not occur during market hours.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("NYSE time location not supported")
	}
	c := cal.NewBusinessCalendar()
	// Source for bank holidays: https://www.federalreserve.gov/aboutthefed/k8.htm
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	c.Cacheable = true
	return SessionCalendar{
		location:         loc,
		calendar:         c,
		openTime:         clockTime{hours: 9, minutes: 30},
		closeTime:        clockTime{hours: 16, minutes: 0},
		partialCloseTime: clockTime{hours: 13, minutes: 0},
		preMarket:        time.Hour*5 + time.Minute*30,
		afterHours:       time.Hour * 4,
	}
}

func (s SessionCalendar) Location() *time.Location {
	return s.location
}

// IsHoliday returns whether t is a bank holiday and its name.
func (s SessionCalendar) IsHoliday(t time.Time) (bool, string) {
	actual, observed, h := s.calendar.IsHoliday(t.In(s.location))
	if !actual && !observed {
		return false, ""
	} else if !actual {
		return true, h.Name + " " + observedHolidayPostfix
	}
	return true, h.Name
}

func (s SessionCalendar) isPartial(day time.Time) bool {
	// There are partial trading days before independence day and christmas.
	holiday, name := s.IsHoliday(day.AddDate(0, 0, 1))
	if holiday && (name == us.IndependenceDay.Name || name == us.ChristmasDay.Name) {
		return true
	}
	// There is a partial trading day after thanksgiving.
	holiday, name = s.IsHoliday(day.AddDate(0, 0, -1))
	return holiday && name == us.ThanksgivingDay.Name
}

// Session returns the trading session of the day containing t.
// The second result is false if there is no trading on that day.
func (s SessionCalendar) Session(t time.Time) (Session, bool) {
	day := t.In(s.location)
	if !s.calendar.IsWorkday(day) {
		return Session{}, false
	}
	var session Session
	session.Partial = s.isPartial(day)
	y, m, d := day.Date()
	session.Open = time.Date(y, m, d, s.openTime.hours, s.openTime.minutes, 0, 0, s.location)
	closeTime := s.closeTime
	if session.Partial {
		closeTime = s.partialCloseTime
	}
	session.Close = time.Date(y, m, d, closeTime.hours, closeTime.minutes, 0, 0, s.location)
	session.PreOpen = session.Open.Add(-s.preMarket)
	session.ExtClose = session.Close.Add(s.afterHours)
	return session, true
}

// LatestSession returns the most recent session which opened at or before t.
func (s SessionCalendar) LatestSession(t time.Time) (Session, bool) {
	day := t.In(s.location)
	for i := 0; i < maxSessionLookback; i++ {
		session, trading := s.Session(day)
		if trading && !session.Open.After(t) {
			return session, true
		}
		day = day.AddDate(0, 0, -1)
	}
	return Session{}, false
}
