// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"context"
	"image/color"
	"path/filepath"
	"stockaxes/calendar"
	"stockaxes/config"
	"stockaxes/indapi/candles"
	"stockaxes/mock"
	"stockaxes/stockval"
	"stockaxes/widgets"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T) calendar.Session {
	c := calendar.NewUSSessionCalendar()
	s, trading := c.Session(time.Date(2023, 8, 9, 12, 0, 0, 0, c.Location()))
	require.True(t, trading)
	return s
}

func TestLiveSeriesCandles(t *testing.T) {
	loc := time.UTC
	s := NewLiveSeries(candles.CandleFifteenMinutes)
	assert.Empty(t, s.Lines())
	assert.Equal(t, uint64(0), s.DataVersion())

	s.AddTrade(time.Date(2023, 8, 9, 9, 30, 0, 0, loc), decimal.New(10000, 2))
	s.AddTrade(time.Date(2023, 8, 9, 9, 44, 0, 0, loc), decimal.New(10100, 2))
	// older trade of the same candle
	s.AddTrade(time.Date(2023, 8, 9, 9, 31, 0, 0, loc), decimal.New(9000, 2))
	s.AddTrade(time.Date(2023, 8, 9, 9, 45, 0, 0, loc), decimal.New(10200, 2))
	// not a valid price
	s.AddTrade(time.Date(2023, 8, 9, 10, 0, 0, 0, loc), decimal.New(0, 0))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, uint64(3), s.DataVersion())
	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, stockval.Line{
		{X: time.Date(2023, 8, 9, 9, 30, 0, 0, loc).UnixMilli(), Y: 101},
		{X: time.Date(2023, 8, 9, 9, 45, 0, 0, loc).UnixMilli(), Y: 102},
	}, lines[0])
}

func TestLiveSeriesPreClose(t *testing.T) {
	s := NewLiveSeries(candles.CandleOneMinute)
	assert.Equal(t, 0.0, s.PreClose())
	s.SetPreClose(decimal.New(9950, 2))
	assert.Equal(t, 99.5, s.PreClose())
}

func TestLiveSeriesConcurrentTrades(t *testing.T) {
	s := NewLiveSeries(candles.CandleOneMinute)
	start := time.Date(2023, 8, 9, 9, 30, 0, 0, time.UTC)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s.AddTrade(start.Add(time.Duration(g*50+i)*time.Minute), decimal.New(int64(100+i), 0))
			}
		}(g)
	}
	wg.Wait()
	line := s.Line()
	require.Len(t, line, 200)
	for i := 1; i < len(line); i++ {
		assert.Less(t, line[i-1].X, line[i].X)
	}
}

func TestReadSeriesSortsPoints(t *testing.T) {
	logger, scanner := mock.NewLogger(t)
	data := `
symbol: TEST
preclose: 100
points:
  - {x: 2000, y: 101}
  - {x: 1000, y: 99}
  - {x: 3000, y: 135}
`
	s, err := ReadSeries(strings.NewReader(data), logger)
	require.NoError(t, err)
	assert.Equal(t, "TEST", s.Symbol)
	assert.Equal(t, 100.0, s.PreClose())
	assert.Equal(t, stockval.Line{{X: 1000, Y: 99}, {X: 2000, Y: 101}, {X: 3000, Y: 135}}, s.Points)
	require.True(t, scanner.Scan())
	assert.Contains(t, scanner.Text(), "Points of TEST are not sorted by time")
}

func TestReadSeriesInvalid(t *testing.T) {
	logger, _ := mock.NewLogger(t)
	_, err := ReadSeries(strings.NewReader(""), logger)
	assert.Error(t, err)
	_, err = ReadSeries(strings.NewReader("points: 12"), logger)
	assert.Error(t, err)
	_, err = ReadSeries(strings.NewReader("preclose: 100\npoints:\n  - {x: 1, y: .nan}\n"), logger)
	assert.Error(t, err)
	_, err = ReadSeries(strings.NewReader("preclose: -1\n"), logger)
	assert.Error(t, err)
}

func TestSeriesFileRoundTrip(t *testing.T) {
	logger, _ := mock.NewLogger(t)
	fileName := filepath.Join(t.TempDir(), "data", "series.yaml")
	s := &Series{Symbol: "ABC", PreviousClose: 50, Points: stockval.Line{{X: 1, Y: 49.5}, {X: 2, Y: 51}}}
	require.NoError(t, WriteSeriesFile(fileName, s))
	read, err := ReadSeriesFile(fileName, logger)
	require.NoError(t, err)
	assert.Equal(t, s, read)

	_, err = ReadSeriesFile(filepath.Join(t.TempDir(), "missing.yaml"), logger)
	assert.Error(t, err)
}

func TestGenerateSeries(t *testing.T) {
	session := testSession(t)
	s := GenerateSeries("DEMO", session, candles.CandleFifteenMinutes, 100, 42)
	// 9:30 to 16:00
	require.Len(t, s.Points, 26)
	assert.Equal(t, session.Open.UnixMilli(), s.Points[0].X)
	assert.Equal(t, session.Close.Add(-15*time.Minute).UnixMilli(), s.Points[25].X)
	for _, p := range s.Points {
		assert.Greater(t, p.Y, 0.0)
	}
	assert.Equal(t, s, GenerateSeries("DEMO", session, candles.CandleFifteenMinutes, 100, 42))
}

func TestDemoFeedRun(t *testing.T) {
	open := time.Date(2023, 8, 9, 9, 30, 0, 0, time.UTC)
	session := calendar.Session{Open: open, Close: open.Add(3 * time.Minute)}
	live := NewLiveSeries(candles.CandleOneMinute)
	feed := NewDemoFeed(live, session, 100, 1)
	updates := 0
	feed.Run(context.Background(), time.Millisecond, func() { updates++ })
	assert.Equal(t, 3, updates)
	assert.Equal(t, 3, live.Len())
	assert.Equal(t, 100.0, live.PreClose())
}

func TestDemoFeedCancel(t *testing.T) {
	session := testSession(t)
	feed := NewDemoFeed(NewLiveSeries(candles.CandleOneMinute), session, 100, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	feed.Run(ctx, time.Hour, nil)
}

func testSeries() *Series {
	return &Series{
		PreviousClose: 100,
		Points: stockval.Line{
			{X: 1000, Y: 10},
			{X: 2000, Y: 12},
			{X: 3000, Y: 14},
			{X: 4000, Y: 12},
			{X: 5000, Y: 10},
		},
	}
}

func TestChartIndicatorLines(t *testing.T) {
	c, err := NewChart(testSeries(), []config.IndicatorConfig{
		{IndicatorId: "sma", Properties: map[string]string{"Time Periods": "2"}, Color: "#ff0000"},
		{IndicatorId: "bollinger"},
	})
	require.NoError(t, err)
	assert.Len(t, c.Indicators(), 2)
	assert.Equal(t, 100.0, c.PreClose())
	lines := c.Lines()
	// price, sma, 3 bollinger bands
	require.Len(t, lines, 5)
	assert.Equal(t, stockval.Point{X: 2000, Y: 11}, lines[1][1])

	theme := widgets.NewDarkAxisTheme(widgets.ConventionRedUp)
	styles := c.LineStyles(theme)
	require.Len(t, styles, 5)
	assert.Equal(t, widgets.LineStyle{Color: theme.PriceLineColor, Width: 2}, styles[0])
	assert.Equal(t, widgets.LineStyle{Color: color.NRGBA{R: 255, A: 255}, Width: 1}, styles[1])
	for _, s := range styles[2:] {
		assert.Equal(t, widgets.LineStyle{Color: theme.IndicatorColor, Width: 1}, s)
	}
}

func TestChartInvalidIndicator(t *testing.T) {
	_, err := NewChart(testSeries(), []config.IndicatorConfig{{IndicatorId: "macd"}})
	assert.Error(t, err)
	_, err = NewChart(testSeries(), []config.IndicatorConfig{{IndicatorId: "sma", Color: "nocolor"}})
	assert.Error(t, err)
}

func TestChartRefresh(t *testing.T) {
	live := NewLiveSeries(candles.CandleOneMinute)
	c, err := NewChart(live, []config.IndicatorConfig{{IndicatorId: "sma"}})
	require.NoError(t, err)
	assert.Empty(t, c.Lines())

	live.SetPreClose(decimal.New(100, 0))
	live.AddTrade(time.Date(2023, 8, 9, 9, 30, 0, 0, time.UTC), decimal.New(101, 0))
	// snapshot until refreshed
	assert.Empty(t, c.Lines())
	c.Refresh()
	assert.Len(t, c.Lines(), 2)
	assert.Equal(t, 100.0, c.PreClose())
}
