// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"stockaxes/indapi/candles"
	"stockaxes/stockval"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ericlagergren/decimal"
	"github.com/zhangyunhao116/skipmap"
)

type liveCandle struct {
	price     *decimal.Big
	tradeTime time.Time
}

// LiveSeries collects trades into one price per candle. Trades may be added from
// any goroutine while the chart reads the series.
type LiveSeries struct {
	// The resolution is set during initialization and never changed.
	Resolution candles.CandleResolution
	// Key is the candle start in unix milliseconds.
	candles       *skipmap.Int64Map[liveCandle]
	preClose      *decimal.Big
	preCloseMutex *sync.Mutex
	dataVersion   atomic.Uint64
}

func NewLiveSeries(resolution candles.CandleResolution) *LiveSeries {
	return &LiveSeries{
		Resolution:    resolution,
		candles:       skipmap.NewInt64[liveCandle](),
		preClose:      new(decimal.Big),
		preCloseMutex: new(sync.Mutex),
	}
}

// AddTrade sets the price of the candle containing tradeTime.
// A trade older than the last trade of its candle does not change the price.
func (s *LiveSeries) AddTrade(tradeTime time.Time, price *decimal.Big) {
	if !stockval.IsGreaterThanZero(price) {
		return
	}
	candleTime := s.Resolution.GetNthCandleTime(tradeTime, 0).UnixMilli()
	if c, ok := s.candles.Load(candleTime); ok && tradeTime.Before(c.tradeTime) {
		return
	}
	// Prices should never be modified. Therefore, we use the original price object without copying.
	s.candles.Store(candleTime, liveCandle{price: price, tradeTime: tradeTime})
	s.dataVersion.Add(1)
}

func (s *LiveSeries) SetPreClose(price *decimal.Big) {
	s.preCloseMutex.Lock()
	s.preClose = price
	s.preCloseMutex.Unlock()
	s.dataVersion.Add(1)
}

func (s *LiveSeries) PreClose() float64 {
	s.preCloseMutex.Lock()
	defer s.preCloseMutex.Unlock()
	f, _ := s.preClose.Float64()
	return f
}

func (s *LiveSeries) Len() int {
	return s.candles.Len()
}

// DataVersion is incremented on every modification.
func (s *LiveSeries) DataVersion() uint64 {
	return s.dataVersion.Load()
}

// Line returns a snapshot of the series ordered by candle time.
func (s *LiveSeries) Line() stockval.Line {
	line := make(stockval.Line, 0, s.candles.Len())
	s.candles.Range(
		func(candleTime int64, c liveCandle) bool {
			f, _ := c.price.Float64()
			line = append(line, stockval.Point{X: candleTime, Y: f})
			return true
		},
	)
	return line
}

func (s *LiveSeries) Lines() []stockval.Line {
	line := s.Line()
	if len(line) == 0 {
		return nil
	}
	return []stockval.Line{line}
}
