// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chartdata

import (
	"context"
	"log"
	"math/rand"
	"stockaxes/calendar"
	"stockaxes/indapi/candles"
	"stockaxes/stockval"
	"time"
)

// Simulated time between two demo trades.
const demoTradeInterval = time.Minute

// Maximum relative price change of a single demo trade.
const demoVolatility = 0.004

// DemoFeed adds random walk trades of one trading session to a live series.
type DemoFeed struct {
	series    *LiveSeries
	rng       *rand.Rand
	price     float64
	tradeTime time.Time
	close     time.Time
}

// NewDemoFeed starts the random walk near preClose at the session open.
// The same seed always produces the same trades.
func NewDemoFeed(series *LiveSeries, session calendar.Session, preClose float64, seed int64) *DemoFeed {
	rng := rand.New(rand.NewSource(seed))
	series.SetPreClose(stockval.ConvertFloatToDecimal(preClose, 64))
	return &DemoFeed{
		series:    series,
		rng:       rng,
		price:     preClose * (1 + (rng.Float64()-0.5)*0.02),
		tradeTime: session.Open,
		close:     session.Close,
	}
}

// Next adds a single trade. It returns false once the session is closed.
func (f *DemoFeed) Next() bool {
	if !f.tradeTime.Before(f.close) {
		return false
	}
	f.price *= 1 + (f.rng.Float64()-0.5)*2*demoVolatility
	price := stockval.RoundPrice(stockval.ConvertFloatToDecimal(f.price, 64))
	f.series.AddTrade(f.tradeTime, price)
	f.tradeTime = f.tradeTime.Add(demoTradeInterval)
	return true
}

// Run adds one trade per interval until the session is closed or ctx is done.
// onUpdate is called after every trade.
func (f *DemoFeed) Run(ctx context.Context, interval time.Duration, onUpdate func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("Terminating demo feed: %v", ctx.Err())
			return
		case <-ticker.C:
			if !f.Next() {
				log.Println("Demo session closed.")
				return
			}
			if onUpdate != nil {
				onUpdate()
			}
		}
	}
}

// GenerateSeries simulates a complete session with one point per candle.
func GenerateSeries(symbol string, session calendar.Session, resolution candles.CandleResolution, preClose float64, seed int64) *Series {
	live := NewLiveSeries(resolution)
	feed := NewDemoFeed(live, session, preClose, seed)
	for feed.Next() {
	}
	return &Series{
		Symbol:        symbol,
		PreviousClose: preClose,
		Points:        live.Line(),
	}
}
