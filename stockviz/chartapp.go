// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"stockaxes/calendar"
	"stockaxes/chartdata"
	"stockaxes/config"
	"stockaxes/stockplot"
	"stockaxes/widgets"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

const (
	demoSymbol   = "DEMO"
	demoPreClose = 100
	// Real time between two simulated trades.
	demoTickInterval = 200 * time.Millisecond
)

// ChartApp is a window showing a live chart fed by simulated trades of the latest trading session.
type ChartApp struct {
	win         *app.Window
	size        image.Point
	config      config.Config
	calendar    calendar.SessionCalendar
	session     calendar.Session
	live        *chartdata.LiveSeries
	chart       *chartdata.Chart
	view        *ChartView
	frame       widgets.Frame
	matTheme    *material.Theme
	terminateWg *sync.WaitGroup
	cancelFeed  context.CancelFunc
}

func NewChartApp(c config.Config) *ChartApp {
	return &ChartApp{
		config:      c,
		calendar:    calendar.NewUSSessionCalendar(),
		terminateWg: new(sync.WaitGroup),
	}
}

func (a *ChartApp) Initialize() error {
	appConfig, err := a.config.Copy()
	if err != nil {
		return err
	}
	a.size = appConfig.WindowConfig.Size
	chartConfig := appConfig.ChartConfig
	// Environment overrides are not stored.
	err = config.ApplyEnv(&chartConfig)
	if err != nil {
		return err
	}
	axisTheme, err := widgets.NewAxisThemeFromConfig(chartConfig)
	if err != nil {
		return err
	}
	a.matTheme = widgets.NewMaterialTheme(axisTheme)

	session, ok := a.calendar.LatestSession(time.Now())
	if !ok {
		return errors.New("no recent trading session found")
	}
	a.session = session
	opts := stockplot.OptionsFromConfig(chartConfig)
	// Show exchange time, not local time.
	opts.TimeFormatter = stockplot.NewTimeFormatter(chartConfig.Resolution.FormatString(), a.calendar.Location())
	engine := stockplot.NewAxisLayoutEngine(axisTheme, opts)
	_, lineCount := session.GridLines(time.Duration(chartConfig.StepDuration()) * time.Millisecond)
	engine.SetVerticalLines(lineCount)
	log.Printf("Showing session of %s with %d vertical lines.", session.Open.Format(time.DateOnly), lineCount)

	a.live = chartdata.NewLiveSeries(chartConfig.Resolution)
	a.chart, err = chartdata.NewChart(a.live, chartConfig.Indicators)
	if err != nil {
		return fmt.Errorf("invalid indicator configuration: %w", err)
	}
	a.view = NewChartView(engine, a.matTheme)
	a.frame = widgets.NewChartFrame(axisTheme)
	return nil
}

func (a *ChartApp) saveConfiguration() error {
	appConfig, err := a.config.Lock()
	if err != nil {
		return err
	}
	appConfig.WindowConfig.Size = a.size
	return a.config.Unlock(appConfig)
}

func (a *ChartApp) Run(ctx context.Context) {
	a.createWindow()
	a.startFeed(ctx)
	err := a.handleEvents()
	if err != nil {
		log.Printf("terminating with error: %v", err)
	}
	a.terminate()
}

func (a *ChartApp) Invalidate() {
	a.win.Invalidate()
}

func (a *ChartApp) createWindow() {
	a.win = app.NewWindow(
		app.Title(fmt.Sprintf("%s - %s", a.config.GetAppName(), demoSymbol)),
		app.Size(unit.Dp(a.size.X), unit.Dp(a.size.Y)),
	)
}

func (a *ChartApp) startFeed(ctx context.Context) {
	feedCtx, cancel := context.WithCancel(ctx)
	a.cancelFeed = cancel
	feed := chartdata.NewDemoFeed(a.live, a.session, demoPreClose, time.Now().UnixNano())
	a.terminateWg.Add(1)
	go func() {
		defer a.terminateWg.Done()
		feed.Run(feedCtx, demoTickInterval, a.Invalidate)
	}()
}

func (a *ChartApp) handleEvents() error {
	var ops op.Ops
	for e := range a.win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, a.matTheme.Bg)
			a.layoutChart(gtx)
			a.size = image.Point{
				X: int(float32(e.Size.X) / e.Metric.PxPerDp),
				Y: int(float32(e.Size.Y) / e.Metric.PxPerDp),
			}
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

func (a *ChartApp) layoutChart(gtx layout.Context) layout.Dimensions {
	return layout.Flex{
		Axis:    layout.Vertical,
		Spacing: layout.SpaceEnd,
	}.Layout(
		gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			title := fmt.Sprintf("%s  %s  %s", demoSymbol, a.session.Open.Format(time.DateOnly), a.session.State(time.Now()))
			return layout.Inset{Left: widgets.DefaultMargin, Top: widgets.DefaultMargin}.Layout(gtx, widgets.Title(a.matTheme, title).Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return widgets.Divider(a.matTheme, 5).Layout(gtx)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.frame.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return a.view.Layout(gtx, a.matTheme, a.chart, a.live.DataVersion())
			})
		}),
	)
}

func (a *ChartApp) terminate() {
	a.cancelFeed()
	a.terminateWg.Wait()
	err := a.saveConfiguration()
	if err != nil {
		log.Printf("error saving configuration: %v", err)
	}
}
