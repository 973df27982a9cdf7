// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"stockaxes/calendar"
	"stockaxes/chartdata"
	"stockaxes/chartimage"
	"stockaxes/config"
	"stockaxes/stockplot"
	"stockaxes/widgets"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	dataFile   string
	outFile    string
	configFile string
	svg        bool
	width      int
	height     int
	session    bool
	print      bool
}

type generateOptions struct {
	outFile  string
	symbol   string
	date     string
	preClose float64
	seed     int64
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "axisrender",
		Short: "Render stock chart axes to an image",
		Long: `axisrender lays out the value and time axes of an intraday stock chart
and draws them together with the price line into a PNG or SVG image.
Settings are read from an optional configuration file and from
STOCKAXES_* environment variables, which may be placed in a .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The .env file is optional.
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env file: %w", err)
			}
			return nil
		},
	}
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newIndicatorsCmd())
	return rootCmd
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart image from a data file",
		Long: `Render a chart image from a YAML data file.
Example: axisrender render --data aapl.yaml --out aapl.svg --session --print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.dataFile, "data", "", "YAML data file with preclose and points")
	cmd.Flags().StringVar(&opts.outFile, "out", "chart.png", "Output image file")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Chart configuration file (defaults if not set)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "Write SVG instead of PNG, also selected by a .svg output file")
	cmd.Flags().IntVar(&opts.width, "width", 1024, "Image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 600, "Image height in pixels")
	cmd.Flags().BoolVar(&opts.session, "session", false, "Cover the complete trading session of the first point")
	cmd.Flags().BoolVar(&opts.print, "print", false, "Print range and ticks")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a data file with a simulated trading session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.outFile, "out", "demo.yaml", "Output data file")
	cmd.Flags().StringVar(&opts.symbol, "symbol", "DEMO", "Symbol stored in the data file")
	cmd.Flags().StringVar(&opts.date, "date", "", "Session date in YYYY-MM-DD format (latest session if not provided)")
	cmd.Flags().Float64Var(&opts.preClose, "preclose", 100, "Previous close price")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Random seed")
	return cmd
}

func newIndicatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indicators",
		Short: "List the available indicators and their default properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := renderIndicatorList()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

// loadChartConfig uses defaults if no file is given. Environment overrides are applied last.
func loadChartConfig(fileName string) (config.ChartConfig, error) {
	appConfig := config.NewAppConfig()
	if len(fileName) > 0 {
		var err error
		appConfig, err = config.NewGlobalConfigFile(fileName).Copy()
		if err != nil {
			return config.ChartConfig{}, err
		}
	}
	chartConfig := appConfig.ChartConfig
	err := config.ApplyEnv(&chartConfig)
	return chartConfig, err
}

func imageFormat(opts renderOptions) chartimage.Format {
	if opts.svg || strings.EqualFold(filepath.Ext(opts.outFile), ".svg") {
		return chartimage.FormatSVG
	}
	return chartimage.FormatPNG
}

func runRender(opts renderOptions, out io.Writer) error {
	series, err := chartdata.ReadSeriesFile(opts.dataFile, log.Default())
	if err != nil {
		return err
	}
	chartConfig, err := loadChartConfig(opts.configFile)
	if err != nil {
		return err
	}
	theme, err := widgets.NewAxisThemeFromConfig(chartConfig)
	if err != nil {
		return err
	}
	cal := calendar.NewUSSessionCalendar()
	engineOpts := stockplot.OptionsFromConfig(chartConfig)
	engineOpts.TimeFormatter = stockplot.NewTimeFormatter(chartConfig.Resolution.FormatString(), cal.Location())
	engine := stockplot.NewAxisLayoutEngine(theme, engineOpts)
	if opts.session && len(series.Points) > 0 {
		s, trading := cal.Session(series.Points[0].Time())
		if !trading {
			return fmt.Errorf("no trading session on %s", series.Points[0].Time().In(cal.Location()).Format(time.DateOnly))
		}
		start, lineCount := s.GridLines(time.Duration(chartConfig.StepDuration()) * time.Millisecond)
		if start != series.Points[0].X {
			log.Printf("First point is not at session open %s, the time axis starts at the first point.", s.Open.Format(time.Kitchen))
		}
		engine.SetVerticalLines(lineCount)
	}
	chart, err := chartdata.NewChart(series, chartConfig.Indicators)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.outFile)
	if err != nil {
		return err
	}
	err = chartimage.Render(f, engine, chart, opts.width, opts.height, imageFormat(opts))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", opts.outFile, err)
	}
	if opts.print {
		fmt.Fprintln(out, newTickPrinter(engine).Render(engine))
	}
	return nil
}

// findSession returns the session of date, or the latest session before now if date is empty.
func findSession(cal calendar.SessionCalendar, date string, now time.Time) (calendar.Session, error) {
	if len(date) == 0 {
		session, trading := cal.LatestSession(now)
		if !trading {
			return session, fmt.Errorf("no trading session found before %s", now.In(cal.Location()).Format(time.DateTime))
		}
		return session, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, date, cal.Location())
	if err != nil {
		return calendar.Session{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	session, trading := cal.Session(day)
	if !trading {
		return session, fmt.Errorf("no trading session on %s", date)
	}
	return session, nil
}

func runGenerate(opts generateOptions, out io.Writer) error {
	session, err := findSession(calendar.NewUSSessionCalendar(), opts.date, time.Now())
	if err != nil {
		return err
	}
	if opts.preClose <= 0 {
		return fmt.Errorf("invalid previous close %v", opts.preClose)
	}
	chartConfig, err := loadChartConfig("")
	if err != nil {
		return err
	}
	series := chartdata.GenerateSeries(opts.symbol, session, chartConfig.Resolution, opts.preClose, opts.seed)
	err = chartdata.WriteSeriesFile(opts.outFile, series)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d points of %s to %s.\n", len(series.Points), session.Open.Format(time.DateOnly), opts.outFile)
	return nil
}
