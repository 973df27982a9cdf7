// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"fmt"
	"sort"
	"stockaxes/indapi/indicators"
	"stockaxes/stockplot"
	"stockaxes/stockval"
	"stockaxes/widgets"

	"github.com/charmbracelet/lipgloss"
)

type tickPrinter struct {
	header lipgloss.Style
	muted  lipgloss.Style
	labels map[stockplot.LabelColor]lipgloss.Style
}

// Label colors are taken from the chart theme.
func newTickPrinter(engine *stockplot.AxisLayoutEngine) tickPrinter {
	p := tickPrinter{
		header: lipgloss.NewStyle().Bold(true).MarginTop(1),
		muted:  lipgloss.NewStyle().Faint(true),
		labels: make(map[stockplot.LabelColor]lipgloss.Style),
	}
	for _, c := range []stockplot.LabelColor{stockplot.LabelNeutral, stockplot.LabelBelow, stockplot.LabelAbove} {
		p.labels[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(widgets.FormatColor(engine.TickColor(c))))
	}
	return p
}

func (p tickPrinter) Render(engine *stockplot.AxisLayoutEngine) string {
	r := engine.Range()
	reference := engine.Reference()
	rows := []string{
		p.header.Render("Range"),
		fmt.Sprintf("%s .. %s  reference %s", stockval.FormatPrice(r.Min), stockval.FormatPrice(r.Max), stockval.FormatPrice(reference)),
		p.header.Render("Value ticks"),
	}
	for _, tick := range engine.ValueTicks() {
		row := fmt.Sprintf("%10s %9s", stockval.FormatPrice(tick.Value), stockval.FormatPercentage(reference, tick.Value))
		rows = append(rows, p.labels[tick.Color].Render(row)+p.muted.Render(fmt.Sprintf("  y=%.1f", tick.Position)))
	}
	rows = append(rows, p.header.Render("Time ticks"))
	for _, tick := range engine.TimeTicks() {
		row := fmt.Sprintf("%10s", engine.FormatTime(int64(tick.Value)))
		rows = append(rows, p.labels[tick.Color].Render(row)+p.muted.Render(fmt.Sprintf("  x=%.1f", tick.Position)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderIndicatorList() (string, error) {
	name := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Faint(true).PaddingLeft(2)
	var rows []string
	for _, id := range indicators.GetList() {
		props, err := indicators.GetDefaultProperties(id)
		if err != nil {
			return "", err
		}
		rows = append(rows, name.Render(string(id)))
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, muted.Render(fmt.Sprintf("%s: %s", k, props[k])))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), nil
}
