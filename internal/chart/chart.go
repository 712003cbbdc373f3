// Package chart renders aggregate nutrition data as PNG images for the
// front end. It is a thin pass-through to go-chart; all numbers arrive
// pre-computed.
package chart

import (
	"fmt"
	"io"
	"sort"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/caltrack/caltrack/internal/usecase"
)

const (
	renderWidth  = 1024
	renderHeight = 512
)

// Pie renders a label-to-quantity mapping as a pie chart. Slice
// percentages come from usecase.Percentages, so they sum to exactly 100.
// An all-zero mapping renders a single "No Data" slice.
func Pie(data map[string]float64, w io.Writer) error {
	slices := usecase.Percentages(data)

	values := make([]gochart.Value, 0, len(slices))
	for _, slice := range slices {
		values = append(values, gochart.Value{
			Value: slice.Value,
			Label: fmt.Sprintf("%s: %.1f%%", slice.Label, slice.Percent),
		})
	}
	if len(values) == 0 {
		values = []gochart.Value{{Value: 100, Label: "No Data"}}
	}

	pie := gochart.PieChart{
		Width:  renderHeight,
		Height: renderHeight,
		Values: values,
	}
	return pie.Render(gochart.PNG, w)
}

// TimeSeries renders a date-string-to-value mapping as a line chart, or a
// single bar when only one day is present. Years are stripped from the
// axis labels to keep them short.
func TimeSeries(data map[string]float64, yLabel string, w io.Writer) error {
	dates := make([]string, 0, len(data))
	for date := range data {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) == 1 {
		bar := gochart.BarChart{
			Title:  yLabel,
			Width:  renderHeight,
			Height: renderHeight,
			Bars:   []gochart.Value{{Value: data[dates[0]], Label: stripYear(dates[0])}},
		}
		return bar.Render(gochart.PNG, w)
	}

	xs := make([]float64, 0, len(dates))
	ys := make([]float64, 0, len(dates))
	ticks := make([]gochart.Tick, 0, len(dates))
	for i, date := range dates {
		xs = append(xs, float64(i))
		ys = append(ys, data[date])
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: stripYear(date)})
	}

	graph := gochart.Chart{
		Width:  renderWidth,
		Height: renderHeight,
		XAxis:  gochart.XAxis{Ticks: ticks},
		YAxis:  gochart.YAxis{Name: yLabel},
		Series: []gochart.Series{
			gochart.ContinuousSeries{Name: yLabel, XValues: xs, YValues: ys},
		},
	}
	return graph.Render(gochart.PNG, w)
}

// stripYear turns "2022-01-15" into "01-15".
func stripYear(date string) string {
	if i := strings.Index(date, "-"); i >= 0 {
		return date[i+1:]
	}
	return date
}
