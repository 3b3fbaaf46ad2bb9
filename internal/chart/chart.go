// Package chart renders monthly expense logs as stacked bar charts.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/VladPetriv/expense_bot/internal/expenselog"
	"github.com/VladPetriv/expense_bot/pkg/money"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultWidth  = 640
	defaultHeight = 480

	legendWidth     = 150
	legendRowHeight = 16
	legendMarkSize  = 10

	averageBarName = "avg"
	otherCategory  = "other"
)

// palette colors the most frequent categories, the rest is merged into otherCategory.
var palette = []drawing.Color{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 144, G: 238, B: 144, A: 255},
	{R: 128, G: 0, B: 128, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 255, G: 20, B: 147, A: 255},
}

var otherColor = drawing.Color{R: 160, G: 160, B: 160, A: 255}

var printer = message.NewPrinter(language.English)

// Options represents chart rendering options.
type Options struct {
	// Width and Height of the image in pixels, 640x480 by default.
	Width  int
	Height int
	// Now decides how many days the average is spread over, time.Now by default.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	return o
}

type series struct {
	name  string
	color drawing.Color
	// members are the log categories drawn as this series.
	members []string
	total   money.Money
}

// RenderPNG writes the chart of the log as a PNG image.
func RenderPNG(w io.Writer, log *expenselog.Log, opts Options) error {
	opts = opts.withDefaults()

	graph, err := newStackedBarChart(log, opts)
	if err != nil {
		return err
	}

	err = graph.Render(chart.PNG, w)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}

func newStackedBarChart(log *expenselog.Log, opts Options) (*chart.StackedBarChart, error) {
	if log == nil || len(log.Days) == 0 {
		return nil, errors.New("log has no days")
	}

	allSeries := groupSeries(log)
	average := log.Average(opts.Now())

	scale := log.MaxDayTotal()
	if average.Total.GreaterThan(scale) {
		scale = average.Total
	}
	if scale.IsZero() {
		scale = money.NewFromInt(1)
	}

	bars := make([]chart.StackedBar, 0, len(log.Days)+1)
	for _, day := range log.Days {
		bars = append(bars, newBar(strconv.Itoa(day.Day), day.Totals, allSeries, scale))
	}
	bars = append(bars, newBar(averageBarName, average.Totals, allSeries, scale))

	plotWidth := opts.Width - legendWidth
	step := plotWidth / len(bars)
	if step < 2 {
		return nil, fmt.Errorf("chart width %d is too small for %d bars", opts.Width, len(bars))
	}

	spacing := step / 4
	if spacing == 0 {
		spacing = 1
	}
	for i := range bars {
		bars[i].Width = step - spacing
	}

	return &chart.StackedBarChart{
		Title:      fmt.Sprintf("%s, max %s", log.Period, printer.Sprintf("%.2f", scale.Float64())),
		TitleStyle: chart.Style{FontSize: 12},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		BarSpacing: spacing,
		XAxis:      chart.Style{FontSize: 7},
		YAxis:      chart.Style{Hidden: true},
		Bars:       bars,
		Elements: []chart.Renderable{
			legend(allSeries, opts.Width-legendWidth+10),
		},
	}, nil
}

// groupSeries keeps the most frequent categories as separate series and merges the rest.
func groupSeries(log *expenselog.Log) []series {
	totals := log.CategoryTotals()

	result := make([]series, 0, len(palette)+1)
	for i, category := range log.Categories {
		if i < len(palette) {
			result = append(result, series{
				name:    category,
				color:   palette[i],
				members: []string{category},
				total:   totals[category],
			})
			continue
		}

		if len(result) == len(palette) {
			result = append(result, series{name: otherCategory, color: otherColor, total: money.Zero})
		}

		other := &result[len(palette)]
		other.members = append(other.members, category)
		other.total.Inc(totals[category])
	}

	return result
}

// newBar stacks series of a bar so the most frequent one is at the bottom. The stacked
// bar chart scales every bar to the full height, a transparent filler on top keeps
// heights proportional to scale.
func newBar(name string, totals map[string]money.Money, allSeries []series, scale money.Money) chart.StackedBar {
	values := make([]chart.Value, 0, len(allSeries)+1)

	barTotal := money.Zero
	for _, s := range allSeries {
		for _, member := range s.members {
			barTotal.Inc(totals[member])
		}
	}

	values = append(values, chart.Value{
		Label: "filler",
		Value: scale.Sub(barTotal).Float64(),
		Style: chart.Style{
			FillColor:   drawing.ColorTransparent,
			StrokeColor: drawing.ColorTransparent,
		},
	})

	for i := len(allSeries) - 1; i >= 0; i-- {
		s := allSeries[i]

		value := money.Zero
		for _, member := range s.members {
			value.Inc(totals[member])
		}

		values = append(values, chart.Value{
			Label: s.name,
			Value: value.Float64(),
			Style: chart.Style{
				FillColor:   s.color,
				StrokeColor: s.color,
				StrokeWidth: 0,
			},
		})
	}

	return chart.StackedBar{Name: name, Values: values}
}

func legend(allSeries []series, left int) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		r.SetFont(defaults.Font)
		r.SetFontSize(9)
		r.SetFontColor(drawing.ColorBlack)

		top := canvasBox.Top
		for _, s := range allSeries {
			chart.Draw.Box(r, chart.Box{
				Top:    top,
				Left:   left,
				Right:  left + legendMarkSize,
				Bottom: top + legendMarkSize,
			}, chart.Style{FillColor: s.color, StrokeColor: s.color, StrokeWidth: 1})

			r.SetFontColor(drawing.ColorBlack)
			r.Text(printer.Sprintf("%s %.2f", s.name, s.total.Float64()), left+legendMarkSize+4, top+legendMarkSize)

			top += legendRowHeight
		}
	}
}

// renderPNGBytes renders the chart into memory.
func renderPNGBytes(log *expenselog.Log, opts Options) ([]byte, error) {
	var buf bytes.Buffer

	err := RenderPNG(&buf, log, opts)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
