package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/VladPetriv/expense_bot/internal/chart"
	"github.com/VladPetriv/expense_bot/internal/expenselog"
	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/pkg/logger"
)

const (
	formatPNG = "png"
	formatPDF = "pdf"
)

type options struct {
	period   model.Period
	dataFile string
	output   string
	format   string
}

func main() {
	logger := logger.New(logger.Options{
		LogLevel:        "info",
		PrettyLogOutput: true,
	})

	opts, err := parseFlags(os.Args[1:], time.Now())
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal().Err(err).Msg("parse flags")
	}

	err = run(opts, time.Now)
	if err != nil {
		logger.Fatal().Err(err).Msg("render chart")
	}

	logger.Info().Str("output", opts.output).Str("period", opts.period.String()).Msg("chart rendered")
}

func parseFlags(args []string, now time.Time) (options, error) {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: chart -month <month> [-year <year>] [-output pic.png] [-format png|pdf] <data file>\n")
		fs.PrintDefaults()
	}

	month := fs.String("month", "", "month of the log, a name like oct or October or a number")
	year := fs.Int("year", now.Year(), "year of the log")
	output := fs.String("output", "pic.png", "path of the rendered chart")
	format := fs.String("format", formatPNG, "output format, png or pdf")

	err := fs.Parse(args)
	if err != nil {
		return options{}, err
	}

	if *month == "" {
		return options{}, errors.New("month is required")
	}

	parsedMonth, err := model.ParseMonth(*month)
	if err != nil {
		return options{}, fmt.Errorf("parse month: %w", err)
	}

	if *format != formatPNG && *format != formatPDF {
		return options{}, fmt.Errorf("unknown format: %s", *format)
	}

	if fs.NArg() != 1 {
		return options{}, errors.New("exactly one data file is required")
	}

	return options{
		period:   model.Period{Year: *year, Month: parsedMonth},
		dataFile: fs.Arg(0),
		output:   *output,
		format:   *format,
	}, nil
}

func run(opts options, now func() time.Time) error {
	data, err := os.Open(opts.dataFile)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer data.Close()

	log, err := expenselog.Parse(data, opts.period)
	if err != nil {
		return fmt.Errorf("parse data file: %w", err)
	}

	output, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer output.Close()

	err = render(output, log, opts.format, now)
	if err != nil {
		return err
	}

	return output.Close()
}

func render(w io.Writer, log *expenselog.Log, format string, now func() time.Time) error {
	chartOptions := chart.Options{Now: now}

	switch format {
	case formatPDF:
		return chart.RenderPDF(w, log, chartOptions)
	default:
		return chart.RenderPNG(w, log, chartOptions)
	}
}
