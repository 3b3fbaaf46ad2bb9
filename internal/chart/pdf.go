package chart

import (
	"bytes"
	"fmt"
	"io"

	"github.com/VladPetriv/expense_bot/internal/expenselog"
	"github.com/jung-kurt/gofpdf"
)

const chartImageName = "chart"

// RenderPDF writes a single page document with the chart and per-category totals.
func RenderPDF(w io.Writer, log *expenselog.Log, opts Options) error {
	opts = opts.withDefaults()

	image, err := renderPNGBytes(log, opts)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Expenses for %s", log.Period)), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	imageOptions := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(chartImageName, imageOptions, bytes.NewReader(image))

	const imageWidth = 180.0
	imageHeight := imageWidth * float64(opts.Height) / float64(opts.Width)
	top := pdf.GetY()
	pdf.ImageOptions(chartImageName, 10, top, imageWidth, imageHeight, false, imageOptions, 0, "")

	totals := log.CategoryTotals()
	average := log.Average(opts.Now())

	pdf.SetXY(200, top)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Totals", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, category := range log.Categories {
		pdf.SetX(200)
		pdf.CellFormat(50, 6, tr(category), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, printer.Sprintf("%.2f", totals[category].Float64()), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetX(200)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 6, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, printer.Sprintf("%.2f", log.Total().Float64()), "T", 1, "R", false, 0, "")
	pdf.SetX(200)
	pdf.CellFormat(50, 6, fmt.Sprintf("Per day (%d days)", average.Days), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, printer.Sprintf("%.2f", average.Total.Float64()), "", 1, "R", false, 0, "")

	err = pdf.Output(w)
	if err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	return nil
}
