package service

import (
	"strings"

	"github.com/VladPetriv/expense_bot/internal/model"
	"github.com/VladPetriv/expense_bot/pkg/money"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var reportPrinter = message.NewPrinter(language.English)

func formatReport(period model.Period, totals []model.CategoryTotal) string {
	if len(totals) == 0 {
		return reportPrinter.Sprintf("no expenses for %s", period.String())
	}

	var (
		builder strings.Builder
		total   = money.Zero
	)

	builder.WriteString(reportPrinter.Sprintf("expenses for %s:\n", period.String()))
	for _, categoryTotal := range totals {
		builder.WriteString(reportPrinter.Sprintf("%s: %.2f\n", categoryTotal.Title, categoryTotal.Total.Float64()))
		total.Inc(categoryTotal.Total)
	}
	builder.WriteString(reportPrinter.Sprintf("\ntotal: %.2f", total.Float64()))

	return builder.String()
}
