package usecase

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/renalplate/backend/internal/domain"
)

// ExportCSV writes the log as a table: one row per entry with food name,
// portion, every tracked nutrient, and the item-level diabetes screen,
// followed by a totals row. Unreported nutrients render as blank cells so
// "not reported" stays distinguishable from a reported zero.
func ExportCSV(w io.Writer, log *domain.MealLog) error {
	cw := csv.NewWriter(w)

	header := []string{"Food", "Portion"}
	for _, n := range domain.AllNutrients {
		header = append(header, string(n))
	}
	header = append(header, "Diabetes Screen")
	if err := cw.Write(header); err != nil {
		return err
	}

	entries := log.Entries()
	for _, e := range entries {
		row := []string{e.Name, e.Reading.Portion}
		for _, n := range domain.AllNutrients {
			if v, ok := e.Reading.Amount(n); ok {
				row = append(row, formatAmount(v))
			} else {
				row = append(row, "")
			}
		}
		if e.Failed {
			row = append(row, "")
		} else {
			row = append(row, string(ScreenItem(e.Reading)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	totals := Summarize(log.Readings(), domain.AllNutrients)
	totalRow := []string{"Total", ""}
	for _, n := range domain.AllNutrients {
		totalRow = append(totalRow, formatAmount(totals[n]))
	}
	totalRow = append(totalRow, string(ClassifyBinary(
		totals[domain.NutrientCarbohydrates],
		totals[domain.NutrientSugars],
		MealCutoffs,
	)))
	if err := cw.Write(totalRow); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
