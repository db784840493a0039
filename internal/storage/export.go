package storage

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/budgetplanner/backend/internal/budget"
	"github.com/budgetplanner/backend/internal/models"
)

// csvHeader is the fixed header row of ledger exports.
var csvHeader = []string{"Hauptkategorie", "Unterkategorie", "Posten", "Betrag", "Notiz"}

// ExportCSV writes a ledger as semicolon-delimited CSV, one row per
// entry, with the amount rendered using a decimal comma.
func ExportCSV(w io.Writer, ledger *models.Ledger) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, key := range ledger.Keys() {
		e := ledger.Get(key)
		row := []string{key.Category, key.Subcategory, key.Item, budget.FormatAmount(e.Amount), e.Note}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
