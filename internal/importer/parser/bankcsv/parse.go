// Package bankcsv parses semicolon-delimited bank statement exports.
package bankcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/budgetplanner/backend/internal/budget"
	"github.com/budgetplanner/backend/internal/importer"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"golang.org/x/text/language"
)

// Options configures the column mapping and number format of a
// statement file.
type Options struct {
	AmountColumn      string       // Header name of the amount column
	DescriptionColumn string       // Header name of the description column
	Locale            language.Tag // Number format of the amount column, defaults to German
}

// normalizeAmount rewrites a locale-formatted amount into the plain
// form ParseAmount accepts. German statements use a dot as thousands
// and a comma as decimal separator, English ones the reverse.
func normalizeAmount(s string, locale language.Tag) string {
	base, _ := locale.Base()
	if base.String() == "en" {
		return strings.ReplaceAll(s, ",", "")
	}

	return strings.ReplaceAll(s, ".", "")
}

// Parse reads a bank statement and returns one preview per usable row.
//
// The first row must be the header, it is used to locate the columns
// from the options. Rows whose amount does not parse to a non-zero
// value are skipped with a warning, mirroring how partial statements
// have always been imported. Each preview carries the target of the
// first matching rule, or no target when nothing matches.
func Parse(f io.Reader, opts Options, rules []importer.MatchRule) ([]importer.Preview, error) {
	reader := csv.NewReader(f)
	reader.Comma = ';'

	// Bank exports occasionally have ragged rows
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []importer.Preview{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	amountIdx, descriptionIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case opts.AmountColumn:
			amountIdx = i
		case opts.DescriptionColumn:
			descriptionIdx = i
		}
	}

	if amountIdx < 0 {
		return nil, fmt.Errorf("the amount column %q does not exist in the CSV", opts.AmountColumn)
	}
	if descriptionIdx < 0 {
		return nil, fmt.Errorf("the description column %q does not exist in the CSV", opts.DescriptionColumn)
	}

	var previews []importer.Preview
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("error in line %d of the CSV: %w", line, err)
		}

		if len(record) <= amountIdx || len(record) <= descriptionIdx {
			log.Warn().Strs("record", record).Msg("skipping row with missing columns")
			continue
		}

		amount := budget.ParseAmount(normalizeAmount(record[amountIdx], opts.Locale))
		if amount.IsZero() {
			log.Warn().Str("amount", record[amountIdx]).Msg("skipping row without parseable amount")
			continue
		}

		description := record[descriptionIdx]

		previews = append(previews, importer.Preview{
			ID: uuid.New(),
			Entry: models.Entry{
				Amount: amount,
				Note:   description,
			},
			Description: description,
			Target:      match(description, rules),
		})
	}

	return previews, nil
}

// match returns the target of the first rule matching the description.
func match(description string, rules []importer.MatchRule) *models.ItemKey {
	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), strings.ToLower(description)) {
			target := rule.Target()
			return &target
		}
	}

	return nil
}
