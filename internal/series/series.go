// Package series assembles multi-month sequences of ledgers for the
// comparison, year overview and trend views.
package series

import (
	"time"

	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// Loader loads the ledger for a month from the persistence layer. The
// second return value reports whether data for the month exists.
type Loader func(month types.Month) (*models.Ledger, bool, error)

// Point is one month of a series.
type Point struct {
	Month  types.Month
	Ledger *models.Ledger
}

// Build assembles the series of up to count consecutive months ending
// at end, oldest first.
//
// Months without persisted data are skipped, they do not appear in the
// result. Months that fail to load are skipped as well, with a warning
// logged. The series is shorter than count when month navigation
// reaches the minimum supported year, that is not an error.
func Build(end types.Month, count int, load Loader) []Point {
	var reversed []Point

	month := end
	for i := 0; i < count; i++ {
		if i > 0 {
			var ok bool
			month, ok = month.Previous()
			if !ok {
				break
			}
		}

		ledger, found, err := load(month)
		if err != nil {
			log.Warn().Err(err).Str("month", month.String()).Msg("skipping month in series")
			continue
		}
		if !found {
			continue
		}

		reversed = append(reversed, Point{Month: month, Ledger: ledger})
	}

	// collected newest first, the series is oldest first
	points := make([]Point, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		points = append(points, reversed[i])
	}

	return points
}

// BuildYear assembles the series of all persisted months of one
// calendar year, January first.
func BuildYear(year int, load Loader) []Point {
	var points []Point

	for m := 1; m <= 12; m++ {
		month := types.NewMonth(year, time.Month(m))

		ledger, found, err := load(month)
		if err != nil {
			log.Warn().Err(err).Str("month", month.String()).Msg("skipping month in year overview")
			continue
		}
		if !found {
			continue
		}

		points = append(points, Point{Month: month, Ledger: ledger})
	}

	return points
}
