// Package storage implements the file-backed persistence for budgets:
// one JSON document per month and profile, plus the settings document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/budgetplanner/backend/internal/budget"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/series"
	"github.com/budgetplanner/backend/internal/types"
	"github.com/rs/zerolog/log"
)

const settingsFile = "settings.json"

// Store reads and writes the documents of one profile below a base
// directory. The settings document is shared across profiles.
type Store struct {
	baseDir string
	profile string
}

// New returns a store for a profile, creating the profile directory.
func New(baseDir, profile string) (*Store, error) {
	s := &Store{baseDir: baseDir, profile: profile}

	if err := os.MkdirAll(s.profileDir(), os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating profile directory: %w", err)
	}

	return s, nil
}

// Profile returns the profile this store operates on.
func (s *Store) Profile() string {
	return s.profile
}

func (s *Store) profileDir() string {
	return filepath.Join(s.baseDir, s.profile)
}

// MonthFile returns the path of the document for a month.
func (s *Store) MonthFile(month types.Month) string {
	return filepath.Join(s.profileDir(), fmt.Sprintf("budget_%s.json", month))
}

// monthDocument is the wire format of a month file.
type monthDocument struct {
	Structure models.Schema                          `json:"structure"`
	Values    map[string]map[string]map[string]entry `json:"values"`
}

// entry is the wire format of a single entry. The amount is kept raw
// because legacy files store it as a string or as a number.
type entry struct {
	Amount json.RawMessage `json:"amount"`
	Note   string          `json:"note"`
}

// decodeAmount converts a raw amount into a decimal. Both quoted and
// bare numbers are accepted, anything unparseable reads as zero.
func decodeAmount(raw json.RawMessage) string {
	s := string(raw)
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}

	return s
}

// LoadMonth loads the ledger for a month. The second return value is
// the schema persisted with the month, nil when the file has none.
//
// A missing file is not an error: it returns (nil, nil, false, nil),
// the month is simply empty. A file that exists but cannot be parsed
// returns ErrMonthFileCorrupt.
func (s *Store) LoadMonth(month types.Month) (*models.Ledger, models.Schema, bool, error) {
	data, err := os.ReadFile(s.MonthFile(month))
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("month", month.String()).Msg("no data for month")
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("reading month file: %w", err)
	}

	var doc monthDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, false, fmt.Errorf("%w: %s", models.ErrMonthFileCorrupt, err)
	}

	ledger := models.NewLedger(month)
	for category, subcategories := range doc.Values {
		for subcategory, items := range subcategories {
			for item, e := range items {
				ledger.Set(models.ItemKey{Category: category, Subcategory: subcategory, Item: item}, models.Entry{
					Amount: budget.ParseAmount(decodeAmount(e.Amount)),
					Note:   e.Note,
				})
			}
		}
	}

	log.Debug().Str("month", month.String()).Int("entries", ledger.Len()).Msg("month loaded")
	return ledger, doc.Structure, true, nil
}

// SaveMonth persists a ledger together with the schema it was entered
// under.
func (s *Store) SaveMonth(ledger *models.Ledger, schema models.Schema) error {
	doc := monthDocument{
		Structure: schema,
		Values:    map[string]map[string]map[string]entry{},
	}

	for key, e := range ledger.All() {
		if _, ok := doc.Values[key.Category]; !ok {
			doc.Values[key.Category] = map[string]map[string]entry{}
		}
		if _, ok := doc.Values[key.Category][key.Subcategory]; !ok {
			doc.Values[key.Category][key.Subcategory] = map[string]entry{}
		}

		amount, err := json.Marshal(e.Amount)
		if err != nil {
			return fmt.Errorf("marshaling amount: %w", err)
		}

		doc.Values[key.Category][key.Subcategory][key.Item] = entry{
			Amount: amount,
			Note:   e.Note,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling month document: %w", err)
	}

	if err := os.WriteFile(s.MonthFile(ledger.Month), data, 0o644); err != nil {
		return fmt.Errorf("writing month file: %w", err)
	}

	log.Info().Str("month", ledger.Month.String()).Int("entries", ledger.Len()).Msg("month saved")
	return nil
}

// DeleteMonth removes the document for a month. Deleting a month that
// has no document is a no-op.
func (s *Store) DeleteMonth(month types.Month) error {
	err := os.Remove(s.MonthFile(month))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting month file: %w", err)
	}

	return nil
}

// Loader returns the series.Loader view of this store.
func (s *Store) Loader() series.Loader {
	return func(month types.Month) (*models.Ledger, bool, error) {
		ledger, _, found, err := s.LoadMonth(month)
		return ledger, found, err
	}
}

// LoadSettings loads the settings document. When no settings exist
// yet, the defaults are returned. A file that cannot be parsed returns
// ErrSettingsCorrupt.
func (s *Store) LoadSettings() (models.Settings, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, settingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %s", models.ErrSettingsCorrupt, err)
	}

	return settings, nil
}

// SaveSettings persists the settings document.
func (s *Store) SaveSettings(settings models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.baseDir, settingsFile), data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}

	log.Info().Msg("settings saved")
	return nil
}

// Profiles lists all profile directories below the base directory in
// lexical order.
func (s *Store) Profiles() ([]string, error) {
	dirEntries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	var profiles []string
	for _, e := range dirEntries {
		if e.IsDir() {
			profiles = append(profiles, e.Name())
		}
	}
	sort.Strings(profiles)

	return profiles, nil
}

// AutoFill copies the fixed-kind entries of the previous month into
// the ledger and reports how many entries were filled. Months without
// persisted predecessor data fill nothing, that is not an error.
func (s *Store) AutoFill(ledger *models.Ledger, kinds models.Kinds) (int, error) {
	previous, ok := ledger.Month.Previous()
	if !ok {
		return 0, nil
	}

	prevLedger, _, found, err := s.LoadMonth(previous)
	if err != nil || !found {
		return 0, err
	}

	filled := 0
	for key, e := range prevLedger.All() {
		if kinds.Of(key.Category) != models.KindFixed || e.Amount.IsZero() {
			continue
		}

		ledger.Set(key, e)
		filled++
	}

	log.Info().Str("month", ledger.Month.String()).Int("filled", filled).Msg("auto-filled fixed entries")
	return filled, nil
}
