package models

import "github.com/shopspring/decimal"

// Settings is the application settings document, persisted as
// settings.json in the base directory.
//
// budget_warnings maps a main category name to its budget limit. A
// missing key means that no limit is configured for the category.
// category_kinds is optional; categories without an entry are
// classified through the name heuristic (see KindFromName).
type Settings struct {
	DarkMode       bool                       `json:"dark_mode"`
	AutoFill       bool                       `json:"auto_fill"`
	BudgetWarnings map[string]decimal.Decimal `json:"budget_warnings"`
	Structure      Schema                     `json:"structure"`
	CategoryKinds  Kinds                      `json:"category_kinds,omitempty"`
	SavingsGoal    decimal.Decimal            `json:"savings_goal"`
}

// DefaultSettings returns the settings that are used when no settings
// file exists yet.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:       true,
		AutoFill:       true,
		BudgetWarnings: map[string]decimal.Decimal{},
		Structure:      DefaultSchema(),
	}
}
