// Package importer implements the import of bank statements into
// budget entries.
package importer

import (
	"github.com/budgetplanner/backend/internal/models"
	"github.com/google/uuid"
)

// MatchRule maps statement descriptions to a (category, subcategory,
// item) target. Match is a glob pattern, matched case-insensitively
// against the description. Rules are applied in priority order, the
// first match wins.
type MatchRule struct {
	Priority    uint   `json:"priority" example:"1"`
	Match       string `json:"match" example:"*rewe*"` // Glob pattern for the description. Matching is case insensitive.
	Category    string `json:"category" example:"Variable Kosten"`
	Subcategory string `json:"subcategory" example:"Essen"`
	Item        string `json:"item" example:"Supermarkt"`
}

// Target returns the item key the rule maps to.
func (r MatchRule) Target() models.ItemKey {
	return models.ItemKey{Category: r.Category, Subcategory: r.Subcategory, Item: r.Item}
}

// Preview is one parsed statement row, presented for review before it
// is applied to a ledger.
type Preview struct {
	ID          uuid.UUID      `json:"id" example:"042d101d-f1de-4403-9295-59dc0ea58677"` // Identifies the preview for the apply step
	Entry       models.Entry   `json:"entry"`
	Description string         `json:"description" example:"REWE SAGT DANKE 44123"` // The raw statement description
	Target      *models.ItemKey `json:"target"`                                     // The matched item, nil when no rule matched
}

// DefaultRules returns the built-in keyword mapping used when a budget
// has no own match rules configured.
func DefaultRules() []MatchRule {
	targets := []struct {
		match string
		key   models.ItemKey
	}{
		{"*rewe*", models.ItemKey{Category: "Variable Kosten", Subcategory: "Essen", Item: "Supermarkt"}},
		{"*edeka*", models.ItemKey{Category: "Variable Kosten", Subcategory: "Essen", Item: "Supermarkt"}},
		{"*aldi*", models.ItemKey{Category: "Variable Kosten", Subcategory: "Essen", Item: "Supermarkt"}},
		{"*lidl*", models.ItemKey{Category: "Variable Kosten", Subcategory: "Essen", Item: "Supermarkt"}},
		{"*restaurant*", models.ItemKey{Category: "Variable Kosten", Subcategory: "Essen", Item: "Restaurant"}},
		{"*netflix*", models.ItemKey{Category: "Variable Kosten", Subcategory: "Freizeit", Item: "Abos"}},
		{"*spotify*", models.ItemKey{Category: "Variable Kosten", Subcategory: "Freizeit", Item: "Abos"}},
		{"*miete*", models.ItemKey{Category: "Fixkosten", Subcategory: "Wohnen", Item: "Miete"}},
		{"*strom*", models.ItemKey{Category: "Fixkosten", Subcategory: "Wohnen", Item: "Strom"}},
		{"*gehalt*", models.ItemKey{Category: "Einnahmen", Subcategory: "Gehalt", Item: "Gehalt Hauptjob"}},
	}

	rules := make([]MatchRule, 0, len(targets))
	for i, t := range targets {
		rules = append(rules, MatchRule{
			Priority:    uint(i),
			Match:       t.match,
			Category:    t.key.Category,
			Subcategory: t.key.Subcategory,
			Item:        t.key.Item,
		})
	}

	return rules
}
