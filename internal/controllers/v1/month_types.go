package v1

import (
	"github.com/budgetplanner/backend/internal/budget"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/types"
	"github.com/shopspring/decimal"
)

type EntryEditable struct {
	Category    string          `json:"category" binding:"required" example:"Fixkosten"`
	Subcategory string          `json:"subcategory" binding:"required" example:"Wohnen"`
	Item        string          `json:"item" binding:"required" example:"Miete"`
	Amount      decimal.Decimal `json:"amount" example:"1000"`
	Note        string          `json:"note" example:"Kaltmiete" default:""`
}

func (editable EntryEditable) key() models.ItemKey {
	return models.ItemKey{
		Category:    editable.Category,
		Subcategory: editable.Subcategory,
		Item:        editable.Item,
	}
}

func (editable EntryEditable) entry() models.Entry {
	return models.Entry{
		Amount: editable.Amount,
		Note:   editable.Note,
	}
}

type Entry struct {
	models.ItemKey
	models.Entry
}

type Month struct {
	Month       types.Month          `json:"month" example:"2025-03"`
	Entries     []Entry              `json:"entries"`
	Summary     budget.Summary       `json:"summary"`
	TopExpenses []budget.RankedGroup `json:"topExpenses"` // The three largest expense groups
	Goal        budget.GoalProgress  `json:"goal"`
}

type MonthResponse struct {
	Data  *Month  `json:"data"` // Data for the month
	Error *string `json:"error" example:"the specified resource does not exist"` // The error, if any occurred
}

type AutoFillResponse struct {
	Data  *AutoFill `json:"data"`
	Error *string   `json:"error" example:"auto-fill is disabled in the settings"`
}

type AutoFill struct {
	Filled int   `json:"filled" example:"4"` // Number of entries copied from the previous month
	Month  Month `json:"month"`
}

// newMonth computes the full representation of one month.
func newMonth(ledger *models.Ledger, settings models.Settings) Month {
	kinds := settings.CategoryKinds

	// Keys() enumerates lexically, so the entry list is stable
	entries := make([]Entry, 0, ledger.Len())
	for _, key := range ledger.Keys() {
		entries = append(entries, Entry{key, ledger.Get(key)})
	}

	summary := budget.Summarize(ledger, kinds, settings.BudgetWarnings)

	return Month{
		Month:       ledger.Month,
		Entries:     entries,
		Summary:     summary,
		TopExpenses: budget.TopSubcategories(ledger, kinds, 3),
		Goal:        budget.Goal(summary.Balance, settings.SavingsGoal),
	}
}
