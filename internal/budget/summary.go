package budget

import (
	"fmt"
	"sort"

	"github.com/budgetplanner/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Breach is the state of one configured budget limit.
type Breach struct {
	Limit    decimal.Decimal `json:"limit" example:"500"`    // The configured limit
	Total    decimal.Decimal `json:"total" example:"513.37"` // The sum of the category
	UsedPct  decimal.Decimal `json:"usedPct" example:"102.7"`
	Exceeded bool            `json:"exceeded" example:"true"` // true once the sum exceeds the limit
}

// Summary holds every derived number for one month.
type Summary struct {
	TotalIncome    decimal.Decimal            `json:"totalIncome" example:"3000"`
	TotalExpense   decimal.Decimal            `json:"totalExpense" example:"1200"`
	FixedTotal     decimal.Decimal            `json:"fixedTotal" example:"1000"`
	VariableTotal  decimal.Decimal            `json:"variableTotal" example:"200"`
	Balance        decimal.Decimal            `json:"balance" example:"1800"`            // income minus expenses, may be negative
	SavingsRatePct decimal.Decimal            `json:"savingsRatePct" example:"60"`       // 0 when there is no income
	CategoryTotals map[string]decimal.Decimal `json:"categoryTotals"`                    // sums per literal main category name
	Breaches       map[string]Breach          `json:"breaches"`                          // state of every configured budget limit
}

// Summarize computes the summary for one month.
//
// Classification happens per main category through the kinds mapping.
// Fixed amounts count into FixedTotal, income into TotalIncome, and
// everything else, saving included, folds into VariableTotal. All
// non-income amounts count into TotalExpense. CategoryTotals is keyed
// by the literal category name regardless of its kind.
func Summarize(ledger *models.Ledger, kinds models.Kinds, limits map[string]decimal.Decimal) Summary {
	s := Summary{
		CategoryTotals: map[string]decimal.Decimal{},
		Breaches:       map[string]Breach{},
	}

	for key, entry := range ledger.All() {
		switch kinds.Of(key.Category) {
		case models.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(entry.Amount)
		case models.KindFixed:
			s.FixedTotal = s.FixedTotal.Add(entry.Amount)
			s.TotalExpense = s.TotalExpense.Add(entry.Amount)
		default:
			// variable, saving and anything unclassified
			s.VariableTotal = s.VariableTotal.Add(entry.Amount)
			s.TotalExpense = s.TotalExpense.Add(entry.Amount)
		}

		s.CategoryTotals[key.Category] = s.CategoryTotals[key.Category].Add(entry.Amount)
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	if s.TotalIncome.IsPositive() {
		s.SavingsRatePct = s.Balance.Div(s.TotalIncome).Mul(decimal.NewFromInt(100))
	}

	for category, limit := range limits {
		if !limit.IsPositive() {
			continue
		}

		total := s.CategoryTotals[category]
		s.Breaches[category] = Breach{
			Limit:    limit,
			Total:    total,
			UsedPct:  total.Div(limit).Mul(decimal.NewFromInt(100)),
			Exceeded: total.GreaterThan(limit),
		}
	}

	return s
}

// RankedGroup is one entry of the top expense ranking.
type RankedGroup struct {
	Label  string          `json:"label" example:"Fixkosten / Wohnen"` // "{main} / {sub}"
	Amount decimal.Decimal `json:"amount" example:"1000"`
}

// TopSubcategories groups all non-income entries by (main category,
// subcategory), sums them and returns the n largest groups in
// descending order. Groups with equal sums keep their enumeration
// order, the sort is stable.
func TopSubcategories(ledger *models.Ledger, kinds models.Kinds, n int) []RankedGroup {
	sums := map[string]decimal.Decimal{}
	var order []string

	// Keys() enumerates lexically, which makes tie order deterministic
	for _, key := range ledger.Keys() {
		if kinds.Of(key.Category) == models.KindIncome {
			continue
		}

		label := fmt.Sprintf("%s / %s", key.Category, key.Subcategory)
		if _, ok := sums[label]; !ok {
			order = append(order, label)
		}
		sums[label] = sums[label].Add(ledger.Get(key).Amount)
	}

	groups := make([]RankedGroup, 0, len(order))
	for _, label := range order {
		groups = append(groups, RankedGroup{Label: label, Amount: sums[label]})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount.GreaterThan(groups[j].Amount)
	})

	if n < len(groups) {
		groups = groups[:n]
	}

	return groups
}

// GoalProgress is the state of the savings goal for one month.
type GoalProgress struct {
	Goal     decimal.Decimal `json:"goal" example:"500"`
	Progress decimal.Decimal `json:"progress" example:"320"` // balance clamped to [0, goal]
	Pct      decimal.Decimal `json:"pct" example:"64"`
}

// Goal computes the progress of the balance towards a savings goal.
// A goal of zero or less always yields zero progress.
func Goal(balance, goal decimal.Decimal) GoalProgress {
	p := GoalProgress{Goal: goal}
	if !goal.IsPositive() {
		return p
	}

	progress := balance
	if progress.IsNegative() {
		progress = decimal.Zero
	}
	if progress.GreaterThan(goal) {
		progress = goal
	}

	p.Progress = progress
	p.Pct = progress.Div(goal).Mul(decimal.NewFromInt(100))

	return p
}
