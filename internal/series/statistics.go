package series

import (
	"github.com/budgetplanner/backend/internal/budget"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthSummary pairs a month with its computed summary.
type MonthSummary struct {
	Month   types.Month    `json:"month" example:"2025-03"`
	Summary budget.Summary `json:"summary"`
}

// Summarize computes the summary for every point of a series.
func Summarize(points []Point, kinds models.Kinds, limits map[string]decimal.Decimal) []MonthSummary {
	summaries := make([]MonthSummary, 0, len(points))
	for _, p := range points {
		summaries = append(summaries, MonthSummary{
			Month:   p.Month,
			Summary: budget.Summarize(p.Ledger, kinds, limits),
		})
	}

	return summaries
}

// Statistics aggregates a series into totals and monthly averages.
type Statistics struct {
	Months          int               `json:"months" example:"12"` // Number of months with data
	TotalIncome     decimal.Decimal   `json:"totalIncome" example:"36000"`
	TotalExpense    decimal.Decimal   `json:"totalExpense" example:"14400"`
	Balance         decimal.Decimal   `json:"balance" example:"21600"`
	AvgIncome       decimal.Decimal   `json:"avgIncome" example:"3000"`
	AvgExpense      decimal.Decimal   `json:"avgExpense" example:"1200"`
	AvgBalance      decimal.Decimal   `json:"avgBalance" example:"1800"`
	MonthlyIncomes  []decimal.Decimal `json:"monthlyIncomes"`
	MonthlyExpenses []decimal.Decimal `json:"monthlyExpenses"`
}

// Stats computes the aggregate statistics over a series. An empty
// series yields the zero value.
func Stats(points []Point, kinds models.Kinds) Statistics {
	s := Statistics{
		Months:          len(points),
		MonthlyIncomes:  make([]decimal.Decimal, 0, len(points)),
		MonthlyExpenses: make([]decimal.Decimal, 0, len(points)),
	}
	if len(points) == 0 {
		return s
	}

	for _, p := range points {
		summary := budget.Summarize(p.Ledger, kinds, nil)
		s.TotalIncome = s.TotalIncome.Add(summary.TotalIncome)
		s.TotalExpense = s.TotalExpense.Add(summary.TotalExpense)
		s.MonthlyIncomes = append(s.MonthlyIncomes, summary.TotalIncome)
		s.MonthlyExpenses = append(s.MonthlyExpenses, summary.TotalExpense)
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	months := decimal.NewFromInt(int64(len(points)))
	s.AvgIncome = s.TotalIncome.Div(months)
	s.AvgExpense = s.TotalExpense.Div(months)
	s.AvgBalance = s.Balance.Div(months)

	return s
}
