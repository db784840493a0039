package v1

import (
	"net/http"
	"time"

	"github.com/budgetplanner/backend/internal/forecast"
	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/series"
	"github.com/budgetplanner/backend/internal/types"
	"github.com/gin-gonic/gin"
)

const (
	defaultComparisonCount = 6
	defaultTrendHorizon    = 3
	minTrendPoints         = 3
)

// RegisterStatsRoutes registers the routes for the statistics views
// with the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/comparison", OptionsStats)
		r.GET("/comparison", GetComparison)
	}

	{
		r.OPTIONS("/year", OptionsStats)
		r.GET("/year", GetYear)
	}

	{
		r.OPTIONS("/trends", OptionsStats)
		r.GET("/trends", GetTrends)
	}
}

type QueryComparison struct {
	Month types.Month `form:"month" example:"2025-03"` // Last month of the range, defaults to the current month
	Count int         `form:"count" example:"6"`       // Number of months, defaults to 6
}

type QueryYear struct {
	Year int `form:"year" binding:"required" example:"2025"`
}

type QueryTrends struct {
	Month   types.Month `form:"month" example:"2025-03"`  // Last month of the series, defaults to the current month
	Count   int         `form:"count" example:"12"`       // Number of months to fit over, defaults to 12
	Horizon int         `form:"horizon" example:"3"`      // Number of months to project, defaults to 3
	Metric  string      `form:"metric" example:"balance"` // One of "balance", "income", "expense". Defaults to "balance".
}

type ComparisonResponse struct {
	Data  []series.MonthSummary `json:"data"`
	Error *string               `json:"error" example:"there is no data for this period"`
}

type YearResponse struct {
	Data  *YearStats `json:"data"`
	Error *string    `json:"error" example:"the year query parameter must be between 1900 and 2100"`
}

type YearStats struct {
	Year int `json:"year" example:"2025"`
	series.Statistics
}

type TrendsResponse struct {
	Data  *Trends `json:"data"`
	Error *string `json:"error" example:"trend forecasting needs at least three months of data"`
}

type Trends struct {
	Metric   string          `json:"metric" example:"balance"`
	Months   []types.Month   `json:"months"`  // Months the fit is based on, oldest first
	History  []float64       `json:"history"` // Metric values for those months
	Forecast forecast.Result `json:"forecast"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/stats/comparison [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Month comparison
// @Description	Returns the summaries of up to count consecutive months, oldest first. Months without data are skipped.
// @Tags			Statistics
// @Produce		json
// @Success		200		{object}	ComparisonResponse
// @Failure		400		{object}	ComparisonResponse
// @Failure		500		{object}	ComparisonResponse
// @Param			month	query		string	false	"Last month of the range in YYYY-MM format, defaults to the current month"
// @Param			count	query		int		false	"Number of months, defaults to 6"
// @Router			/v1/stats/comparison [get]
func GetComparison(c *gin.Context) {
	var query QueryComparison
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComparisonResponse{
			Error: &e,
		})
		return
	}

	if query.Month.IsZero() {
		query.Month = types.MonthOf(time.Now())
	}
	if query.Count < 1 {
		query.Count = defaultComparisonCount
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComparisonResponse{
			Error: &e,
		})
		return
	}

	points := series.Build(query.Month, query.Count, store.Loader())
	data := series.Summarize(points, settings.CategoryKinds, settings.BudgetWarnings)

	c.JSON(http.StatusOK, ComparisonResponse{Data: data})
}

// @Summary		Year statistics
// @Description	Returns totals and monthly averages over all months of a year that have data
// @Tags			Statistics
// @Produce		json
// @Success		200		{object}	YearResponse
// @Failure		400		{object}	YearResponse
// @Failure		500		{object}	YearResponse
// @Param			year	query		int	true	"The year"
// @Router			/v1/stats/year [get]
func GetYear(c *gin.Context) {
	var query QueryYear
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearResponse{
			Error: &e,
		})
		return
	}

	if query.Year < types.MinYear || query.Year > types.MaxYear {
		e := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, YearResponse{
			Error: &e,
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), YearResponse{
			Error: &e,
		})
		return
	}

	points := series.BuildYear(query.Year, store.Loader())
	data := YearStats{
		Year:       query.Year,
		Statistics: series.Stats(points, settings.CategoryKinds),
	}

	c.JSON(http.StatusOK, YearResponse{Data: &data})
}

// @Summary		Trend forecast
// @Description	Fits a linear trend over the metric of the past months and projects it into the future
// @Tags			Statistics
// @Produce		json
// @Success		200		{object}	TrendsResponse
// @Failure		400		{object}	TrendsResponse
// @Failure		500		{object}	TrendsResponse
// @Param			month	query		string	false	"Last month of the series in YYYY-MM format, defaults to the current month"
// @Param			count	query		int		false	"Number of months to fit over, defaults to 12"
// @Param			horizon	query		int		false	"Number of months to project, defaults to 3"
// @Param			metric	query		string	false	"One of balance, income, expense. Defaults to balance."
// @Router			/v1/stats/trends [get]
func GetTrends(c *gin.Context) {
	var query QueryTrends
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendsResponse{
			Error: &e,
		})
		return
	}

	if query.Month.IsZero() {
		query.Month = types.MonthOf(time.Now())
	}
	if query.Count < 1 {
		query.Count = 12
	}
	if query.Horizon < 1 {
		query.Horizon = defaultTrendHorizon
	}
	if query.Metric == "" {
		query.Metric = "balance"
	}

	if query.Metric != "balance" && query.Metric != "income" && query.Metric != "expense" {
		e := errMetricInvalid.Error()
		c.JSON(http.StatusBadRequest, TrendsResponse{
			Error: &e,
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendsResponse{
			Error: &e,
		})
		return
	}

	points := series.Build(query.Month, query.Count, store.Loader())
	if len(points) < minTrendPoints {
		e := errNotEnoughData.Error()
		c.JSON(http.StatusBadRequest, TrendsResponse{
			Error: &e,
		})
		return
	}

	summaries := series.Summarize(points, settings.CategoryKinds, nil)

	months := make([]types.Month, 0, len(summaries))
	history := make([]float64, 0, len(summaries))
	for _, s := range summaries {
		months = append(months, s.Month)

		var value float64
		switch query.Metric {
		case "income":
			value = s.Summary.TotalIncome.InexactFloat64()
		case "expense":
			value = s.Summary.TotalExpense.InexactFloat64()
		default:
			value = s.Summary.Balance.InexactFloat64()
		}
		history = append(history, value)
	}

	data := Trends{
		Metric:   query.Metric,
		Months:   months,
		History:  history,
		Forecast: forecast.Fit(history, query.Horizon),
	}

	c.JSON(http.StatusOK, TrendsResponse{Data: &data})
}
