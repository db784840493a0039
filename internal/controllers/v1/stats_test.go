package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/budgetplanner/backend/internal/controllers/v1"
	"github.com/budgetplanner/backend/test"
	"github.com/shopspring/decimal"
)

// seedMonths persists months 2025-01 and following with an income of
// 10, 20, 30, ... so that the balance series is strictly linear.
func (suite *TestSuiteStandard) seedMonths(count int) {
	for i := 0; i < count; i++ {
		suite.replaceTestMonth(fmt.Sprintf("2025-%02d", i+1), []v1.EntryEditable{
			{Category: "Einnahmen", Subcategory: "Gehalt", Item: "Gehalt Hauptjob", Amount: decimal.NewFromInt(int64((i + 1) * 10))},
		})
	}
}

func (suite *TestSuiteStandard) TestComparison() {
	suite.seedMonths(3)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/comparison?month=2025-03&count=6", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ComparisonResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("2025-01", response.Data[0].Month.String())
	suite.Assert().Equal("2025-03", response.Data[2].Month.String())
	suite.Assert().Equal("10", response.Data[0].Summary.TotalIncome.String())
	suite.Assert().Equal("30", response.Data[2].Summary.TotalIncome.String())
}

func (suite *TestSuiteStandard) TestComparisonEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/comparison?month=2025-03&count=6", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ComparisonResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestYear() {
	suite.seedMonths(3)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/year?year=2025", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.YearResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2025, response.Data.Year)
	suite.Assert().Equal(3, response.Data.Months)
	suite.Assert().Equal("60", response.Data.TotalIncome.String())
	suite.Assert().Equal("20", response.Data.AvgIncome.String())
}

func (suite *TestSuiteStandard) TestYearInvalid() {
	for _, year := range []string{"1899", "2101", "0"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/year?year="+year, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestYearMissingParameter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/year", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTrends() {
	suite.seedMonths(3)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/trends?month=2025-03&count=3&horizon=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TrendsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("balance", response.Data.Metric)
	suite.Assert().Equal([]float64{10, 20, 30}, response.Data.History)
	suite.Assert().InDelta(10, response.Data.Forecast.Slope, 1e-9)
	suite.Assert().InDelta(10, response.Data.Forecast.Intercept, 1e-9)

	suite.Require().Len(response.Data.Forecast.Forecast, 2)
	suite.Assert().InDelta(40, response.Data.Forecast.Forecast[0], 1e-9)
	suite.Assert().InDelta(50, response.Data.Forecast.Forecast[1], 1e-9)
}

func (suite *TestSuiteStandard) TestTrendsMetricIncome() {
	suite.seedMonths(3)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/trends?month=2025-03&count=3&metric=income", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TrendsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("income", response.Data.Metric)
	suite.Assert().Equal([]float64{10, 20, 30}, response.Data.History)
}

func (suite *TestSuiteStandard) TestTrendsMetricInvalid() {
	suite.seedMonths(3)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/trends?month=2025-03&metric=turnover", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTrendsNotEnoughData() {
	suite.seedMonths(2)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats/trends?month=2025-03&count=12", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
