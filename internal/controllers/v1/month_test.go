package v1_test

import (
	"net/http"

	v1 "github.com/budgetplanner/backend/internal/controllers/v1"
	"github.com/budgetplanner/backend/test"
	"github.com/shopspring/decimal"
)

func testEntries() []v1.EntryEditable {
	return []v1.EntryEditable{
		{Category: "Einnahmen", Subcategory: "Einkommen", Item: "Gehalt", Amount: decimal.NewFromInt(3000)},
		{Category: "Fixkosten", Subcategory: "Wohnen", Item: "Miete", Amount: decimal.NewFromInt(1000)},
		{Category: "Variable Kosten", Subcategory: "Essen", Item: "Supermarkt", Amount: decimal.NewFromInt(200)},
	}
}

func (suite *TestSuiteStandard) TestMonthInvalid() {
	for _, month := range []string{"2025-13", "2025-00", "1899-12", "not-a-month"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/"+month, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetMonthEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Empty(response.Data.Entries)
	suite.Assert().True(response.Data.Summary.Balance.IsZero())
	suite.Assert().True(response.Data.Summary.SavingsRatePct.IsZero())
}

func (suite *TestSuiteStandard) TestReplaceMonth() {
	response := suite.replaceTestMonth("2025-03", testEntries())

	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Entries, 3)

	summary := response.Data.Summary
	suite.Assert().Equal("3000", summary.TotalIncome.String())
	suite.Assert().Equal("1200", summary.TotalExpense.String())
	suite.Assert().Equal("1000", summary.FixedTotal.String())
	suite.Assert().Equal("200", summary.VariableTotal.String())
	suite.Assert().Equal("1800", summary.Balance.String())
	suite.Assert().Equal("60", summary.SavingsRatePct.String())

	suite.Require().NotEmpty(response.Data.TopExpenses)
	suite.Assert().Equal("Fixkosten / Wohnen", response.Data.TopExpenses[0].Label)
}

func (suite *TestSuiteStandard) TestReplaceMonthInvalidBody() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/months/2025-03", `{ "invalid": }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateEntry() {
	suite.replaceTestMonth("2025-03", testEntries())

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/months/2025-03/entries", v1.EntryEditable{
		Category:    "Variable Kosten",
		Subcategory: "Essen",
		Item:        "Restaurant",
		Amount:      decimal.NewFromInt(80),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Entries, 4)
	suite.Assert().Equal("280", response.Data.Summary.VariableTotal.String())
}

func (suite *TestSuiteStandard) TestUpdateEntryZeroRemoves() {
	suite.replaceTestMonth("2025-03", testEntries())

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/months/2025-03/entries", v1.EntryEditable{
		Category:    "Variable Kosten",
		Subcategory: "Essen",
		Item:        "Supermarkt",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data.Entries, 2)
}

func (suite *TestSuiteStandard) TestDeleteMonth() {
	suite.replaceTestMonth("2025-03", testEntries())

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/months/2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data.Entries)
}

func (suite *TestSuiteStandard) TestDeleteMonthWithoutData() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/months/2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestBudgetWarning() {
	patch := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"budget_warnings": map[string]string{"Variable Kosten": "150"},
	})
	test.AssertHTTPStatus(suite.T(), &patch, http.StatusOK)

	response := suite.replaceTestMonth("2025-03", testEntries())

	breach, ok := response.Data.Summary.Breaches["Variable Kosten"]
	suite.Require().True(ok)
	suite.Assert().True(breach.Exceeded)
	suite.Assert().Equal("150", breach.Limit.String())
	suite.Assert().Equal("200", breach.Total.String())
}

func (suite *TestSuiteStandard) TestAutoFill() {
	suite.replaceTestMonth("2025-03", testEntries())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/months/2025-04/autofill", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AutoFillResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(1, response.Data.Filled)
	suite.Require().Len(response.Data.Month.Entries, 1)
	suite.Assert().Equal("Miete", response.Data.Month.Entries[0].Item)
}

func (suite *TestSuiteStandard) TestAutoFillDisabled() {
	patch := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"auto_fill": false,
	})
	test.AssertHTTPStatus(suite.T(), &patch, http.StatusOK)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/months/2025-04/autofill", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMonthOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months/2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PUT, DELETE", r.Header().Get("allow"))
}
