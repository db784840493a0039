package v1_test

import (
	"net/http"

	v1 "github.com/budgetplanner/backend/internal/controllers/v1"
	"github.com/budgetplanner/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExportMonth() {
	suite.replaceTestMonth("2025-03", []v1.EntryEditable{
		{Category: "Fixkosten", Subcategory: "Wohnen", Item: "Miete", Amount: decimal.RequireFromString("1000.5")},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/2025-03/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Equal("attachment; filename=budget_2025-03.csv", r.Header().Get("Content-Disposition"))
	suite.Assert().Contains(r.Body.String(), "Hauptkategorie;Unterkategorie;Posten;Betrag;Notiz")
	suite.Assert().Contains(r.Body.String(), "Fixkosten;Wohnen;Miete;1000,5;")
}

func (suite *TestSuiteStandard) TestExportMonthWithoutData() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/2025-03/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExportMonthInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/2025-13/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
