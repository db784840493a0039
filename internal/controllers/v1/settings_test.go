package v1_test

import (
	"net/http"

	v1 "github.com/budgetplanner/backend/internal/controllers/v1"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/test"
)

func (suite *TestSuiteStandard) TestGetSettingsDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.DarkMode)
	suite.Assert().True(response.Data.AutoFill)
	suite.Assert().Contains(response.Data.Structure, "Fixkosten")
	suite.Assert().True(response.Data.SavingsGoal.IsZero())
}

func (suite *TestSuiteStandard) TestUpdateSettings() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"dark_mode":    false,
		"savings_goal": "500",
		"category_kinds": map[string]string{
			"Sparen": "saving",
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().False(response.Data.DarkMode)
	suite.Assert().True(response.Data.AutoFill, "unsent fields must stay unchanged")
	suite.Assert().Equal("500", response.Data.SavingsGoal.String())
	suite.Assert().Equal(models.KindSaving, response.Data.CategoryKinds["Sparen"])
}

func (suite *TestSuiteStandard) TestUpdateSettingsInvalidKind() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"category_kinds": map[string]string{
			"Sparen": "hoarding",
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateSettingsInvalidBody() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", `{ "dark_mode": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSettingsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH", r.Header().Get("allow"))
}
