package v1_test

import (
	"net/http"

	v1 "github.com/budgetplanner/backend/internal/controllers/v1"
	"github.com/budgetplanner/backend/test"
)

func (suite *TestSuiteStandard) TestGetProfiles() {
	// The store for the suite is created with the "default" profile
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfilesResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]string{"default"}, response.Data)
}

func (suite *TestSuiteStandard) TestProfilesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}
