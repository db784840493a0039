package v1_test

import (
	"net/http"
	"net/url"

	v1 "github.com/budgetplanner/backend/internal/controllers/v1"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/test"
)

func (suite *TestSuiteStandard) TestGetSchema() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/schema", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SchemaResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Contains(response.Data.Structure, "Fixkosten")
	suite.Assert().Equal(models.KindFixed, response.Data.Kinds["Fixkosten"])
	suite.Assert().Equal(models.KindIncome, response.Data.Kinds["Einnahmen"])
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/schema/categories", v1.CategoryEditable{
		Name: "Altersvorsorge",
		Kind: "saving",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SchemaResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Contains(response.Data.Structure, "Altersvorsorge")
	suite.Assert().Equal(models.KindSaving, response.Data.Kinds["Altersvorsorge"])
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/schema/categories", v1.CategoryEditable{
		Name: "Fixkosten",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalidKind() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/schema/categories", v1.CategoryEditable{
		Name: "Sonstiges",
		Kind: "unknown",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateSubcategory() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/schema/subcategories", v1.SubcategoryEditable{
		Category: "Fixkosten",
		Name:     "Mobilität",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SchemaResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.Data.Structure["Fixkosten"], "Mobilität")
}

func (suite *TestSuiteStandard) TestCreateSubcategoryMissingCategory() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/schema/subcategories", v1.SubcategoryEditable{
		Category: "Does not exist",
		Name:     "Mobilität",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateItem() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/schema/items", v1.ItemEditable{
		Category:    "Fixkosten",
		Subcategory: "Wohnen",
		Name:        "Hausrat",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SchemaResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.Data.Structure["Fixkosten"]["Wohnen"], "Hausrat")
}

func (suite *TestSuiteStandard) TestCreateItemMissingSubcategory() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/schema/items", v1.ItemEditable{
		Category:    "Fixkosten",
		Subcategory: "Does not exist",
		Name:        "Hausrat",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteItem() {
	query := url.Values{
		"category":    {"Fixkosten"},
		"subcategory": {"Wohnen"},
		"item":        {"Miete"},
	}

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/schema/items?"+query.Encode(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	get := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/schema", "")
	var response v1.SchemaResponse
	test.DecodeResponse(suite.T(), &get, &response)
	suite.Assert().NotContains(response.Data.Structure["Fixkosten"]["Wohnen"], "Miete")
}

func (suite *TestSuiteStandard) TestDeleteItemMissing() {
	query := url.Values{
		"category":    {"Fixkosten"},
		"subcategory": {"Wohnen"},
		"item":        {"Does not exist"},
	}

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/schema/items?"+query.Encode(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSchemaOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/schema/items", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("POST, DELETE", r.Header().Get("allow"))
}
