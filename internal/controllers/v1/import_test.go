package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	v1 "github.com/budgetplanner/backend/internal/controllers/v1"
	"github.com/budgetplanner/backend/test"
	"github.com/stretchr/testify/require"
)

// csvUpload builds a multipart request body with a single CSV file.
func csvUpload(t *testing.T, filename, content string) (*bytes.Buffer, map[string]string) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &body, map[string]string{"Content-Type": w.FormDataContentType()}
}

func (suite *TestSuiteStandard) TestImport() {
	body, headers := csvUpload(suite.T(), "statement.csv",
		"Buchungstag;Verwendungszweck;Betrag\n"+
			"01.03.2025;REWE SAGT DANKE 44123;-45,67\n"+
			"02.03.2025;Unknown Merchant;-12,30\n"+
			"03.03.2025;kaputt;not-a-number\n")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2, "the row without a parseable amount must be skipped")

	first := response.Data[0]
	suite.Assert().Equal("-45.67", first.Entry.Amount.String())
	suite.Require().NotNil(first.Target)
	suite.Assert().Equal("Supermarkt", first.Target.Item)

	suite.Assert().Nil(response.Data[1].Target, "unmatched rows must have no target")
}

func (suite *TestSuiteStandard) TestImportEnglishLocale() {
	body, headers := csvUpload(suite.T(), "statement.csv",
		"Description;Amount\n"+
			"NETFLIX.COM;-1,234.56\n")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import?amountColumn=Amount&descriptionColumn=Description&locale=en", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("-1234.56", response.Data[0].Entry.Amount.String())
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	body, headers := csvUpload(suite.T(), "statement.txt", "Betrag;Verwendungszweck\n")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportMissingColumn() {
	body, headers := csvUpload(suite.T(), "statement.csv", "Datum;Verwendungszweck\n01.03.2025;REWE\n")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportInvalidLocale() {
	body, headers := csvUpload(suite.T(), "statement.csv", "Betrag;Verwendungszweck\n")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import?locale=%21%21", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
