package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/importer"
	"github.com/budgetplanner/backend/internal/importer/parser/bankcsv"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportBankCSV)
}

type ImportQuery struct {
	AmountColumn      string `form:"amountColumn" example:"Betrag"` // Header of the amount column, defaults to "Betrag"
	DescriptionColumn string `form:"descriptionColumn" example:"Verwendungszweck"` // Header of the description column, defaults to "Verwendungszweck"
	Locale            string `form:"locale" example:"de"` // BCP 47 tag for the number format, defaults to "de"
}

type ImportResponse struct {
	Data  []importer.Preview `json:"data"`
	Error *string            `json:"error" example:"you must send a file to this endpoint"`
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import bank statement
// @Description	Parses a semicolon separated bank statement CSV and returns entry previews with matched target items
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200					{object}	ImportResponse
// @Failure		400					{object}	ImportResponse
// @Failure		500					{object}	ImportResponse
// @Param			file				formData	file	true	"The CSV file"
// @Param			amountColumn		query		string	false	"Header of the amount column, defaults to Betrag"
// @Param			descriptionColumn	query		string	false	"Header of the description column, defaults to Verwendungszweck"
// @Param			locale				query		string	false	"BCP 47 tag for the number format, defaults to de"
// @Router			/v1/import [post]
func ImportBankCSV(c *gin.Context) {
	var query ImportQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	if query.AmountColumn == "" {
		query.AmountColumn = "Betrag"
	}
	if query.DescriptionColumn == "" {
		query.DescriptionColumn = "Verwendungszweck"
	}
	if query.Locale == "" {
		query.Locale = "de"
	}

	locale, err := language.Parse(query.Locale)
	if err != nil {
		e := errLocaleInvalid.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &e,
		})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}
	defer f.Close()

	previews, err := bankcsv.Parse(f, bankcsv.Options{
		AmountColumn:      query.AmountColumn,
		DescriptionColumn: query.DescriptionColumn,
		Locale:            locale,
	}, importer.DefaultRules())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ImportResponse{Data: previews})
}
