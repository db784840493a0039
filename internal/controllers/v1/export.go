package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/csv", OptionsExportMonth)
	r.GET("/:month/csv", ExportMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/export/{month}/csv [options]
func OptionsExportMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Export month
// @Description	Exports the entries of a month as a semicolon separated CSV file with decimal commas
// @Tags			Export
// @Produce		text/csv
// @Success		200		{string}	string	"The CSV file"
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/export/{month}/csv [get]
func ExportMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	ledger, _, found, err := store.LoadMonth(uri.Month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, httpError{
			Error: models.ErrResourceNotFound.Error(),
		})
		return
	}

	var buf bytes.Buffer
	err = storage.ExportCSV(&buf, ledger)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=budget_%s.csv", uri.Month))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
