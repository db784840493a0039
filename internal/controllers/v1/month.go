package v1

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:month", OptionsMonthDetail)
		r.GET("/:month", GetMonth)
		r.PUT("/:month", UpdateMonth)
		r.DELETE("/:month", DeleteMonth)
	}

	{
		r.OPTIONS("/:month/entries", OptionsMonthEntries)
		r.PATCH("/:month/entries", UpdateEntry)
	}

	{
		r.OPTIONS("/:month/autofill", OptionsMonthAutoFill)
		r.POST("/:month/autofill", AutoFillMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func OptionsMonthDetail(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/entries [options]
func OptionsMonthEntries(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/autofill [options]
func OptionsMonthAutoFill(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Get month
// @Description	Returns the entries and the computed summary for a month. Months without data return an empty ledger.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	ledger, _, found, err := store.LoadMonth(uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	if !found {
		ledger = models.NewLedger(uri.Month)
	}

	data := newMonth(ledger, settings)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Replace month
// @Description	Replaces all entries of a month. Entries with a zero amount and no note are dropped.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			entries	body		[]EntryEditable	true	"Entries"
// @Router			/v1/months/{month} [put]
func UpdateMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	var editables []EntryEditable
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	ledger := models.NewLedger(uri.Month)
	for _, editable := range editables {
		ledger.Set(editable.key(), editable.entry())
	}

	err = store.SaveMonth(ledger, settings.Structure)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	data := newMonth(ledger, settings)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Delete month
// @Description	Deletes the persisted data for a month. Deleting a month without data is not an error.
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [delete]
func DeleteMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = store.DeleteMonth(uri.Month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Update entry
// @Description	Sets a single entry of a month. A zero amount with an empty note removes the entry.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/months/{month}/entries [patch]
func UpdateEntry(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	var editable EntryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	ledger, _, found, err := store.LoadMonth(uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	if !found {
		ledger = models.NewLedger(uri.Month)
	}

	ledger.Set(editable.key(), editable.entry())

	err = store.SaveMonth(ledger, settings.Structure)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	data := newMonth(ledger, settings)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Auto-fill month
// @Description	Copies the fixed-cost entries of the previous month into this month and persists the result.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	AutoFillResponse
// @Failure		400		{object}	AutoFillResponse
// @Failure		500		{object}	AutoFillResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month}/autofill [post]
func AutoFillMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AutoFillResponse{
			Error: &e,
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AutoFillResponse{
			Error: &e,
		})
		return
	}

	if !settings.AutoFill {
		e := errAutoFillDisabled.Error()
		c.JSON(http.StatusBadRequest, AutoFillResponse{
			Error: &e,
		})
		return
	}

	ledger, _, found, err := store.LoadMonth(uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AutoFillResponse{
			Error: &e,
		})
		return
	}

	if !found {
		ledger = models.NewLedger(uri.Month)
	}

	filled, err := store.AutoFill(ledger, settings.CategoryKinds)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AutoFillResponse{
			Error: &e,
		})
		return
	}

	err = store.SaveMonth(ledger, settings.Structure)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AutoFillResponse{
			Error: &e,
		})
		return
	}

	data := newMonth(ledger, settings)
	c.JSON(http.StatusOK, AutoFillResponse{Data: &AutoFill{
		Filled: filled,
		Month:  data,
	}})
}
