package v1

import (
	"errors"
	"net/http"

	"github.com/budgetplanner/backend/internal/models"
	"github.com/budgetplanner/backend/internal/types"
)

type httpError struct {
	Error string `json:"error" example:"the month must be in YYYY-MM format with a year between 1900 and 2100"`
}

// status returns the appropriate HTTP status for a storage or model error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) ||
		errors.Is(err, models.ErrMonthFileCorrupt) ||
		errors.Is(err, models.ErrSettingsCorrupt) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, types.ErrMonthInvalid) {
		return http.StatusBadRequest
	}

	return http.StatusBadRequest
}

// Month errors
var (
	errAutoFillDisabled = errors.New("auto-fill is disabled in the settings")
)

// Schema errors
var (
	errCategoryExists = errors.New("a category with this name already exists")
)

// Statistics errors
var (
	errYearInvalid   = errors.New("the year query parameter must be between 1900 and 2100")
	errMetricInvalid = errors.New("the metric must be one of \"balance\", \"income\", \"expense\"")
	errNotEnoughData = errors.New("trend forecasting needs at least three months of data")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
	errLocaleInvalid   = errors.New("the locale query parameter is not a valid BCP 47 language tag")
)
