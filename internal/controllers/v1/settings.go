package v1

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterSettingsRoutes registers the routes for the settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// SettingsEditable supports partial updates, fields that are not sent
// stay unchanged.
type SettingsEditable struct {
	DarkMode       *bool                      `json:"dark_mode" example:"true"`
	AutoFill       *bool                      `json:"auto_fill" example:"true"`
	BudgetWarnings map[string]decimal.Decimal `json:"budget_warnings"` // Replaces all configured limits when sent
	CategoryKinds  map[string]string          `json:"category_kinds"`  // Replaces all explicit kinds when sent
	SavingsGoal    *decimal.Decimal           `json:"savings_goal" example:"500"`
}

type SettingsResponse struct {
	Data  *models.Settings `json:"data"`
	Error *string          `json:"error" example:"the settings file is not valid JSON"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings. Defaults are returned when no settings have been saved yet.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update settings
// @Description	Updates the settings. Only the fields that are sent are changed.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	var editable SettingsEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	// Validate the kinds before loading anything
	kinds := models.Kinds{}
	for category, raw := range editable.CategoryKinds {
		kind, err := models.ParseCategoryKind(raw)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SettingsResponse{
				Error: &e,
			})
			return
		}
		kinds[category] = kind
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	if editable.DarkMode != nil {
		settings.DarkMode = *editable.DarkMode
	}
	if editable.AutoFill != nil {
		settings.AutoFill = *editable.AutoFill
	}
	if editable.BudgetWarnings != nil {
		settings.BudgetWarnings = editable.BudgetWarnings
	}
	if editable.CategoryKinds != nil {
		settings.CategoryKinds = kinds
	}
	if editable.SavingsGoal != nil {
		settings.SavingsGoal = *editable.SavingsGoal
	}

	err = store.SaveSettings(settings)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}
