package v1

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the routes for profiles with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfiles)
	r.GET("", GetProfiles)
}

type ProfilesResponse struct {
	Data  []string `json:"data"` // Names of all profiles, sorted
	Error *string  `json:"error" example:"an error occurred on the server during this request"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles [options]
func OptionsProfiles(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get profiles
// @Description	Returns the names of all budget profiles in the data directory
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfilesResponse
// @Failure		500	{object}	ProfilesResponse
// @Router			/v1/profiles [get]
func GetProfiles(c *gin.Context) {
	profiles, err := store.Profiles()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfilesResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ProfilesResponse{Data: profiles})
}
