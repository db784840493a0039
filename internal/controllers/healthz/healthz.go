// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"
	"os"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

var dataDir string

// Connect sets the data directory the health check verifies.
func Connect(dir string) {
	dataDir = dir
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	map[string]string
// @Router			/healthz [get]
func Get(c *gin.Context) {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "the data directory is not accessible"})
		return
	}

	c.Status(http.StatusNoContent)
}
