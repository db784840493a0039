package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OptionsGet(c *gin.Context) {
	c.Header("allow", "GET")
	c.Status(http.StatusNoContent)
}

func OptionsPost(c *gin.Context) {
	c.Header("allow", "POST")
	c.Status(http.StatusNoContent)
}

func OptionsPatch(c *gin.Context) {
	c.Header("allow", "PATCH")
	c.Status(http.StatusNoContent)
}

func OptionsGetPatch(c *gin.Context) {
	c.Header("allow", "GET, PATCH")
	c.Status(http.StatusNoContent)
}

func OptionsGetPutDelete(c *gin.Context) {
	c.Header("allow", "GET, PUT, DELETE")
	c.Status(http.StatusNoContent)
}

func OptionsPostDelete(c *gin.Context) {
	c.Header("allow", "POST, DELETE")
	c.Status(http.StatusNoContent)
}
