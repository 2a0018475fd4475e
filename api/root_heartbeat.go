package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "PetFinder API healthy",
	})
}
