package controllers

import (
	"errors"
	"log"
	"net/http"

	"teamboard/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondStoreError maps data-layer failures to responses. Persistence
// errors are logged with full detail but the client only sees a generic
// message; the transaction has already been rolled back by the store.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
