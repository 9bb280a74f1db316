package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkpaper-express/internal/domain"
)

// respondError maps service errors onto HTTP statuses: field-level
// validation failures become 400s with details, missing entities 404s,
// anything else a generic 500. entity names what was asked for,
// action what was attempted.
func respondError(c *gin.Context, err error, entity, action string) {
	if ve, ok := domain.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input", "errors": ve.Fields})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to " + action})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// idParam parses an integer path parameter, writing a 400 on failure.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
