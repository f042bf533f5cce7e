package resp

import (
	"net/http"

	"canteen/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

// Error maps engine errors to their HTTP status.
func Error(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"ok": false, "error": err.Error()})
}
