package validator

import (
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/routers"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders request validation failures as {"message": ...}. The
// middleware reports every failure as a 400, so failed security requirements and
// unknown routes are mapped to their own status here.
func ErrorHandler(c *gin.Context, message string, statusCode int) {
	switch {
	case strings.Contains(message, "SecurityRequirementsError"):
		statusCode = http.StatusUnauthorized
	case strings.Contains(message, routers.ErrPathNotFound.Error()):
		statusCode = http.StatusNotFound
	case strings.Contains(message, routers.ErrMethodNotAllowed.Error()):
		statusCode = http.StatusMethodNotAllowed
	}
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}
