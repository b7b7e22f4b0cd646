package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rromanowicz/task-list/internal/auth"
	"github.com/rromanowicz/task-list/internal/models"
)

// Auth rejects requests whose hash header is not in the gate's token
// snapshot. A rejected request never reaches a handler, so failed
// authorization has no side effects.
func Auth(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("hash")
		if token == "" || !gate.Authorize(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
			return
		}

		c.Next()
	}
}
