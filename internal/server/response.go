package server

import (
	"github.com/gin-gonic/gin"
)

// ErrorEnvelope is the body of every failed request.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, msg, details string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: msg, Details: details})
}
