package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Hello, FastAPI!"

// Root returns the fixed welcome message.
func (h *handler) Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, messageResponse{Message: welcomeMessage})
	}
}
