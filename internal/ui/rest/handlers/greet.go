package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/items-archetype/internal/greeting"
)

// Greet greets the name query parameter, or greeting.DefaultName when the
// parameter is absent. A present but empty name is greeted as given.
func (h *handler) Greet() gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := lastQuery(c, "name")
		if !ok {
			name = greeting.DefaultName
		}
		c.JSON(http.StatusOK, messageResponse{Message: h.greeter.Greet(name)})
	}
}
