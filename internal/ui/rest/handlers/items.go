package handlers

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/items-archetype/internal/domain/item"
	"github.com/khedhrije/items-archetype/internal/domain/validation"
)

const itemCreatedMessage = "Item created successfully!"

type itemLookupResponse struct {
	ItemID  *big.Int `json:"item_id"`
	Q       string   `json:"q,omitempty"`
	Message string   `json:"message"`
}

type itemCreatedResponse struct {
	Message string      `json:"message"`
	Item    item.Record `json:"item"`
}

// ReadItem echoes the item ID and, when non-empty, the search query.
func (h *handler) ReadItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "item_id")
		if err != nil {
			h.reject(c, err)
			return
		}

		q, _ := lastQuery(c, "q")
		if q != "" {
			c.JSON(http.StatusOK, itemLookupResponse{
				ItemID:  id,
				Q:       q,
				Message: fmt.Sprintf("You searched for item %s with query '%s'", id.String(), q),
			})
			return
		}
		c.JSON(http.StatusOK, itemLookupResponse{
			ItemID:  id,
			Message: fmt.Sprintf("This is item %s", id.String()),
		})
	}
}

// CreateItem validates the body into an Item and echoes it back.
func (h *handler) CreateItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "Request Entity Too Large"})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "There was an error reading the body"})
			return
		}

		it, err := item.Decode(raw)
		if errors.Is(err, validation.ErrValidation) {
			h.reject(c, err)
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
			return
		}

		_, taxed := it.PriceWithTax()
		h.observer.ItemCreated(taxed)
		c.JSON(http.StatusOK, itemCreatedResponse{
			Message: itemCreatedMessage,
			Item:    it.Dump(),
		})
	}
}
