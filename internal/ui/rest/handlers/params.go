package handlers

import (
	"math/big"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/items-archetype/internal/domain/validation"
)

// pathInt parses a path parameter as a base-10 integer of any size.
func pathInt(c *gin.Context, name string) (*big.Int, error) {
	raw := c.Param(name)
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, validation.New(validation.IntParsing(raw, validation.InPath, name))
	}
	return n, nil
}

// lastQuery returns the last value of a repeated query parameter and
// whether the parameter was present at all.
func lastQuery(c *gin.Context, name string) (string, bool) {
	values, ok := c.GetQueryArray(name)
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}
