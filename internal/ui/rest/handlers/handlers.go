// Package handlers implements the business routes of the service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/items-archetype/internal/domain/validation"
	"github.com/khedhrije/items-archetype/internal/greeting"
)

// Handler exposes one gin.HandlerFunc factory per business route.
type Handler interface {
	Root() gin.HandlerFunc       // GET /
	ReadItem() gin.HandlerFunc   // GET /items/:item_id
	CreateItem() gin.HandlerFunc // POST /items/
	Greet() gin.HandlerFunc      // GET /greet/
}

// Observer is told about business outcomes. *metrics.Metrics satisfies it.
type Observer interface {
	ValidationFailed(route, errType string)
	ItemCreated(taxed bool)
}

type nopObserver struct{}

func (nopObserver) ValidationFailed(string, string) {}
func (nopObserver) ItemCreated(bool)                {}

// New builds the business handlers. A nil greeter falls back to
// greeting.Default and a nil observer discards events.
func New(greeter greeting.Greeter, observer Observer) Handler {
	if greeter == nil {
		greeter = greeting.Default
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &handler{greeter: greeter, observer: observer}
}

type handler struct {
	greeter  greeting.Greeter
	observer Observer
}

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Detail []validation.FieldError `json:"detail"`
}

// reject answers 422 with the structured field errors.
func (h *handler) reject(c *gin.Context, err error) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		verr = validation.New()
	}
	for _, f := range verr.Fields {
		h.observer.ValidationFailed(c.FullPath(), f.Type)
	}
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, validationResponse{Detail: verr.Fields})
}
