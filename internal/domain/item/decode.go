package item

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/khedhrije/items-archetype/internal/domain/validation"
)

// fields is the loosely typed shape of a request body. Pointers tell an
// absent (or null) field apart from a zero value.
type fields struct {
	Name        *string          `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Tax         *decimal.Decimal `json:"tax"`
}

// fieldOrder keeps reported errors in declaration order.
var fieldOrder = map[string]int{"name": 0, "description": 1, "price": 2, "tax": 3}

var errInvalidUTF8 = errors.New("invalid UTF-8 in request body")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses a JSON request body into an Item. Every problem found is
// reported in a single *validation.Error.
func Decode(raw []byte) (Item, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Item{}, validation.New(validation.Missing(nil, validation.InBody))
	}

	if off := invalidUTF8Offset(raw); off >= 0 {
		return Item{}, validation.New(validation.JSONInvalid(errInvalidUTF8, validation.InBody, off))
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return Item{}, validation.New(validation.JSONInvalid(err, validation.InBody, syntaxErr.Offset))
		}
		return Item{}, validation.New(validation.ModelAttributesType(anyValue(raw), validation.InBody))
	}
	if obj == nil {
		return Item{}, validation.New(validation.Missing(nil, validation.InBody))
	}

	var (
		f       fields
		verr    = &validation.Error{}
		invalid = map[string]bool{}
	)
	f.Name = decodeString(obj, "name", true, verr, invalid)
	f.Description = decodeString(obj, "description", false, verr, invalid)
	f.Price = decodeNumber(obj, "price", true, verr, invalid)
	f.Tax = decodeNumber(obj, "tax", false, verr, invalid)

	if err := validate.Struct(f); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return Item{}, err
		}
		input := anyValue(raw)
		for _, fe := range ves {
			if invalid[fe.Field()] {
				continue
			}
			verr.Add(validation.Missing(input, validation.InBody, fe.Field()))
		}
	}

	if verr.Err() != nil {
		sort.SliceStable(verr.Fields, func(a, b int) bool {
			return fieldOrder[locField(verr.Fields[a])] < fieldOrder[locField(verr.Fields[b])]
		})
		return Item{}, verr
	}

	it := Item{
		Name:        *f.Name,
		Description: f.Description,
		Price:       *f.Price,
		Tax:         f.Tax,
	}
	return it, nil
}

func decodeString(obj map[string]json.RawMessage, key string, required bool, verr *validation.Error, invalid map[string]bool) *string {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	v := anyValue(raw)
	switch t := v.(type) {
	case nil:
		if required {
			verr.Add(validation.StringType(nil, validation.InBody, key))
			invalid[key] = true
		}
		return nil
	case string:
		return &t
	default:
		verr.Add(validation.StringType(v, validation.InBody, key))
		invalid[key] = true
		return nil
	}
}

func decodeNumber(obj map[string]json.RawMessage, key string, required bool, verr *validation.Error, invalid map[string]bool) *decimal.Decimal {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	v := anyValue(raw)

	var (
		d   decimal.Decimal
		err error
	)
	switch t := v.(type) {
	case nil:
		if required {
			verr.Add(validation.FloatType(nil, validation.InBody, key))
			invalid[key] = true
		}
		return nil
	case json.Number:
		d, err = decimal.NewFromString(t.String())
		if err != nil {
			verr.Add(validation.FloatParsing(t.String(), validation.InBody, key))
			invalid[key] = true
			return nil
		}
	case bool:
		d = decimal.Zero
		if t {
			d = decimal.NewFromInt(1)
		}
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			verr.Add(validation.FloatParsing(t, validation.InBody, key))
			invalid[key] = true
			return nil
		}
	default:
		verr.Add(validation.FloatType(v, validation.InBody, key))
		invalid[key] = true
		return nil
	}

	if math.IsInf(d.InexactFloat64(), 0) {
		verr.Add(validation.FiniteNumber(v, validation.InBody, key))
		invalid[key] = true
		return nil
	}
	return &d
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence in raw, or -1.
func invalidUTF8Offset(raw []byte) int {
	if utf8.Valid(raw) {
		return -1
	}
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// anyValue decodes an already validated JSON fragment, keeping numbers exact.
func anyValue(raw []byte) any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

func locField(f validation.FieldError) string {
	if len(f.Loc) < 2 {
		return ""
	}
	s, _ := f.Loc[1].(string)
	return s
}
