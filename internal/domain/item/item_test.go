package item_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/khedhrije/items-archetype/internal/domain/item"
	"github.com/khedhrije/items-archetype/internal/domain/validation"
)

func fieldErrors(err error) []validation.FieldError {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

func TestDecode(t *testing.T) {
	Convey("Given an item request body", t, func() {
		Convey("When every field is supplied", func() {
			it, err := item.Decode([]byte(`{"name":"Book","description":"A great novel","price":19.99,"tax":0.05}`))

			Convey("Then the item is built from it", func() {
				So(err, ShouldBeNil)
				So(it.Name, ShouldEqual, "Book")
				So(*it.Description, ShouldEqual, "A great novel")
				So(it.Price.String(), ShouldEqual, "19.99")
				So(it.Tax.String(), ShouldEqual, "0.05")
			})

			Convey("And the dump carries the exact price with tax", func() {
				rec := it.Dump()
				So(rec.PriceWithTax, ShouldNotBeNil)
				So(*rec.PriceWithTax, ShouldEqual, 20.9895)
				So(rec.Price, ShouldEqual, 19.99)
				So(*rec.Tax, ShouldEqual, 0.05)
			})
		})

		Convey("When only the required fields are supplied", func() {
			it, err := item.Decode([]byte(`{"name":"Pen","price":2}`))

			Convey("Then optional fields stay nil and no tax applies", func() {
				So(err, ShouldBeNil)
				So(it.Description, ShouldBeNil)
				So(it.Tax, ShouldBeNil)
				rec := it.Dump()
				So(rec.Description, ShouldBeNil)
				So(rec.Tax, ShouldBeNil)
				So(rec.PriceWithTax, ShouldBeNil)
				So(rec.Price, ShouldEqual, 2.0)
			})
		})

		Convey("When the tax is zero", func() {
			it, err := item.Decode([]byte(`{"name":"Pen","price":2,"tax":0}`))

			Convey("Then the tax is echoed but no price with tax is added", func() {
				So(err, ShouldBeNil)
				_, ok := it.PriceWithTax()
				So(ok, ShouldBeFalse)
				rec := it.Dump()
				So(*rec.Tax, ShouldEqual, 0.0)
				So(rec.PriceWithTax, ShouldBeNil)
			})
		})

		Convey("When the price is a numeric string", func() {
			it, err := item.Decode([]byte(`{"name":"Pen","price":" 3.50 ","tax":"0.1"}`))

			Convey("Then it is coerced to a number", func() {
				So(err, ShouldBeNil)
				So(it.Price.Equal(decimal.RequireFromString("3.5")), ShouldBeTrue)
				pwt, ok := it.PriceWithTax()
				So(ok, ShouldBeTrue)
				So(pwt.String(), ShouldEqual, "3.85")
			})
		})

		Convey("When the price and tax are booleans", func() {
			truthy, err := item.Decode([]byte(`{"name":"Pen","price":true,"tax":true}`))
			So(err, ShouldBeNil)
			falsy, err := item.Decode([]byte(`{"name":"Pen","price":10,"tax":false}`))
			So(err, ShouldBeNil)

			Convey("Then true counts as one and false as zero", func() {
				So(truthy.Price.Equal(decimal.NewFromInt(1)), ShouldBeTrue)
				pwt, ok := truthy.PriceWithTax()
				So(ok, ShouldBeTrue)
				So(pwt.String(), ShouldEqual, "2")

				So(falsy.Tax.IsZero(), ShouldBeTrue)
				_, ok = falsy.PriceWithTax()
				So(ok, ShouldBeFalse)
				So(falsy.Dump().PriceWithTax, ShouldBeNil)
			})
		})

		Convey("When unknown fields are present", func() {
			_, err := item.Decode([]byte(`{"name":"Pen","price":1,"colour":"blue"}`))

			Convey("Then they are ignored", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When the price is missing", func() {
			_, err := item.Decode([]byte(`{"name":"Pen"}`))

			Convey("Then a missing field error points at the price", func() {
				So(errors.Is(err, validation.ErrValidation), ShouldBeTrue)
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeMissing)
				So(fes[0].Loc, ShouldResemble, []any{"body", "price"})
				So(fes[0].Msg, ShouldEqual, "Field required")
			})
		})

		Convey("When several fields are wrong", func() {
			_, err := item.Decode([]byte(`{"description":7,"price":"cheap","tax":[1]}`))

			Convey("Then every problem is reported in field order", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 4)
				So(fes[0].Type, ShouldEqual, validation.TypeMissing)
				So(fes[0].Loc, ShouldResemble, []any{"body", "name"})
				So(fes[1].Type, ShouldEqual, validation.TypeStringType)
				So(fes[1].Loc, ShouldResemble, []any{"body", "description"})
				So(fes[2].Type, ShouldEqual, validation.TypeFloatParsing)
				So(fes[2].Input, ShouldEqual, "cheap")
				So(fes[3].Type, ShouldEqual, validation.TypeFloatType)
				So(fes[3].Loc, ShouldResemble, []any{"body", "tax"})
			})
		})

		Convey("When a required field is null", func() {
			_, err := item.Decode([]byte(`{"name":null,"price":1}`))

			Convey("Then it is reported as a type error, not as missing", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeStringType)
			})
		})

		Convey("When the name is a number", func() {
			_, err := item.Decode([]byte(`{"name":42,"price":1}`))

			Convey("Then it is not coerced to text", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeStringType)
			})
		})

		Convey("When the price overflows a float", func() {
			_, err := item.Decode([]byte(`{"name":"Pen","price":1e400}`))

			Convey("Then it is rejected as non-finite", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeFiniteNumber)
			})
		})

		Convey("When the body is empty", func() {
			_, err := item.Decode([]byte("  "))

			Convey("Then the body itself is missing", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeMissing)
				So(fes[0].Loc, ShouldResemble, []any{"body"})
			})
		})

		Convey("When the body is null", func() {
			_, err := item.Decode([]byte("null"))

			Convey("Then the body is missing", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeMissing)
			})
		})

		Convey("When the body is malformed JSON", func() {
			_, err := item.Decode([]byte(`{"name": "Pen",`))

			Convey("Then a JSON decode error is reported", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeJSONInvalid)
				So(fes[0].Loc[0], ShouldEqual, "body")
				So(fes[0].Ctx, ShouldContainKey, "error")
			})
		})

		Convey("When the body is not valid UTF-8", func() {
			_, err := item.Decode([]byte("{\"name\":\"a\xff\",\"price\":1}"))

			Convey("Then a JSON decode error points at the bad byte", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeJSONInvalid)
				So(fes[0].Loc, ShouldResemble, []any{"body", 10})
				So(fes[0].Ctx, ShouldContainKey, "error")
			})
		})

		Convey("When the body is not an object", func() {
			_, err := item.Decode([]byte(`[1,2]`))

			Convey("Then a model attributes error is reported", func() {
				fes := fieldErrors(err)
				So(fes, ShouldHaveLength, 1)
				So(fes[0].Type, ShouldEqual, validation.TypeModelAttributesType)
				So(fes[0].Loc, ShouldResemble, []any{"body"})
			})
		})
	})
}

func TestPriceWithTax(t *testing.T) {
	Convey("Given items with and without tax", t, func() {
		tax := decimal.RequireFromString("0.2")
		taxed := item.Item{Name: "a", Price: decimal.RequireFromString("10"), Tax: &tax}
		untaxed := item.Item{Name: "b", Price: decimal.RequireFromString("10")}

		Convey("Then only the taxed one has a price with tax", func() {
			pwt, ok := taxed.PriceWithTax()
			So(ok, ShouldBeTrue)
			So(pwt.Equal(decimal.RequireFromString("12")), ShouldBeTrue)

			_, ok = untaxed.PriceWithTax()
			So(ok, ShouldBeFalse)
		})
	})
}
