package util

import (
	"database/sql/driver"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"

	"github.com/marquee-live/backoffice/internal/pkg/caldate"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("calendardate", calendarDate)
	validate.RegisterValidation("weekday", weekday)
	validate.RegisterCustomTypeFunc(nullValuer, null.Int{}, null.String{}, null.Time{}, null.Bool{})

	return validate
}

// calendarDate accepts a YYYY-MM-DD calendar date.
func calendarDate(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := caldate.Parse(fl.Field().String())
	return err == nil
}

// weekday accepts an integer day of week, 0 (Sunday) through 6 (Saturday).
func weekday(fl validator.FieldLevel) bool {
	if !fl.Field().CanInt() {
		return false
	}
	v := fl.Field().Int()
	return v >= 0 && v <= 6
}

func nullValuer(field reflect.Value) interface{} {
	if valuer, ok := field.Interface().(driver.Valuer); ok {
		val, err := valuer.Value()
		if err == nil {
			return val
		}
	}
	return nil
}
