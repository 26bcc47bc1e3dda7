package datetime

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

//validate is the singleton validator instance, safe for concurrent use after init
var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("mday", validDayOfMonth); err != nil {
		panic(err)
	}
}

//fields is the validation form of a date and time.
//Field order is the order in which errors are reported.
type fields struct {
	Year   uint64 `validate:"min=1970"`
	Month  uint8  `validate:"min=1,max=12"`
	Day    uint8  `validate:"min=1,mday"`
	Hour   uint8  `validate:"max=23"`
	Minute uint8  `validate:"max=59"`
	Second uint8  `validate:"max=59"`
}

//Sentinel error per struct field of fields
var fieldErrors = map[string]error{
	"Year":   ErrYearBeforeEpoch,
	"Month":  ErrInvalidMonth,
	"Day":    ErrInvalidDay,
	"Hour":   ErrInvalidHour,
	"Minute": ErrInvalidMinute,
	"Second": ErrInvalidSecond,
}

//validDayOfMonth checks the day against the length of the month of the sibling Year and Month fields.
//An invalid month passes here, the Month tag reports it first.
func validDayOfMonth(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	n, err := DaysInMonth(parent.FieldByName("Year").Uint(), uint8(parent.FieldByName("Month").Uint()))
	if err != nil {
		return true
	}
	return fl.Field().Uint() <= uint64(n)
}

func (f *fields) validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	//Fail on the first invalid field
	e := verrs[0]
	if sentinel, ok := fieldErrors[e.StructField()]; ok {
		return fmt.Errorf("%w: %v", sentinel, e.Value())
	}
	return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)", e.Namespace(), e.Tag(), e.Value())
}

//ValidateDate checks year, month and day the same way ToTimestamp does.
//Returns nil or the error for the first invalid field.
func ValidateDate(year uint64, month, day uint8) error {
	f := fields{Year: year, Month: month, Day: day}
	return f.validate()
}

//ValidateDateTime checks all fields the same way ToTimestamp does.
//Returns nil or the error for the first invalid field.
func ValidateDateTime(year uint64, month, day, hour, minute, second uint8) error {
	f := fields{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
	return f.validate()
}

func IsValidDate(year uint64, month, day uint8) bool {
	return ValidateDate(year, month, day) == nil
}

func IsValidDateTime(year uint64, month, day, hour, minute, second uint8) bool {
	return ValidateDateTime(year, month, day, hour, minute, second) == nil
}

//Validate checks the fields of dt, Weekday is not checked.
func (dt DateTime) Validate() error {
	return ValidateDateTime(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}
