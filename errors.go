package datetime

import "errors"

var (
	ErrYearBeforeEpoch = errors.New("year before 1970")       //Returned when composing a year before EpochYear
	ErrInvalidMonth    = errors.New("invalid month")          //Returned when a month is outside 1-12
	ErrInvalidDay      = errors.New("invalid day")            //Returned when a day is outside 1 and the number of days in the month
	ErrInvalidHour     = errors.New("invalid hour")           //Returned when an hour is outside 0-23
	ErrInvalidMinute   = errors.New("invalid minute")         //Returned when a minute is outside 0-59
	ErrInvalidSecond   = errors.New("invalid second")         //Returned when a second is outside 0-59
	ErrOverflow        = errors.New("timestamp out of range") //Returned when a date does not fit in the target representation
	ErrSyntax          = errors.New("invalid syntax")         //Returned by Parse for malformed input
)

