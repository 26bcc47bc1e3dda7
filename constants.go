//Package datetime converts between Unix timestamps and Gregorian calendar fields.
//
//A timestamp is an unsigned count of seconds since 1970-01-01T00:00:00Z.
//All functions are pure: no clock, no locale, no time zones and no leap seconds.
//Dates before the epoch are not supported.
package datetime

import "strconv"

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour

	DaysPerYear     = 365
	DaysPerLeapYear = 366

	//First year that can be represented, year of timestamp 0
	EpochYear = 1970
	//1970-01-01 was a Thursday
	EpochWeekday = Thursday

	daysPer400Years = 400*DaysPerYear + 97
)

//Days per month in a non leap year, indexed by month (1-12)
var daysInMonth = [13]uint8{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

//Weekday numbers the days of the week, Sunday = 0 up to Saturday = 6.
//The numbering matches time.Weekday.
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d Weekday) String() string {
	if int(d) < len(weekdayNames) {
		return weekdayNames[d]
	}
	return "%!Weekday(" + strconv.Itoa(int(d)) + ")"
}
