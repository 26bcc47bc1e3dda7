package datetime

import "fmt"

//Reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year uint64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

//Returns the number of leap years in the half open range [start, end).
//It counts multiples of 4, 100 and 400, so the cost does not depend on the size of the range.
func LeapYearsBetween(start, end uint64) uint64 {
	if end <= start {
		return 0
	}
	return leapYearsBefore(end) - leapYearsBefore(start)
}

//Number of leap years in [0, year). Year 0 is divisible by 400 and counts as one.
func leapYearsBefore(year uint64) uint64 {
	if year == 0 {
		return 0
	}
	y := year - 1
	return y/4 - y/100 + y/400 + 1
}

//Returns 366 for leap years and 365 otherwise.
func DaysInYear(year uint64) uint64 {
	if IsLeapYear(year) {
		return DaysPerLeapYear
	}
	return DaysPerYear
}

//Returns the number of days in month of year.
//Returns ErrInvalidMonth when month is not in 1-12.
func DaysInMonth(year uint64, month uint8) (uint8, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if month == 2 && IsLeapYear(year) {
		return 29, nil
	}
	return daysInMonth[month], nil
}

//Days from 1970-01-01 to January 1st of year, year must be >= EpochYear.
//The caller makes sure the result does not overflow.
func daysBeforeYear(year uint64) uint64 {
	return (year-EpochYear)*DaysPerYear + LeapYearsBetween(EpochYear, year)
}

//Days from January 1st to the first day of month, month must be valid.
func daysBeforeMonth(year uint64, month uint8) uint64 {
	var days uint64
	for m := uint8(1); m < month; m++ {
		days += uint64(daysInMonth[m])
	}
	if month > 2 && IsLeapYear(year) {
		days++
	}
	return days
}
