package datetime

import "github.com/SebastiaanKlippert/go-datetime/julian"

//DateTime holds the calendar fields of a timestamp.
//Weekday is derived from the date, it is ignored when a DateTime is converted back to a timestamp.
type DateTime struct {
	Year    uint64
	Month   uint8
	Day     uint8
	Hour    uint8
	Minute  uint8
	Second  uint8
	Weekday Weekday
}

//Decompose splits a timestamp into its calendar fields.
//Every uint64 is a valid timestamp, Decompose never fails.
func Decompose(ts uint64) DateTime {
	year, yday := yearOf(ts / SecondsPerDay)
	month, day := monthOf(year, yday)
	return DateTime{
		Year:    year,
		Month:   month,
		Day:     day,
		Hour:    Hour(ts),
		Minute:  Minute(ts),
		Second:  Second(ts),
		Weekday: DayOfWeek(ts),
	}
}

//Returns the year of ts
func Year(ts uint64) uint64 {
	year, _ := yearOf(ts / SecondsPerDay)
	return year
}

//Returns the month of ts, 1-12
func Month(ts uint64) uint8 {
	year, yday := yearOf(ts / SecondsPerDay)
	month, _ := monthOf(year, yday)
	return month
}

//Returns the day of the month of ts, starting at 1
func Day(ts uint64) uint8 {
	year, yday := yearOf(ts / SecondsPerDay)
	_, day := monthOf(year, yday)
	return day
}

//Returns the day of the year of ts, 1 for January 1st
func YearDay(ts uint64) uint16 {
	_, yday := yearOf(ts / SecondsPerDay)
	return uint16(yday) + 1
}

//The clock fields only depend on the seconds elapsed, not on the date.

//Returns the hour of ts, 0-23
func Hour(ts uint64) uint8 {
	return uint8(ts % SecondsPerDay / SecondsPerHour)
}

//Returns the minute of ts, 0-59
func Minute(ts uint64) uint8 {
	return uint8(ts / SecondsPerMinute % 60)
}

//Returns the second of ts, 0-59
func Second(ts uint64) uint8 {
	return uint8(ts % SecondsPerMinute)
}

//Returns the day of the week of ts
func DayOfWeek(ts uint64) Weekday {
	return Weekday((uint64(EpochWeekday) + ts/SecondsPerDay) % 7)
}

//Returns the Julian day number of the date of ts
func JulianDay(ts uint64) uint64 {
	return julian.Day(ts)
}

//yearOf returns the year containing the given number of days since the epoch
//and the zero based day within that year.
func yearOf(days uint64) (year, yday uint64) {
	//Estimate with the average year length of a 400 year cycle, then correct.
	//The estimate is off by at most one or two years.
	year = EpochYear + days*400/daysPer400Years
	for daysBeforeYear(year) > days {
		year--
	}
	for daysBeforeYear(year+1) <= days {
		year++
	}
	return year, days - daysBeforeYear(year)
}

//monthOf walks the months of year, consuming whole months from the zero based
//day of the year. Returns the month and the day of the month (1 based).
func monthOf(year, yday uint64) (month, day uint8) {
	month = 1
	for month < 12 {
		n, _ := DaysInMonth(year, month)
		if yday < uint64(n) {
			break
		}
		yday -= uint64(n)
		month++
	}
	return month, uint8(yday) + 1
}
