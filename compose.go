package datetime

import (
	"fmt"
	"math"
	"math/bits"
)

//Years after this one always overflow, their first day is more than 2^64-1 seconds after the epoch
const maxYear = EpochYear + math.MaxUint64/SecondsPerDay/DaysPerYear

//ToTimestamp converts calendar fields to seconds since the epoch.
//The fields are checked in order year, month, day, hour, minute, second and the
//error of the first invalid field is returned (ErrYearBeforeEpoch, ErrInvalidMonth, ...).
//Returns ErrOverflow if the instant lies after 2^64-1 seconds.
func ToTimestamp(year uint64, month, day, hour, minute, second uint8) (uint64, error) {
	if err := ValidateDateTime(year, month, day, hour, minute, second); err != nil {
		return 0, err
	}
	if year > maxYear {
		return 0, fmt.Errorf("%w: year %d", ErrOverflow, year)
	}
	days := daysBeforeYear(year) + daysBeforeMonth(year, month) + uint64(day) - 1
	clock := uint64(hour)*SecondsPerHour + uint64(minute)*SecondsPerMinute + uint64(second)

	hi, ts := bits.Mul64(days, SecondsPerDay)
	ts, carry := bits.Add64(ts, clock, 0)
	if hi != 0 || carry != 0 {
		return 0, fmt.Errorf("%w: %d-%02d-%02d", ErrOverflow, year, month, day)
	}
	return ts, nil
}

//Date returns the timestamp of midnight at the start of the given day.
func Date(year uint64, month, day uint8) (uint64, error) {
	return ToTimestamp(year, month, day, 0, 0, 0)
}

//Timestamp converts dt back to seconds since the epoch, Weekday is ignored.
func (dt DateTime) Timestamp() (uint64, error) {
	return ToTimestamp(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}
