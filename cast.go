package datetime

import (
	"fmt"
	"math"
	"time"

	"github.com/golang-sql/civil"
)

// This file contains conversions between timestamps and the time.Time and civil.DateTime types.

//Last timestamp ToTime converts, 9999-12-31T23:59:59Z
const MaxTime = 253402300799

//ToTime returns ts as a time.Time in UTC.
//Returns ErrOverflow for timestamps after MaxTime.
func ToTime(ts uint64) (time.Time, error) {
	if ts > MaxTime {
		return time.Time{}, fmt.Errorf("%w: %d after %d", ErrOverflow, ts, uint64(MaxTime))
	}
	return time.Unix(int64(ts), 0).UTC(), nil
}

//FromTime returns the timestamp of t, the location of t does not matter.
//Fractions of a second are truncated.
//Returns ErrYearBeforeEpoch for instants before 1970-01-01T00:00:00Z.
func FromTime(t time.Time) (uint64, error) {
	sec := t.Unix()
	if sec < 0 {
		return 0, fmt.Errorf("%w: %s", ErrYearBeforeEpoch, t.UTC().Format(time.RFC3339))
	}
	return uint64(sec), nil
}

//Civil returns dt as a civil.DateTime, Weekday is dropped.
func (dt DateTime) Civil() civil.DateTime {
	return civil.DateTime{
		Date: civil.Date{Year: int(dt.Year), Month: time.Month(dt.Month), Day: int(dt.Day)},
		Time: civil.Time{Hour: int(dt.Hour), Minute: int(dt.Minute), Second: int(dt.Second)},
	}
}

//FromCivil converts a civil.DateTime to a timestamp, the nanoseconds are truncated.
//Fields out of range give the same errors as ToTimestamp.
func FromCivil(c civil.DateTime) (uint64, error) {
	if c.Date.Year < EpochYear {
		return 0, fmt.Errorf("%w: %d", ErrYearBeforeEpoch, c.Date.Year)
	}
	return ToTimestamp(uint64(c.Date.Year), narrow(int(c.Date.Month)), narrow(c.Date.Day),
		narrow(c.Time.Hour), narrow(c.Time.Minute), narrow(c.Time.Second))
}

//narrow converts a civil field to uint8, values that do not fit become 255 which no field accepts
func narrow(v int) uint8 {
	if v < 0 || v > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v)
}
