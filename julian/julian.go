//Package julian converts between Unix timestamps, Julian day numbers and Gregorian dates.
//
//A Julian day number (JDN) counts days from noon on January 1st 4713 BC in the
//proleptic Julian calendar. It is used by xBase date fields and astronomy.
package julian

import "github.com/carlosjhr64/jd"

const (
	//Julian day number of 1970-01-01
	UnixEpoch = 2440588

	secondsPerDay = 86400
)

//Day returns the Julian day number of the date of timestamp ts
func Day(ts uint64) uint64 {
	return ts/secondsPerDay + UnixEpoch
}

//Timestamp returns the timestamp of midnight UTC at the start of Julian day jdn.
//Returns false for days before the Unix epoch or beyond the timestamp range.
func Timestamp(jdn uint64) (uint64, bool) {
	if jdn < UnixEpoch {
		return 0, false
	}
	days := jdn - UnixEpoch
	if days > ^uint64(0)/secondsPerDay {
		return 0, false
	}
	return days * secondsPerDay, true
}

//Date converts a Julian day number to a Gregorian year, month and day
// y, m, d := julian.Date(2453738)
// y==2006 && m==1 && d==2 //=> true
func Date(jdn int) (year, month, day int) {
	return jd.J2YMD(jdn)
}

//FromDate converts a Gregorian year, month and day to a Julian day number
// julian.FromDate(2006, 1, 2) == 2453738 //=> true
func FromDate(year, month, day int) int {
	return jd.YMD2J(year, month, day)
}
