package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

//The text form is ISO 8601 in UTC: YYYY-MM-DDTHH:MM:SSZ.
//Years are padded to 4 digits and may have more.

//Format returns ts as YYYY-MM-DDTHH:MM:SSZ
func Format(ts uint64) string {
	return Decompose(ts).String()
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

//Parse reads a date in one of the forms
//
//	YYYY-MM-DD
//	YYYY-MM-DDTHH:MM:SS
//	YYYY-MM-DDTHH:MM:SSZ
//
//The T may also be a single space. A date without a clock is midnight.
//Surrounding space is ignored and full width characters (as typed with East Asian
//input methods) are folded to their ASCII form first.
//Malformed input returns ErrSyntax, fields out of range return the errors of ToTimestamp.
func Parse(s string) (uint64, error) {
	in := strings.TrimSpace(width.Fold.String(s))

	date, clock, hasClock := strings.Cut(in, "T")
	if !hasClock {
		date, clock, hasClock = strings.Cut(in, " ")
	}
	if hasClock {
		clock = strings.TrimSuffix(clock, "Z")
	}

	dateParts := strings.Split(date, "-")
	if len(dateParts) != 3 || len(dateParts[0]) < 4 {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	year, err := strconv.ParseUint(dateParts[0], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: year %s", ErrOverflow, dateParts[0])
		}
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var f [5]uint8 //month, day, hour, minute, second
	twoDigits := dateParts[1:]
	if hasClock {
		clockParts := strings.Split(clock, ":")
		if len(clockParts) != 3 {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		twoDigits = append(twoDigits, clockParts...)
	}
	for i, part := range twoDigits {
		v, ok := parseTwoDigits(part)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		f[i] = v
	}
	return ToTimestamp(year, f[0], f[1], f[2], f[3], f[4])
}

func parseTwoDigits(s string) (uint8, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return (s[0]-'0')*10 + s[1] - '0', true
}
