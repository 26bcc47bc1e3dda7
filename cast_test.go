package datetime

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTime(t *testing.T) {
	tm, err := ToTime(951782400)
	require.NoError(t, err)
	assert.True(t, tm.Equal(time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)), "have %v", tm)
	assert.Equal(t, time.UTC, tm.Location())

	tm, err = ToTime(MaxTime)
	require.NoError(t, err)
	assert.Equal(t, 9999, tm.Year())

	_, err = ToTime(MaxTime + 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestFromTime(t *testing.T) {
	ams, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		ams = time.FixedZone("CET", 3600)
	}
	tm := time.Date(1972, 1, 1, 2, 0, 0, 999999999, ams)
	ts, err := FromTime(tm)
	require.NoError(t, err)
	assert.Equal(t, uint64(63075600), ts)

	_, err = FromTime(time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC))
	assert.ErrorIs(t, err, ErrYearBeforeEpoch)

	ts, err = FromTime(time.Unix(0, 0))
	require.NoError(t, err)
	assert.Zero(t, ts)
}

func TestCivil(t *testing.T) {
	c := Decompose(1709251199).Civil()
	want := civil.DateTime{
		Date: civil.Date{Year: 2024, Month: time.February, Day: 29},
		Time: civil.Time{Hour: 23, Minute: 59, Second: 59},
	}
	assert.Equal(t, want, c)

	ts, err := FromCivil(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(1709251199), ts)
}

func TestFromCivilErrors(t *testing.T) {
	tests := []struct {
		c    civil.DateTime
		want error
	}{
		{civil.DateTime{Date: civil.Date{Year: -1, Month: 1, Day: 1}}, ErrYearBeforeEpoch},
		{civil.DateTime{Date: civil.Date{Year: 1969, Month: 1, Day: 1}}, ErrYearBeforeEpoch},
		{civil.DateTime{Date: civil.Date{Year: 2024, Month: 0, Day: 1}}, ErrInvalidMonth},
		{civil.DateTime{Date: civil.Date{Year: 2024, Month: 1, Day: 256}}, ErrInvalidDay},
		{civil.DateTime{Date: civil.Date{Year: 2024, Month: 1, Day: -1}}, ErrInvalidDay},
		{civil.DateTime{Date: civil.Date{Year: 2024, Month: 1, Day: 1}, Time: civil.Time{Hour: -1}}, ErrInvalidHour},
		{civil.DateTime{Date: civil.Date{Year: 2024, Month: 1, Day: 1}, Time: civil.Time{Minute: 60}}, ErrInvalidMinute},
		{civil.DateTime{Date: civil.Date{Year: 2024, Month: 1, Day: 1}, Time: civil.Time{Second: 1000}}, ErrInvalidSecond},
	}
	for _, tt := range tests {
		_, err := FromCivil(tt.c)
		assert.ErrorIs(t, err, tt.want, "FromCivil(%v)", tt.c)
	}
}
