package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateStrict_ISOPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2024-01-05", "2024-01-05"},
		{"2024-01-05T14:30:00Z", "2024-01-05"},
		{"2024-01-05 garbage after", "2024-01-05"},
	}
	for _, tt := range tests {
		got, err := ParseDateStrict(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDateStrict_DayMonthYear(t *testing.T) {
	got, err := ParseDateStrict("5/1/2024")
	require.NoError(t, err)
	assert.Equal(t, Date("2024-01-05"), got)

	got, err = ParseDateStrict("31/12/2023")
	require.NoError(t, err)
	assert.Equal(t, Date("2023-12-31"), got)
}

func TestParseDateStrict_Unparseable(t *testing.T) {
	for _, in := range []string{"", "not a date", "13/13/2024", "2024-13-45"} {
		_, err := ParseDateStrict(in)
		assert.Error(t, err, in)
	}
}

func TestParseDate_FallsBackToToday(t *testing.T) {
	// The lenient parser keeps arithmetic total on dirty imports.
	assert.Equal(t, Today(), ParseDate("not a date"))
	assert.Equal(t, Date("2024-01-05"), ParseDate("2024-01-05"))
}

func TestDate_Ordering(t *testing.T) {
	// Canonical form makes string comparison chronological.
	assert.True(t, Date("2024-01-31") < Date("2024-02-01"))
	assert.True(t, Date("2023-12-31") < Date("2024-01-01"))
	assert.Equal(t, Date("2024-01-05"), MinDate("2024-01-05", "2024-02-01"))
	assert.Equal(t, Date("2024-02-01"), MaxDate("2024-01-05", "2024-02-01"))
}

func TestDate_AddDaysAndWeekday(t *testing.T) {
	d := Date("2024-02-28")
	assert.Equal(t, Date("2024-02-29"), d.AddDays(1), "2024 is a leap year")
	assert.Equal(t, Date("2024-03-01"), d.AddDays(2))

	// 2024-01-01 is a Monday
	assert.Equal(t, Monday, Date("2024-01-01").Weekday())
	assert.Equal(t, Sunday, Date("2024-01-07").Weekday())
}

func TestMonth_Bounds(t *testing.T) {
	assert.Equal(t, Date("2024-02-01"), Month("2024-02").First())
	assert.Equal(t, Date("2024-02-29"), Month("2024-02").Last())
	assert.Equal(t, Date("2023-02-28"), Month("2023-02").Last())
	assert.Equal(t, Date("2024-12-31"), Month("2024-12").Last())
}

func TestMonth_NextCrossesYear(t *testing.T) {
	assert.Equal(t, Month("2024-01"), Month("2023-12").Next())
	assert.Equal(t, Month("2024-02"), Month("2024-01").Next())
}

func TestMonth_Contains(t *testing.T) {
	assert.True(t, Month("2024-01").Contains("2024-01-31"))
	assert.False(t, Month("2024-01").Contains("2024-02-01"))
}

func TestMonthOf_ZeroPads(t *testing.T) {
	assert.Equal(t, Month("2024-03"), MonthOf(2024, 3))
	assert.Equal(t, Month("2024-11"), MonthOf(2024, 11))
}
