package jalali_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-jalali/internal/jalali"
)

func TestIsLeapYear_ModernYears(t *testing.T) {
	leap := map[int]bool{
		1370: true, 1375: true, 1379: true, 1383: true, 1387: true, 1391: true,
		1395: true, 1399: true, 1403: true, 1408: true, 1412: true, 1416: true,
	}

	for y := 1370; y < 1420; y++ {
		assert.Equal(t, leap[y], jalali.IsLeapYear(y), "Leap classification of %d", y)
	}
}

func TestIsLeapYear_OutsideTable(t *testing.T) {
	assert.False(t, jalali.IsLeapYear(-62))
	assert.False(t, jalali.IsLeapYear(3178))
	assert.False(t, jalali.IsLeapYear(100000))
}

// TestIsLeapYear_MatchesEsfandLength verifies, for the whole supported range,
// that a year is leap exactly when Esfand 30 exists and the year spans 366 days.
func TestIsLeapYear_MatchesEsfandLength(t *testing.T) {
	for y := jalali.MinYear; y < jalali.MaxYear; y++ {
		start, err := jalali.ToGregorian(jdate(y, jalali.Farvardin, 1))
		require.NoError(t, err)
		next, err := jalali.ToGregorian(jdate(y+1, jalali.Farvardin, 1))
		require.NoError(t, err)

		length := int(next.Time(time.UTC).Sub(start.Time(time.UTC)).Hours() / 24)
		_, esfand30 := jalali.ToGregorian(jdate(y, jalali.Esfand, 30))

		if jalali.IsLeapYear(y) {
			if length != 366 || esfand30 != nil {
				t.Fatalf("year %d is leap but spans %d days (Esfand 30 error: %v)", y, length, esfand30)
			}
		} else if length != 365 || esfand30 == nil {
			t.Fatalf("year %d is common but spans %d days (Esfand 30 accepted)", y, length)
		}
	}
}

func TestIsLeapYear_ViaGregorianDate(t *testing.T) {
	// 2024-03-20 is 1403/01/01, a leap year.
	j, err := jalali.ToJalali(gdate(2024, time.March, 20))
	require.NoError(t, err)
	assert.True(t, j.IsLeap())
	assert.True(t, jalali.IsLeapYear(j.Year))

	j, err = jalali.ToJalali(gdate(2023, time.May, 15))
	require.NoError(t, err)
	assert.False(t, j.IsLeap())
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month jalali.Month
		want  int
	}{
		{1402, jalali.Farvardin, 31},
		{1402, jalali.Shahrivar, 31},
		{1402, jalali.Mehr, 30},
		{1402, jalali.Bahman, 30},
		{1402, jalali.Esfand, 29},
		{1403, jalali.Esfand, 30},
		{1402, 0, 0},
		{1402, 13, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, jalali.DaysInMonth(tt.year, tt.month), "%d/%d", tt.year, tt.month)
	}
}

func TestDayOfYear(t *testing.T) {
	assert.Equal(t, 1, jdate(1402, jalali.Farvardin, 1).DayOfYear())
	assert.Equal(t, 186, jdate(1402, jalali.Shahrivar, 31).DayOfYear())
	assert.Equal(t, 187, jdate(1402, jalali.Mehr, 1).DayOfYear())
	assert.Equal(t, 365, jdate(1402, jalali.Esfand, 29).DayOfYear())
	assert.Equal(t, 366, jdate(1403, jalali.Esfand, 30).DayOfYear())
}
