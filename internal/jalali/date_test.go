package jalali_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-jalali/internal/jalali"
)

func TestMonth_String(t *testing.T) {
	assert.Equal(t, "Farvardin", jalali.Farvardin.String())
	assert.Equal(t, "Mehr", jalali.Mehr.String())
	assert.Equal(t, "Esfand", jalali.Esfand.String())
	assert.Equal(t, "%!Month(13)", jalali.Month(13).String())
}

func TestFromTime_UsesWallClockOfLocation(t *testing.T) {
	tehran := time.FixedZone("IRST", 3*3600+1800)

	// 21:00 UTC on 19 March is already 20 March in Tehran.
	instant := time.Date(2024, time.March, 19, 21, 0, 0, 0, time.UTC)

	assert.Equal(t, jalali.GregorianDate{Year: 2024, Month: time.March, Day: 19, Hour: 21}, jalali.FromTime(instant))
	assert.Equal(t,
		jalali.GregorianDate{Year: 2024, Month: time.March, Day: 20, Hour: 0, Minute: 30},
		jalali.FromTime(instant.In(tehran)),
	)

	g := jalali.FromTime(instant.In(tehran))
	assert.True(t, g.Time(tehran).Equal(instant))
}

func TestGregorianDate_Compare(t *testing.T) {
	a := jalali.GregorianDate{Year: 2024, Month: time.March, Day: 20, Hour: 10}
	b := jalali.GregorianDate{Year: 2024, Month: time.March, Day: 20, Hour: 11}
	c := jalali.GregorianDate{Year: 2024, Month: time.April, Day: 1}

	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.True(t, a.Before(c))
	assert.False(t, c.Before(a))
	assert.Equal(t, gdate(2024, time.March, 20), a.Date())
}

func TestString(t *testing.T) {
	g := jalali.GregorianDate{Year: 2023, Month: time.May, Day: 5, Hour: 9, Minute: 8, Second: 7}
	assert.Equal(t, "2023-05-05 09:08:07", g.String())

	j := jalali.JalaliDate{Year: 1402, Month: jalali.Ordibehesht, Day: 15}
	assert.Equal(t, "1402/02/15 00:00:00", j.String())
}

func TestErrorMessages(t *testing.T) {
	_, err := jalali.ToGregorian(jdate(1402, jalali.Esfand, 30))
	assert.EqualError(t, err, "jalali: invalid date: day 30 out of range for 1402-12")

	_, err = jalali.ToJalali(gdate(2023, 13, 1))
	assert.EqualError(t, err, "gregorian: invalid date: month 13 out of range")

	_, err = jalali.ToGregorian(jdate(4000, jalali.Farvardin, 1))
	assert.EqualError(t, err, "jalali: year out of supported range: 4000 (jalali years 1..3176)")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, gdate(2024, time.February, 29).Validate())
	assert.ErrorIs(t, gdate(2023, time.February, 29).Validate(), jalali.ErrInvalidDate)
	assert.NoError(t, jdate(1403, jalali.Esfand, 30).Validate())
	assert.ErrorIs(t, jdate(1402, jalali.Esfand, 30).Validate(), jalali.ErrInvalidDate)
	assert.ErrorIs(t, jdate(0, jalali.Farvardin, 1).Validate(), jalali.ErrOutOfRange)
}
