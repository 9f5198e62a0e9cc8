package jalali

// AddDays moves g by n days (n may be negative). Because it works on a linear
// day count, month and year boundaries of either calendar need no special care.
// Time-of-day is preserved.
func AddDays(g GregorianDate, n int) (GregorianDate, error) {
	days, err := g.days()
	if err != nil {
		return GregorianDate{}, err
	}
	days += n
	if days < minDays || days > maxDays {
		y, _, _ := jdnToGregorian(days + epochJDN)
		return GregorianDate{}, &RangeError{Calendar: Gregorian, Year: y}
	}
	return gregorianFromDays(days, g.Hour, g.Minute, g.Second), nil
}

// AddMonths moves g by n Jalali months (n may be negative), carrying into the
// Jalali year. A day that does not exist in the target month is clamped to the
// month's last day: 1402/06/31 plus one month is 1402/07/30.
// Time-of-day is preserved.
func AddMonths(g GregorianDate, n int) (GregorianDate, error) {
	j, err := ToJalali(g)
	if err != nil {
		return GregorianDate{}, err
	}
	if n == 0 {
		return g, nil
	}

	total := int(j.Month) - 1 + n
	year := j.Year + floorDiv(total, 12)
	month := Month(total - floorDiv(total, 12)*12 + 1)
	if year < MinYear || year > MaxYear {
		return GregorianDate{}, &RangeError{Calendar: Jalali, Year: year}
	}

	j.Year, j.Month = year, month
	j.Day = min(j.Day, DaysInMonth(year, month))
	return ToGregorian(j)
}

// AddYears moves g by n Jalali years with the same clamping as AddMonths,
// so Esfand 30 lands on Esfand 29 in a common year.
func AddYears(g GregorianDate, n int) (GregorianDate, error) {
	return AddMonths(g, 12*n)
}

// EndOfDay returns midnight at the start of the day after g.
func EndOfDay(g GregorianDate) (GregorianDate, error) {
	return AddDays(g.Date(), 1)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
