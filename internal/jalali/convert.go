package jalali

import "time"

// epochJDN is the Julian day number of 1 Farvardin 1 (22 March 622 CE, proleptic Gregorian).
const epochJDN = 1948321

// Bounds of the supported range as days since the epoch, both inclusive.
var (
	minDays = 0
	maxDays = jalaliToJDN(MaxYear+1, Farvardin, 1) - 1 - epochJDN
)

// gregorianToJDN is the Fliegel–Van Flandern integer formula.
// It relies on Go's truncating division and holds for every year from 1 CE.
func gregorianToJDN(y, m, d int) int {
	return d - 32075 +
		1461*(y+4800+(m-14)/12)/4 +
		367*(m-2-(m-14)/12*12)/12 -
		3*((y+4900+(m-14)/12)/100)/4
}

// jdnToGregorian inverts gregorianToJDN.
func jdnToGregorian(jdn int) (y, m, d int) {
	l := jdn + 68569
	n := 4 * l / 146097
	l -= (146097*n + 3) / 4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	d = l - 2447*j/80
	l = j / 11
	m = j + 2 - 12*l
	y = 100*(n-49) + i + l
	return y, m, d
}

// jalaliToJDN requires inTable(jy).
func jalaliToJDN(jy int, jm Month, jd int) int {
	c := cycle(jy)
	return gregorianToJDN(c.gregorianYear, int(time.March), c.march) + daysBeforeMonth(jm) + jd - 1
}

// jdnToJalali requires the Gregorian year of jdn, less 621, to be inside the table.
func jdnToJalali(jdn int) (jy int, jm Month, jd int) {
	gy, _, _ := jdnToGregorian(jdn)
	jy = gy - 621
	c := cycle(jy)
	k := jdn - gregorianToJDN(gy, int(time.March), c.march)

	if k >= 0 {
		if k <= 185 {
			return jy, Month(1 + k/31), k%31 + 1
		}
		k -= 186
	} else {
		// Still in the tail of the previous Jalali year.
		jy--
		k += 179
		if c.sinceLeap == 1 {
			k++
		}
	}
	return jy, Month(7 + k/30), k%30 + 1
}

func daysInGregorianMonth(y int, m time.Month) int {
	switch m {
	case time.February:
		if y%4 == 0 && (y%100 != 0 || y%400 == 0) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Validate checks every field of g and that g lies inside the supported range.
func (g GregorianDate) Validate() error {
	_, err := g.days()
	return err
}

// days returns the number of days between the epoch and g.
func (g GregorianDate) days() (int, error) {
	if g.Month < time.January || g.Month > time.December {
		return 0, invalidField(Gregorian, fieldMonth, int(g.Month))
	}
	if g.Day < 1 || g.Day > daysInGregorianMonth(g.Year, g.Month) {
		return 0, invalidDay(Gregorian, g.Year, int(g.Month), g.Day)
	}
	if err := validateClock(Gregorian, g.Hour, g.Minute, g.Second); err != nil {
		return 0, err
	}
	if g.Year < 1 {
		return 0, &RangeError{Calendar: Gregorian, Year: g.Year}
	}
	n := gregorianToJDN(g.Year, int(g.Month), g.Day) - epochJDN
	if n < minDays || n > maxDays {
		return 0, &RangeError{Calendar: Gregorian, Year: g.Year}
	}
	return n, nil
}

// Validate checks every field of j, including Esfand 30 in common years,
// and that j.Year lies in MinYear..MaxYear.
func (j JalaliDate) Validate() error {
	_, err := j.days()
	return err
}

func (j JalaliDate) days() (int, error) {
	if j.Year < MinYear || j.Year > MaxYear {
		return 0, &RangeError{Calendar: Jalali, Year: j.Year}
	}
	if j.Month < Farvardin || j.Month > Esfand {
		return 0, invalidField(Jalali, fieldMonth, int(j.Month))
	}
	if j.Day < 1 || j.Day > DaysInMonth(j.Year, j.Month) {
		return 0, invalidDay(Jalali, j.Year, int(j.Month), j.Day)
	}
	if err := validateClock(Jalali, j.Hour, j.Minute, j.Second); err != nil {
		return 0, err
	}
	return jalaliToJDN(j.Year, j.Month, j.Day) - epochJDN, nil
}

// gregorianFromDays builds the Gregorian date n days after the epoch.
func gregorianFromDays(n, hour, minute, second int) GregorianDate {
	y, m, d := jdnToGregorian(n + epochJDN)
	return GregorianDate{Year: y, Month: time.Month(m), Day: d, Hour: hour, Minute: minute, Second: second}
}

// jalaliFromDays builds the Jalali date n days after the epoch.
func jalaliFromDays(n, hour, minute, second int) JalaliDate {
	y, m, d := jdnToJalali(n + epochJDN)
	return JalaliDate{Year: y, Month: m, Day: d, Hour: hour, Minute: minute, Second: second}
}

// ToJalali converts a Gregorian civil date to the Jalali calendar.
// Time-of-day fields are carried over unchanged.
func ToJalali(g GregorianDate) (JalaliDate, error) {
	n, err := g.days()
	if err != nil {
		return JalaliDate{}, err
	}
	return jalaliFromDays(n, g.Hour, g.Minute, g.Second), nil
}

// ToGregorian converts a Jalali civil date to the proleptic Gregorian calendar.
// Time-of-day fields are carried over unchanged.
func ToGregorian(j JalaliDate) (GregorianDate, error) {
	n, err := j.days()
	if err != nil {
		return GregorianDate{}, err
	}
	return gregorianFromDays(n, j.Hour, j.Minute, j.Second), nil
}
