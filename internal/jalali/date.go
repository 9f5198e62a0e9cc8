// Package jalali converts civil dates between the proleptic Gregorian calendar
// and the Persian (Jalali) solar calendar, and performs day and month
// arithmetic under Jalali month-length rules.
//
// Every function in this package is pure: values in, values out, no shared
// mutable state. Callers may use them from any number of goroutines.
// The package never resolves "now" or time zones; callers hand it wall-clock
// fields already anchored to a zone (see FromTime).
package jalali

import (
	"cmp"
	"fmt"
	"time"
)

// Month identifies a Jalali month (Farvardin = 1, ..., Esfand = 12).
type Month int

const (
	Farvardin Month = 1 + iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var monthNames = [...]string{
	"Farvardin",
	"Ordibehesht",
	"Khordad",
	"Tir",
	"Mordad",
	"Shahrivar",
	"Mehr",
	"Aban",
	"Azar",
	"Dey",
	"Bahman",
	"Esfand",
}

// String returns the transliterated month name.
func (m Month) String() string {
	if Farvardin <= m && m <= Esfand {
		return monthNames[m-1]
	}
	return fmt.Sprintf("%%!Month(%d)", int(m))
}

// Calendar names the calendar a date or an error refers to.
type Calendar string

const (
	Gregorian Calendar = "gregorian"
	Jalali    Calendar = "jalali"
)

// GregorianDate is a civil date and time-of-day in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// JalaliDate is a civil date and time-of-day in the Jalali calendar.
// Day never exceeds DaysInMonth(Year, Month) for values produced by this package.
type JalaliDate struct {
	Year   int
	Month  Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// FromTime captures the wall-clock fields of t in t's own location.
// Sub-second precision is dropped.
func FromTime(t time.Time) GregorianDate {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return GregorianDate{Year: y, Month: m, Day: d, Hour: hh, Minute: mm, Second: ss}
}

// Time returns the instant at which the wall clock in loc shows g.
func (g GregorianDate) Time(loc *time.Location) time.Time {
	return time.Date(g.Year, g.Month, g.Day, g.Hour, g.Minute, g.Second, 0, loc)
}

// Date returns g with the time-of-day cleared.
func (g GregorianDate) Date() GregorianDate {
	return GregorianDate{Year: g.Year, Month: g.Month, Day: g.Day}
}

// Compare returns -1, 0 or +1 depending on whether g is before, equal to or after o.
func (g GregorianDate) Compare(o GregorianDate) int {
	if c := cmp.Compare(g.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(g.Month, o.Month); c != 0 {
		return c
	}
	if c := cmp.Compare(g.Day, o.Day); c != 0 {
		return c
	}
	if c := cmp.Compare(g.Hour, o.Hour); c != 0 {
		return c
	}
	if c := cmp.Compare(g.Minute, o.Minute); c != 0 {
		return c
	}
	return cmp.Compare(g.Second, o.Second)
}

// Before reports whether g is strictly earlier than o.
func (g GregorianDate) Before(o GregorianDate) bool {
	return g.Compare(o) < 0
}

func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", g.Year, int(g.Month), g.Day, g.Hour, g.Minute, g.Second)
}

// IsLeap reports whether j falls in a Jalali leap year.
func (j JalaliDate) IsLeap() bool {
	return IsLeapYear(j.Year)
}

// DayOfYear returns the 1-based ordinal of j within its Jalali year.
func (j JalaliDate) DayOfYear() int {
	return daysBeforeMonth(j.Month) + j.Day
}

// Date returns j with the time-of-day cleared.
func (j JalaliDate) Date() JalaliDate {
	return JalaliDate{Year: j.Year, Month: j.Month, Day: j.Day}
}

func (j JalaliDate) String() string {
	return fmt.Sprintf("%04d/%02d/%02d %02d:%02d:%02d", j.Year, int(j.Month), j.Day, j.Hour, j.Minute, j.Second)
}
