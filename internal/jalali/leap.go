package jalali

// breakpoints are the Jalali years at which the 33-year sub-cycles of the
// 2820-year grand cycle restart. They must not change: a single moved entry
// reclassifies the leap years next to it.
var breakpoints = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181,
	1210, 1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

const (
	// MinYear and MaxYear bound the Jalali years accepted by conversions.
	// The upper bound keeps every Gregorian year that overlaps a supported
	// Jalali year inside the breakpoint table.
	MinYear = 1
	MaxYear = 3176
)

// yearInfo describes the start of a Jalali year.
type yearInfo struct {
	// sinceLeap is the number of years since the last leap year; 0 means leap.
	sinceLeap int
	// gregorianYear is the Gregorian year in which the Jalali year starts.
	gregorianYear int
	// march is the day of March on which 1 Farvardin falls.
	march int
}

func inTable(jy int) bool {
	return jy >= breakpoints[0] && jy < breakpoints[len(breakpoints)-1]
}

// cycle locates jy within its sub-cycle and derives the Gregorian date of
// 1 Farvardin and the leap position. jy must satisfy inTable.
func cycle(jy int) yearInfo {
	gy := jy + 621
	leapJ := -14
	jp := breakpoints[0]
	jump := 0

	for _, jm := range breakpoints[1:] {
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}
	n := jy - jp

	// Leap days in the Jalali calendar from 621 CE to the start of jy.
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	// Leap days in the Gregorian calendar up to gy.
	leapG := gy/4 - (gy/100+1)*3/4 - 150

	// Inside a sub-cycle every fourth year is leap; the last leap year of a
	// sub-cycle is followed by a five-year gap.
	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	sinceLeap := ((n+1)%33 - 1) % 4
	if sinceLeap == -1 {
		sinceLeap = 4
	}

	return yearInfo{
		sinceLeap:     sinceLeap,
		gregorianYear: gy,
		march:         20 + leapJ - leapG,
	}
}

// IsLeapYear reports whether the Jalali year has 366 days, i.e. whether
// Esfand has 30 days. Years outside the breakpoint table report false.
func IsLeapYear(year int) bool {
	if !inTable(year) {
		return false
	}
	return cycle(year).sinceLeap == 0
}

// DaysInMonth returns the length of month m in the Jalali year.
// It returns 0 for a month outside Farvardin..Esfand.
func DaysInMonth(year int, m Month) int {
	switch {
	case m < Farvardin || m > Esfand:
		return 0
	case m <= Shahrivar:
		return 31
	case m <= Bahman:
		return 30
	case IsLeapYear(year):
		return 30
	default:
		return 29
	}
}

// daysBeforeMonth counts the days of the Jalali year preceding month m.
func daysBeforeMonth(m Month) int {
	if m <= Mehr {
		return int(m-1) * 31
	}
	return 6*31 + int(m-Mehr)*30
}
