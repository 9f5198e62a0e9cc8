package jalali

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate matches every *InvalidDateError through errors.Is.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange matches every *RangeError through errors.Is.
	ErrOutOfRange = errors.New("year out of supported range")
)

// InvalidDateError reports a calendar field outside its valid range,
// e.g. month 13, or Esfand 30 in a common Jalali year.
type InvalidDateError struct {
	Calendar Calendar
	Field    string
	Value    int

	// Year and Month give context for day errors.
	Year  int
	Month int
}

func (e *InvalidDateError) Error() string {
	if e.Field == fieldDay {
		return fmt.Sprintf("%s: %s: day %d out of range for %04d-%02d", e.Calendar, ErrInvalidDate, e.Value, e.Year, e.Month)
	}
	return fmt.Sprintf("%s: %s: %s %d out of range", e.Calendar, ErrInvalidDate, e.Field, e.Value)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// RangeError reports a year the breakpoint table cannot classify.
type RangeError struct {
	Calendar Calendar
	Year     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s: %d (jalali years %d..%d)", e.Calendar, ErrOutOfRange, e.Year, MinYear, MaxYear)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

const (
	fieldMonth  = "month"
	fieldDay    = "day"
	fieldHour   = "hour"
	fieldMinute = "minute"
	fieldSecond = "second"
)

func invalidField(c Calendar, field string, value int) error {
	return &InvalidDateError{Calendar: c, Field: field, Value: value}
}

func invalidDay(c Calendar, year, month, day int) error {
	return &InvalidDateError{Calendar: c, Field: fieldDay, Value: day, Year: year, Month: month}
}

// validateClock checks the time-of-day fields shared by both calendars.
func validateClock(c Calendar, hour, minute, second int) error {
	switch {
	case hour < 0 || hour > 23:
		return invalidField(c, fieldHour, hour)
	case minute < 0 || minute > 59:
		return invalidField(c, fieldMinute, minute)
	case second < 0 || second > 59:
		return invalidField(c, fieldSecond, second)
	}
	return nil
}
