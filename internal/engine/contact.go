package engine

import "github.com/tartampluch/go-jalali/internal/jalali"

// BirthdayEntry is a contact whose birthday is observed on the Jalali calendar.
type BirthdayEntry struct {
	// UID is a unique identifier (hash) stable across runs.
	UID string

	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// DateOfBirth is the parsed vCard BDAY, and JalaliDateOfBirth its Jalali equivalent.
	DateOfBirth       jalali.GregorianDate
	JalaliDateOfBirth jalali.JalaliDate

	// NextOccurrence is the Gregorian date of the next Jalali anniversary
	// (today included). NextOccurrenceJalali is the same day in Jalali.
	NextOccurrence       jalali.GregorianDate
	NextOccurrenceJalali jalali.JalaliDate

	// AgeNext is the age in Jalali years reached at NextOccurrence.
	AgeNext int
}
