package engine

import (
	"fmt"

	"github.com/tartampluch/go-jalali/internal/config"
)

// ReminderTrigger builds the ISO8601 duration of a VALARM trigger, e.g.
// (1, "d", "before") gives "-P1D" and (2, "h", "after") gives "PT2H".
// A non-positive value disables reminders and yields "".
func ReminderTrigger(value int, unit, direction string) string {
	if value <= 0 {
		return ""
	}

	sign := config.ISOPeriodPrefix
	if direction == config.DirBefore {
		sign = config.ISONegativePrefix
	}

	switch unit {
	case config.UnitHours:
		return fmt.Sprintf("%s%s%d%s", sign, config.ISOTimePrefix, value, config.ISOHour)
	case config.UnitMinutes:
		return fmt.Sprintf("%s%s%d%s", sign, config.ISOTimePrefix, value, config.ISOMinute)
	default:
		return fmt.Sprintf("%s%d%s", sign, value, config.ISODay)
	}
}
