package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-jalali/internal/config"
	"github.com/tartampluch/go-jalali/internal/jalali"
	"github.com/tartampluch/go-jalali/internal/locale"
)

// SyncConfig contains the per-run parameters of a feed generation.
type SyncConfig struct {
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D"), empty for none
}

// Generator turns vCard birthdays into an iCalendar feed of their Jalali anniversaries.
type Generator struct {
	Clock  Clock         // Interface for time mocking.
	Source ContactSource // Where the vCards come from.

	// Location is the zone whose wall clock defines "today". Nil means UTC.
	Location *time.Location

	// Translator localizes summaries and month names. Nil falls back to English.
	Translator *locale.Translator
}

type syncStats struct{ processed, withBday, today int }

// RunSync executes the reading, parsing, and generation pipeline.
// It returns the ICS data, the list of contacts, the count of birthdays today, and any error.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) ([]byte, []BirthdayEntry, int, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	log.InfoContext(ctx, config.MsgSyncStarted)

	if g.Source == nil {
		return nil, nil, 0, errors.New(config.ErrSourceMissing)
	}

	reader, err := g.Source.Open(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	// Best effort close. Errors in Close() for read-only sources are rarely actionable here.
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	ics, contacts, count, err := g.generateCalendar(ctx, reader, cfg.ReminderTrigger)
	if err == nil {
		log.Debug("Sync finished", config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return ics, contacts, count, err
}

func (g *Generator) location() *time.Location {
	if g.Location == nil {
		return time.UTC
	}
	return g.Location
}

// generateCalendar parses the vCard stream and constructs the iCalendar object.
func (g *Generator) generateCalendar(ctx context.Context, r io.Reader, reminderTrigger string) ([]byte, []BirthdayEntry, int, error) {
	loc := g.location()

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, g.Translator.CalendarName())
	cal.Props.SetText(config.PropXWRTimezone, loc.String())
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// "Today" is the civil date on the wall clock of loc: a Jalali birthday
	// starts at local midnight in Tehran, not in UTC.
	now := g.Clock.Now()
	today := jalali.FromTime(now.In(loc)).Date()
	todayJ, err := jalali.ToJalali(today)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrConversion, err)
	}

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	decoder := vcard.NewDecoder(r)
	var stats syncStats
	var contacts []BirthdayEntry

	for {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// vCard decoding cannot resync after a syntax error.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			break
		}

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value,
				config.LogKeyError, err)
			continue
		}
		birthJ, err := jalali.ToJalali(birth)
		if err != nil {
			slog.Warn(config.MsgSkippedRange,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value,
				config.LogKeyError, err)
			continue
		}
		stats.withBday++

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		// Deterministic UID generation for stability across refreshes
		input := fmt.Sprintf(config.FormatHashInput, name, birth.String(), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		next, nextJ, ageNext, err := calculateNextOccurrence(today, todayJ, birth, birthJ)
		if err != nil {
			slog.Warn(config.MsgSkippedRange,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyError, err)
			continue
		}

		contacts = append(contacts, BirthdayEntry{
			UID:                  uidBase,
			Name:                 name,
			DateOfBirth:          birth,
			JalaliDateOfBirth:    birthJ,
			NextOccurrence:       next,
			NextOccurrenceJalali: nextJ,
			AgeNext:              ageNext,
		})

		events, isToday := g.createEvents(name, birth, birthJ, todayJ, today, reminderTrigger, uidBase)
		if isToday {
			stats.today++
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyDOB, birth.Date().String(),
				config.LogKeyJalaliDOB, birthJ.Date().String())
		}

		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	// An empty VCALENDAR still has to be a valid feed for subscribers.
	if len(cal.Children) == 0 {
		logSuccess(stats)
		return []byte(config.StubVCalendar), contacts, 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	logSuccess(stats)
	return buf.Bytes(), contacts, stats.today, nil
}

// logSuccess logs the final statistics of the generation process.
func logSuccess(stats syncStats) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyToday, stats.today),
		),
	)
}

// calculateNextOccurrence finds the first Jalali anniversary of birth on or
// after today. A birth date still in the future is its own next occurrence.
func calculateNextOccurrence(today jalali.GregorianDate, todayJ jalali.JalaliDate, birth jalali.GregorianDate, birthJ jalali.JalaliDate) (jalali.GregorianDate, jalali.JalaliDate, int, error) {
	if today.Before(birth) {
		return birth, birthJ, 0, nil
	}

	year := todayJ.Year
	candidate, err := jalali.AddYears(birth, year-birthJ.Year)
	if err != nil {
		return jalali.GregorianDate{}, jalali.JalaliDate{}, 0, err
	}
	if candidate.Before(today) {
		year++
		if candidate, err = jalali.AddYears(birth, year-birthJ.Year); err != nil {
			return jalali.GregorianDate{}, jalali.JalaliDate{}, 0, err
		}
	}

	candidateJ, err := jalali.ToJalali(candidate)
	if err != nil {
		return jalali.GregorianDate{}, jalali.JalaliDate{}, 0, err
	}
	return candidate, candidateJ, year - birthJ.Year, nil
}

// createEvents generates anniversary events around the current Jalali year.
// No event is created before the person is born.
func (g *Generator) createEvents(name string, birth jalali.GregorianDate, birthJ, todayJ jalali.JalaliDate, today jalali.GregorianDate, reminderTrigger, uidBase string) ([]*ical.Event, bool) {
	loc := g.location()

	var events []*ical.Event
	isToday := false

	for y := todayJ.Year - config.FeedYearsBefore; y <= todayJ.Year+config.FeedYearsAfter; y++ {
		if y < birthJ.Year {
			continue
		}

		// AddYears clamps Esfand 30 to Esfand 29 in common years.
		occ, err := jalali.AddYears(birth, y-birthJ.Year)
		if err != nil {
			continue
		}
		occJ, err := jalali.ToJalali(occ)
		if err != nil {
			continue
		}
		if occ == today {
			isToday = true
		}

		age := y - birthJ.Year
		summary := g.Translator.Summary(name, age, true)

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)
		event.Props.SetText(config.PropDescription, g.Translator.Describe(occJ))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(occ.Time(loc))
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events, isToday
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

// parseDate handles the vCard date formats that carry a year.
// Year-less values (--MM-DD) are rejected: a Gregorian month and day do not
// map to a fixed Jalali month and day.
func parseDate(value string) (jalali.GregorianDate, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return jalali.FromTime(t).Date(), nil
		}
	}

	if len(value) > 2 && value[:2] == "--" {
		return jalali.GregorianDate{}, errors.New(config.ErrDateYearless)
	}
	return jalali.GregorianDate{}, errors.New(config.ErrDateParse)
}
