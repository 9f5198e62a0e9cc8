package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName   = "Go Jalali"
	AppBinary = "go-jalali"
	AppID     = "com.github.tartampluch.go-jalali"
	EnvPrefix = "GOJALALI"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for generated feeds, which contain personal data.
	FilePermUserRW fs.FileMode = 0600
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagZone       = "zone"
	FlagLang       = "lang"
	FlagDebug      = "debug"
	FlagToday      = "today"
	FlagYear       = "year"
	FlagMonth      = "month"
	FlagDay        = "day"
	FlagHour       = "hour"
	FlagMinute     = "minute"
	FlagSecond     = "second"
	FlagInput      = "input"
	FlagOutput     = "output"
	FlagRemind     = "remind"
	FlagRemindUnit = "remind-unit"
	FlagRemindDir  = "remind-dir"

	FlagDescZone       = "IANA time zone whose wall clock anchors \"now\" and input dates"
	FlagDescLang       = "Language for feed summaries and month names (en, fa)"
	FlagDescDebug      = "Enable debug logging"
	FlagDescToday      = "Use the current date in --zone"
	FlagDescYear       = "Jalali year"
	FlagDescMonth      = "Jalali month (1-12)"
	FlagDescDay        = "Jalali day of month"
	FlagDescHour       = "Hour of day"
	FlagDescMinute     = "Minute"
	FlagDescSecond     = "Second"
	FlagDescInput      = "vCard file to read, or - for stdin"
	FlagDescOutput     = "iCalendar file to write, or - for stdout"
	FlagDescRemind     = "Reminder offset value (0 disables reminders)"
	FlagDescRemindUnit = "Reminder unit (d, h, m)"
	FlagDescRemindDir  = "Reminder direction (before, after)"

	MsgVersionOutput = "%s version %s (%s, %s) %s/%s\n"
	StdStream        = "-"
)

// -----------------------------------------------------------------------------
// CLI Commands
// -----------------------------------------------------------------------------

const (
	CmdRootShort = "Gregorian and Jalali (Solar Hijri) date conversion and arithmetic"
	CmdRootLong  = `go-jalali converts dates between the Gregorian and Jalali calendars,
adds days and Jalali months, and builds an iCalendar feed of Jalali birthdays.

Every flag can also be set with a GOJALALI_ environment variable,
e.g. GOJALALI_ZONE=Europe/Paris or GOJALALI_REMIND_UNIT=h.`

	CmdLeapUse        = "leap [jalali-year]"
	CmdLeapShort      = "Report whether a Jalali year is leap"
	CmdToJalaliUse    = "to-jalali <gregorian-date>"
	CmdToJalaliShort  = "Convert a Gregorian date to Jalali"
	CmdToGregUse      = "to-gregorian"
	CmdToGregShort    = "Convert a Jalali date to Gregorian"
	CmdAddDaysUse     = "add-days <gregorian-date> <days>"
	CmdAddDaysShort   = "Add a signed number of days to a date"
	CmdAddMonthsUse   = "add-months <gregorian-date> <months>"
	CmdAddMonthsShort = "Add a signed number of Jalali months to a date"
	CmdEndOfDayUse    = "end-of-day <gregorian-date>"
	CmdEndOfDayShort  = "Print midnight at the start of the following day"
	CmdFeedUse        = "feed"
	CmdFeedShort      = "Build an iCalendar feed of Jalali birthdays from vCards"
	CmdVersionUse     = "version"
	CmdVersionShort   = "Print version information"

	// Command output
	MsgLeapYes     = "%d is a leap year\n"
	MsgLeapNo      = "%d is not a leap year\n"
	MsgDateOutput  = "%s\n"
	MsgDatePair    = "%s\t%s\n"
	ErrArgsLeap    = "a jalali year or --today is required"
	ErrArgsInteger = "invalid integer argument"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultZone          = "Asia/Tehran"
	DefaultLanguage      = "en"
	DefaultReminderValue = 0
	UIDSalt              = "go-jalali-v1-" // Salt for deterministic UID generation

	// FeedYearsBefore and FeedYearsAfter bound the Jalali years, relative to
	// the current one, for which anniversary events are generated.
	FeedYearsBefore = 1
	FeedYearsAfter  = 1
)

// SupportedLanguages defines the list of available languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fa"}

// ISO8601 Duration Components for Reminders
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
	ISOTimePrefix     = "T"
	ISODay            = "D"
	ISOHour           = "H"
	ISOMinute         = "M"
)

// -----------------------------------------------------------------------------
// Reminder Units & Directions
// -----------------------------------------------------------------------------

const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	DirBefore   = "before"
	DirAfter    = "after"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Jalali//Birthday Feed//EN"
	ICalCalName   = "Jalali Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gojalali"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropXWRTimezone = "X-WR-TIMEZONE"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Gregorian date layouts accepted on the command line
	DateFormatInput     = "2006-01-02"
	DateTimeFormatInput = "2006-01-02T15:04:05"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyEvtSummary      = "event_summary"       // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)
	TKeyEvtDescription  = "event_description"   // Requires Day, Month, Year
	TKeyCalName         = "calendar_name"

	// TKeyMonthPrefix is followed by the month number (month_1 .. month_12).
	TKeyMonthPrefix = "month_"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty = "configuration error: input path is empty"
	ErrSourceMissing  = "internal error: contact source is not initialized"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrDateYearless   = "date has no year"
	ErrZoneLoad       = "failed to load time zone"
	ErrConversion     = "date conversion failed"
	ErrInvalidOptions = "invalid options"
	ErrWriteOutput    = "failed to write output"
	ErrAppFailed      = "application failed unexpectedly"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrConfigBind     = "failed to bind configuration"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"
	FallbackDescription  = "%d %s %d"
	FallbackName         = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgSyncStarted   = "Feed generation started"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedRange  = "Skipping date outside the Jalali range"
	MsgGenSuccess    = "Calendar generation successful"
	MsgBdayToday     = "Birthday found today"
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgFeedWritten   = "Feed written"
	MsgZoneLoaded    = "Time zone resolved"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyZone      = "zone"
	LogKeyCommand   = "command"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyToday     = "birthdays_today"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyJalaliDOB = "jalali_date_of_birth"
	LogKeyDuration  = "duration_ms"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine = "engine"
	CompSource = "source"
	CompCLI    = "cli"
	CompMain   = "main"
	CompI18n   = "i18n"
)
