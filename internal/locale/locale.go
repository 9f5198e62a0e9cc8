// Package locale translates feed texts and Jalali month names.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-jalali/internal/config"
	"github.com/tartampluch/go-jalali/internal/jalali"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message IDs for one language.
// A nil *Translator is usable and falls back to built-in English strings.
type Translator struct {
	Lang      string
	Languages []string

	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New loads the embedded locale files and selects the closest match to lang.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		detectedLangs = append(detectedLangs, langCode)

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	tag := matchLanguage(bundle.LanguageTags(), lang)
	base, _ := tag.Base()

	return &Translator{
		Lang:      base.String(),
		Languages: detectedLangs,
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// matchLanguage picks the supported tag closest to the requested one,
// e.g. "fa-IR" selects "fa". Unknown or malformed input selects the default.
func matchLanguage(supported []language.Tag, lang string) language.Tag {
	requested, err := language.Parse(lang)
	if err != nil {
		requested = language.English
	}
	_, index, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}

// Msg translates key with optional template data. A missing key yields "".
func (t *Translator) Msg(key string, data map[string]any) string {
	if t == nil || t.localizer == nil {
		return ""
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return ""
	}
	return msg
}

// MonthName returns the localized name of a Jalali month.
func (t *Translator) MonthName(m jalali.Month) string {
	if msg := t.Msg(config.TKeyMonthPrefix+strconv.Itoa(int(m)), nil); msg != "" {
		return msg
	}
	return m.String()
}

// Summary builds the event title for a birthday.
// age is only meaningful when yearKnown is true; age 0 is the day of birth.
func (t *Translator) Summary(name string, age int, yearKnown bool) string {
	var msg string
	switch {
	case yearKnown && age == 0:
		msg = t.Msg(config.TKeyEvtSummaryBirth, map[string]any{"Name": name})
	case yearKnown:
		msg = t.Msg(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
	default:
		msg = t.Msg(config.TKeyEvtSummary, map[string]any{"Name": name})
	}
	if msg != "" {
		return msg
	}

	switch {
	case yearKnown && age == 0:
		return fmt.Sprintf(config.FallbackSummaryBirth, name)
	case yearKnown:
		return fmt.Sprintf(config.FallbackSummaryAge, name, age)
	default:
		return fmt.Sprintf(config.FallbackSummary, name)
	}
}

// Describe renders a Jalali date as "day month-name year".
func (t *Translator) Describe(j jalali.JalaliDate) string {
	month := t.MonthName(j.Month)
	msg := t.Msg(config.TKeyEvtDescription, map[string]any{
		"Day":   j.Day,
		"Month": month,
		"Year":  j.Year,
	})
	if msg == "" {
		return fmt.Sprintf(config.FallbackDescription, j.Day, month, j.Year)
	}
	return msg
}

// CalendarName returns the localized feed title.
func (t *Translator) CalendarName() string {
	if msg := t.Msg(config.TKeyCalName, nil); msg != "" {
		return msg
	}
	return config.ICalCalName
}
