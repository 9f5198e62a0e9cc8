package locale_test

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-jalali/internal/config"
	"github.com/tartampluch/go-jalali/internal/jalali"
	"github.com/tartampluch/go-jalali/internal/locale"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in every locale file, and flags orphans.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := map[string]bool{
		config.TKeyEvtSummary:      true,
		config.TKeyEvtSummaryAge:   true,
		config.TKeyEvtSummaryBirth: true,
		config.TKeyEvtDescription:  true,
		config.TKeyCalName:         true,
	}
	for m := 1; m <= 12; m++ {
		definedKeys[config.TKeyMonthPrefix+strconv.Itoa(m)] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := os.ReadFile("locales/active." + lang + ".json")
			require.NoError(t, err, "Must load locale file for %s", lang)

			var jsonMap map[string]any
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				assert.Truef(t, definedKeys[jsonKey], "Key '%s' in active.%s.json is not declared in config.go", jsonKey, lang)
			}
		})
	}
}

func TestNew_LanguageMatching(t *testing.T) {
	tests := []struct {
		requested string
		want      string
	}{
		{"en", "en"},
		{"fa", "fa"},
		{"fa-IR", "fa"},
		{"de", "en"},
		{"not a tag!", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			tr, err := locale.New(tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Lang)
			assert.ElementsMatch(t, config.SupportedLanguages, tr.Languages)
		})
	}
}

func TestTranslator_English(t *testing.T) {
	tr, err := locale.New("en")
	require.NoError(t, err)

	assert.Equal(t, "Esfand", tr.MonthName(jalali.Esfand))
	assert.Equal(t, "Birthday: Sara", tr.Summary("Sara", 0, false))
	assert.Equal(t, "Birthday: Sara (31)", tr.Summary("Sara", 31, true))
	assert.Equal(t, "Birthday: Sara (birth)", tr.Summary("Sara", 0, true))
	assert.Equal(t, "30 Esfand 1403", tr.Describe(jalali.JalaliDate{Year: 1403, Month: jalali.Esfand, Day: 30}))
	assert.Equal(t, "Jalali Birthdays", tr.CalendarName())
}

func TestTranslator_Persian(t *testing.T) {
	tr, err := locale.New("fa")
	require.NoError(t, err)

	assert.Equal(t, "فروردین", tr.MonthName(jalali.Farvardin))
	assert.Equal(t, "تولد سارا", tr.Summary("سارا", 0, false))
	assert.Equal(t, "1 فروردین 1403", tr.Describe(jalali.JalaliDate{Year: 1403, Month: jalali.Farvardin, Day: 1}))
}

func TestTranslator_NilFallsBack(t *testing.T) {
	var tr *locale.Translator

	assert.Equal(t, "", tr.Msg(config.TKeyEvtSummary, nil))
	assert.Equal(t, "Mehr", tr.MonthName(jalali.Mehr))
	assert.Equal(t, "Birthday: Ali (40)", tr.Summary("Ali", 40, true))
	assert.Equal(t, "Birthday: Ali (birth)", tr.Summary("Ali", 0, true))
	assert.Equal(t, "2 Tir 1402", tr.Describe(jalali.JalaliDate{Year: 1402, Month: jalali.Tir, Day: 2}))
	assert.Equal(t, config.ICalCalName, tr.CalendarName())
}

func TestTranslator_MissingKey(t *testing.T) {
	tr, err := locale.New("en")
	require.NoError(t, err)
	assert.Equal(t, "", tr.Msg("no_such_key", nil))
}
