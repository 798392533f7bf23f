// Package i18n holds the locale string tables. Lookup is a pure function
// of locale, key and arguments; unknown locales fall back to the default
// table and unknown keys to the default-language string.
package i18n

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

const DefaultLang = "en_US"

type Translator struct {
	log       *slog.Logger
	languages map[string]map[string]string
}

func New(log *slog.Logger) *Translator {
	return &Translator{
		log: log,
		languages: map[string]map[string]string{
			"en_US": enUS,
			"zh_CN": zhCN,
		},
	}
}

// AllLangs lists the available locales, ready to embed in an HTML reply.
func (t *Translator) AllLangs() string {
	names := make([]string, 0, len(t.languages))
	for lang := range t.languages {
		names = append(names, fmt.Sprintf("<code>%s</code>", lang))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Format renders the template for key in the given locale. The fallback
// chain is locale table, default table, then a {{key}} placeholder so a
// missing translation stays visible instead of silently vanishing.
func (t *Translator) Format(lang string, key string, args ...any) string {
	base := t.languages[DefaultLang]
	table, ok := t.languages[lang]
	if !ok {
		table = base
	}
	s := table[key]
	if s == "" {
		s = base[key]
	}
	if s == "" {
		t.log.Warn("Missing translation", "lang", lang, "key", key)
		return fmt.Sprintf("{{%s}}", key)
	}
	return fmt.Sprintf(s, args...)
}
