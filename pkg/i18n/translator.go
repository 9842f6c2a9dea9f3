// Package i18n localizes validation messages. Rules carry a translation
// key and values alongside their default English message; a Translator
// holds per-language catalogs and negotiates the best match for a
// caller's language preferences via golang.org/x/text.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Translator maps translation keys to message templates per language.
// Templates use {name} placeholders filled from the rule's values, e.g.
// "validation.range" -> "Doit être entre {min} et {max}".
//
// Construct with New and Register; a Translator is safe for concurrent
// reads once registration is done.
type Translator struct {
	fallback language.Tag
	tags     []language.Tag
	catalogs map[language.Tag]map[string]string
	matcher  language.Matcher
}

// New returns a Translator whose fallback language resolves lookups that
// match no registered catalog. Register a catalog for the fallback tag to
// override the rules' built-in messages.
func New(fallback language.Tag) *Translator {
	t := &Translator{
		fallback: fallback,
		catalogs: make(map[language.Tag]map[string]string),
	}
	t.Register(fallback, nil)
	return t
}

// Register adds or extends the catalog for a language.
func (t *Translator) Register(tag language.Tag, messages map[string]string) {
	catalog, ok := t.catalogs[tag]
	if !ok {
		catalog = make(map[string]string, len(messages))
		t.catalogs[tag] = catalog
		t.tags = append(t.tags, tag)
		t.matcher = language.NewMatcher(t.tags)
	}
	for key, template := range messages {
		catalog[key] = template
	}
}

// Translate renders the template for key in the language best matching
// prefs. It returns "" when no registered catalog has the key, letting
// the caller keep the rule's default message.
func (t *Translator) Translate(prefs []language.Tag, key string, values map[string]any) string {
	_, index, _ := t.matcher.Match(prefs...)
	template, ok := t.catalogs[t.tags[index]][key]
	if !ok {
		template, ok = t.catalogs[t.fallback][key]
		if !ok {
			return ""
		}
	}
	return interpolate(template, values)
}

// Func binds language preferences into a translate function suitable for
// form.WithTranslator.
func (t *Translator) Func(prefs ...language.Tag) func(key string, values map[string]any) string {
	return func(key string, values map[string]any) string {
		return t.Translate(prefs, key, values)
	}
}

// ParseAcceptLanguage turns an Accept-Language header into preference
// tags ordered by quality, returning nil for a missing or malformed
// header.
func ParseAcceptLanguage(header string) []language.Tag {
	if header == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

func interpolate(template string, values map[string]any) string {
	out := template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprint(value))
	}
	return out
}
