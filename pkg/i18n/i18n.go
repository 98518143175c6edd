// Package i18n holds the bot-facing message templates and renders them for
// the configured language.
package i18n

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// Translator renders templates for one resolved language. Safe for concurrent use.
type Translator struct {
	lang Language
	dict map[Key]string
}

// New resolves tag to a supported language, falling back to DefaultLanguage.
func New(tag string) *Translator {
	lang := Resolve(tag)
	return &Translator{lang: lang, dict: dictionaries[lang]}
}

// Resolve maps tag to a supported language. Unknown or empty tags resolve to
// DefaultLanguage.
func Resolve(tag string) Language {
	lang := Language(strings.TrimSpace(tag))
	if _, ok := dictionaries[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// Supported returns the supported languages in sorted order.
func Supported() []Language {
	langs := make([]Language, 0, len(dictionaries))
	for lang := range dictionaries {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Language returns the resolved language.
func (t *Translator) Language() Language {
	return t.lang
}

// Translate renders key with replacements. A key missing from the dictionary
// renders as its own name; placeholders without a replacement stay verbatim.
func (t *Translator) Translate(key Key, replacements Replacements) string {
	tmpl, ok := t.dict[key]
	if !ok {
		tmpl = string(key)
	}
	if len(replacements) == 0 {
		return tmpl
	}

	return placeholderRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := replacements[name]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}

// Placeholders returns the sorted placeholder names used by a template.
func Placeholders(tmpl string) []string {
	matches := placeholderRe.FindAllStringSubmatch(tmpl, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	sort.Strings(names)
	return names
}

// Validate checks that every dictionary covers Keys exactly and that each
// template uses the same placeholders as the default language.
func Validate() error {
	base := dictionaries[DefaultLanguage]
	for _, lang := range Supported() {
		dict := dictionaries[lang]
		if len(dict) != len(Keys) {
			return fmt.Errorf("i18n: %s has %d keys, want %d", lang, len(dict), len(Keys))
		}
		for _, key := range Keys {
			tmpl, ok := dict[key]
			if !ok || tmpl == "" {
				return fmt.Errorf("i18n: %s is missing key %q", lang, key)
			}
			if got, want := Placeholders(tmpl), Placeholders(base[key]); strings.Join(got, ",") != strings.Join(want, ",") {
				return fmt.Errorf("i18n: %s key %q placeholders %v, want %v", lang, key, got, want)
			}
		}
	}
	return nil
}
