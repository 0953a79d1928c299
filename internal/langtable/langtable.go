// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package langtable holds the compiled-in mapping from the game's language
// codes to NSIS installer language names.
//
// Adding a language means adding an entry here and shipping a source
// document whose header carries the same code.
package langtable

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// names maps a source document language code to the NSIS language name
// (the stem of the Modern UI language file, e.g. "SimpChinese"). Codes are
// the ones the game names its language files with, so Hungarian is "hu-HU"
// while French is plain "fr". English is the installer's base language and
// is not listed.
var names = map[string]string{
	"bg":     "Bulgarian",
	"ca-ES":  "Catalan",
	"cs-CZ":  "Czech",
	"cy-GB":  "Welsh",
	"da":     "Danish",
	"de":     "German",
	"el":     "Greek",
	"es-ES":  "Spanish",
	"es-419": "SpanishInternational",
	"et":     "Estonian",
	"fi":     "Finnish",
	"fr":     "French",
	"hr-HR":  "Croatian",
	"hu-HU":  "Hungarian",
	"it":     "Italian",
	"ja-JP":  "Japanese",
	"ko":     "Korean",
	"lt":     "Lithuanian",
	"lv":     "Latvian",
	"nb-NO":  "Norwegian",
	"nl":     "Dutch",
	"pl-PL":  "Polish",
	"pt-BR":  "PortugueseBR",
	"pt-PT":  "Portuguese",
	"ro":     "Romanian",
	"ru":     "Russian",
	"sk-SK":  "Slovak",
	"sl":     "Slovenian",
	"sr":     "Serbian",
	"sv":     "Swedish",
	"th-TH":  "Thai",
	"tr-TR":  "Turkish",
	"uk":     "Ukrainian",
	"zh-CN":  "SimpChinese",
	"zh-TW":  "TradChinese",
}

// Lookup returns the NSIS language name for code. The match is exact:
// "de-DE" does not fall back to "de".
func Lookup(code string) (string, bool) {
	name, ok := names[code]
	return name, ok
}

// Len returns the number of languages in the table.
func Len() int {
	return len(names)
}

// Codes returns every code in the table, sorted.
func Codes() []string {
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Tag parses code as a BCP 47 language tag.
func Tag(code string) (language.Tag, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, fmt.Errorf("parsing language code %q: %w", code, err)
	}
	return tag, nil
}

// EnglishName returns the CLDR English name for code, or "" when code is
// not a valid tag.
func EnglishName(code string) string {
	tag, err := Tag(code)
	if err != nil {
		return ""
	}
	return display.English.Languages().Name(tag)
}

// Entry describes one table row.
type Entry struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Tag         string `json:"tag"`
	EnglishName string `json:"english_name"`
}

// Entries returns the table rows sorted by code.
func Entries() []Entry {
	codes := Codes()
	entries := make([]Entry, 0, len(codes))
	for _, code := range codes {
		e := Entry{Code: code, Name: names[code], EnglishName: EnglishName(code)}
		if tag, err := Tag(code); err == nil {
			e.Tag = tag.String()
		}
		entries = append(entries, e)
	}
	return entries
}

// Check verifies that every code is a well-formed language tag and that no
// two codes share a display name. It returns one error per problem.
func Check() []error {
	var errs []error
	seen := make(map[string]string, len(names))
	for _, code := range Codes() {
		if _, err := Tag(code); err != nil {
			errs = append(errs, err)
		}
		name := names[code]
		if other, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("codes %q and %q both map to %s", other, code, name))
		}
		seen[name] = code
	}
	return errs
}
