// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nsis formats the NSIS script lines written by the converter:
// language file headers and strings, and the manifest lines that register
// each language with the Modern UI.
package nsis

import (
	"path/filepath"
	"strings"
)

const (
	// entryPrefix references the LangFileString define of the MUI language files.
	entryPrefix = "${LangFileString}"

	// escapedQuote is stripped from entries verbatim; it is not turned into
	// a literal quote.
	escapedQuote = `\"`
)

// Header returns the line that opens a language include for name.
func Header(name string) string {
	return "!insertmacro LANGFILE_EXT " + quote(name)
}

// Entry rewrites a `key: "value"` source line into an NSIS string line.
// Surrounding whitespace is trimmed, the first `: "` becomes ` "`, and every
// `\"` sequence is removed.
func Entry(line string) string {
	s := strings.TrimSpace(line)
	s = strings.Replace(s, `: "`, ` "`, 1)
	s = strings.ReplaceAll(s, escapedQuote, "")
	return entryPrefix + " " + s
}

// Register returns the manifest line that registers name as an installer language.
func Register(name string) string {
	return "!insertmacro MUI_LANGUAGE " + quote(name)
}

// Include returns the manifest line that includes the file at path.
func Include(path string) string {
	return "!include " + quote(path)
}

// quote wraps s in double quotes as is. NSIS has no backslash escapes, so
// the content is never escaped.
func quote(s string) string {
	return `"` + s + `"`
}

// IncludePath returns the include path of the language file for name inside
// dir, using backslash separators since NSIS scripts are compiled on Windows.
func IncludePath(dir, name, ext string) string {
	p := filepath.ToSlash(filepath.Join(dir, name+ext))
	return strings.ReplaceAll(p, "/", `\`)
}
