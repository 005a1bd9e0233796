package text

import (
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isSpace matches the ECMAScript \s class. It differs from unicode.IsSpace
// only in U+0085 (excluded) and U+FEFF (included).
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// spaceClass is isSpace as a regexp character class body.
const spaceClass = `\t\n\x{0B}\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// utf16Len returns the number of UTF-16 code units needed to encode s.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Casers are stateful, so each call gets its own.

func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}
