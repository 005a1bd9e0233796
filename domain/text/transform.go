package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Case conversion targets
const (
	CaseUpper = "upper"
	CaseLower = "lower"
	CaseTitle = "title"
	CaseCamel = "camel"
)

var slugSeparator = regexp.MustCompile(`[^a-z0-9]+`)

// ToSlug lowercases text and joins its alphanumeric runs with hyphens
func ToSlug(text string) string {
	if text == "" {
		return ""
	}
	slug := slugSeparator.ReplaceAllString(toLower(text), "-")
	slug = strings.TrimPrefix(slug, "-")
	return strings.TrimSuffix(slug, "-")
}

// ConvertCase converts text to targetCase. Unknown targets return text as is.
// Title and camel case split on single spaces, so doubled spaces survive in
// title case.
func ConvertCase(text, targetCase string) string {
	if text == "" {
		return ""
	}

	switch targetCase {
	case CaseUpper:
		return toUpper(text)
	case CaseLower:
		return toLower(text)
	case CaseTitle:
		words := strings.Split(text, " ")
		for i, w := range words {
			words[i] = capitalize(w)
		}
		return strings.Join(words, " ")
	case CaseCamel:
		words := strings.Split(text, " ")
		var b strings.Builder
		for i, w := range words {
			if i == 0 {
				b.WriteString(toLower(w))
				continue
			}
			b.WriteString(capitalize(w))
		}
		return b.String()
	default:
		return text
	}
}

// capitalize uppercases the first character and lowercases the rest
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return toUpper(word[:size]) + toLower(word[size:])
}

// ReverseText reverses text character by character. Combining marks and
// multi-rune emoji are not kept together.
func ReverseText(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
