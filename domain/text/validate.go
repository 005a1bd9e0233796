package text

import (
	"regexp"
	"strings"
	"unicode/utf16"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

var emailPattern = regexp.MustCompile(
	`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`,
)

// IsValidEmail applies a loose something@something.something pattern
func IsValidEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// IsValidURL reports whether text is an absolute URL under the WHATWG URL
// Standard, the same rules a browser's URL constructor applies.
func IsValidURL(text string) bool {
	_, err := whatwg.Parse(text)
	return err == nil
}

// IsPalindrome compares text with its reverse exactly, so "RaceCar" and
// "race car" are not palindromes. Empty text is not a palindrome.
//
// The comparison runs over UTF-16 code units. A lone astral character such
// as an emoji is therefore not a palindrome, because its surrogate pair
// reads differently backwards.
func IsPalindrome(text string) bool {
	u := utf16.Encode([]rune(text))
	if len(u) == 0 {
		return false
	}
	for i := range u[:len(u)/2] {
		if u[i] != u[len(u)-1-i] {
			return false
		}
	}
	return true
}

// ContainsAny reports whether the lowercased text contains any of words
func ContainsAny(text string, words []string) bool {
	if text == "" {
		return false
	}
	lower := toLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
