package text

import "strings"

// DefaultWordsPerMinute is the reading speed used by CalculateReadingTime
const DefaultWordsPerMinute = 200

// CountWords counts the tokens produced by splitting on a single space.
// Runs of spaces produce empty tokens, and those are counted too.
func CountWords(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.Split(text, " "))
}

// CountSentences counts the segments produced by splitting on '.'.
// A trailing period yields one more (empty) segment.
func CountSentences(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.Split(text, "."))
}

// CountCharacters returns the UTF-16 length of text. When includeSpaces is
// false every whitespace character is removed before counting.
func CountCharacters(text string, includeSpaces bool) int {
	if text == "" {
		return 0
	}
	if includeSpaces {
		return utf16Len(text)
	}
	return utf16Len(strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, text))
}

// CalculateReadingTime estimates whole minutes at DefaultWordsPerMinute
func CalculateReadingTime(text string) int {
	return ReadingTime(text, DefaultWordsPerMinute)
}

// ReadingTime rounds CountWords(text)/wordsPerMinute up to whole minutes.
func ReadingTime(text string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := CountWords(text)
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// Analyze computes every statistic for text
func Analyze(text string, wordsPerMinute int) Stats {
	return Stats{
		WordCount:              CountWords(text),
		SentenceCount:          CountSentences(text),
		CharacterCount:         CountCharacters(text, true),
		CharacterCountNoSpaces: CountCharacters(text, false),
		ReadingTimeMinutes:     ReadingTime(text, wordsPerMinute),
		MostFrequentWord:       FindMostFrequentWord(text),
	}
}
