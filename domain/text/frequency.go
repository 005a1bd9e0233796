package text

import "strings"

// FindMostFrequentWord returns the most common space-separated token of the
// lowercased text, or nil for empty text. Every token is compared against
// every other token. Ties go to the token seen first.
func FindMostFrequentWord(text string) *WordFrequency {
	if text == "" {
		return nil
	}

	words := strings.Split(toLower(text), " ")
	best := &WordFrequency{}

	for i := range words {
		count := 0
		for j := range words {
			if words[i] == words[j] {
				count++
			}
		}
		if count > best.Count {
			best.Count = count
			best.Word = words[i]
		}
	}

	return best
}
