package text

import (
	"strings"

	"textanalysis/domain/config"
)

// AnalyzeLocalSentiment scores text against the lexicon. Tokens are split on
// whitespace runs and reduced to their a-z letters before lookup. The raw
// sum decides the label; the reported score is raw/scale clamped to [-1, 1].
func AnalyzeLocalSentiment(text string, lexicon config.Lexicon) SentimentResult {
	matches := &MatchedWords{Positive: []string{}, Negative: []string{}}
	raw := 0

	for _, token := range strings.FieldsFunc(toLower(text), isSpace) {
		word := keepLetters(token)
		if lexicon.IsPositive(word) {
			raw++
			matches.Positive = append(matches.Positive, word)
		}
		if lexicon.IsNegative(word) {
			raw--
			matches.Negative = append(matches.Negative, word)
		}
	}

	return SentimentResult{
		Score:        Clamp(float64(raw)/lexicon.Scale(), -1, 1),
		Sentiment:    Label(float64(raw)),
		Source:       SourceLocal,
		MatchedWords: matches,
	}
}

// Label maps the sign of score to a sentiment label
func Label(score float64) string {
	switch {
	case score > 0:
		return SentimentPositive
	case score < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func keepLetters(token string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, token)
}
