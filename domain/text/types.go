package text

// WordFrequency is the most frequent token and how often it occurs
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Stats is the full statistics report for a text
type Stats struct {
	WordCount              int            `json:"wordCount"`
	SentenceCount          int            `json:"sentenceCount"`
	CharacterCount         int            `json:"characterCount"`
	CharacterCountNoSpaces int            `json:"characterCountNoSpaces"`
	ReadingTimeMinutes     int            `json:"readingTimeMinutes"`
	MostFrequentWord       *WordFrequency `json:"mostFrequentWord"`
}

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Sentiment sources
const (
	SourceLocal = "local"
	SourceAPI   = "api"
)

// MatchedWords lists lexicon hits in encounter order, duplicates included
type MatchedWords struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// SentimentResult is a normalized sentiment score with its label
type SentimentResult struct {
	Score        float64       `json:"score"`
	Sentiment    string        `json:"sentiment"`
	Source       string        `json:"source"`
	MatchedWords *MatchedWords `json:"matchedWords,omitempty"`
}
