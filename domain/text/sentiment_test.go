package text_test

import (
	"testing"

	"textanalysis/domain/config"
	"textanalysis/domain/text"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLexicon() config.Lexicon {
	return config.DefaultDomainConfig().Lexicon()
}

func TestAnalyzeLocalSentiment(t *testing.T) {
	lex := defaultLexicon()

	t.Run("empty text is neutral", func(t *testing.T) {
		got := text.AnalyzeLocalSentiment("", lex)
		assert.Equal(t, text.SentimentNeutral, got.Sentiment)
		assert.Equal(t, 0.0, got.Score)
		assert.Equal(t, text.SourceLocal, got.Source)
		require.NotNil(t, got.MatchedWords)
		assert.Empty(t, got.MatchedWords.Positive)
		assert.Empty(t, got.MatchedWords.Negative)
	})

	t.Run("positive with punctuation", func(t *testing.T) {
		got := text.AnalyzeLocalSentiment("Amazing, wonderful, great!", lex)
		assert.Equal(t, text.SentimentPositive, got.Sentiment)
		assert.InDelta(t, 0.6, got.Score, 1e-9)
		assert.Equal(t, []string{"amazing", "wonderful", "great"}, got.MatchedWords.Positive)
	})

	t.Run("negative", func(t *testing.T) {
		got := text.AnalyzeLocalSentiment("This is terrible and awful. Avoid.", lex)
		assert.Equal(t, text.SentimentNegative, got.Sentiment)
		assert.InDelta(t, -0.6, got.Score, 1e-9)
		assert.Equal(t, []string{"terrible", "awful", "avoid"}, got.MatchedWords.Negative)
	})

	t.Run("duplicates kept in order", func(t *testing.T) {
		got := text.AnalyzeLocalSentiment("good bad good", lex)
		assert.Equal(t, []string{"good", "good"}, got.MatchedWords.Positive)
		assert.Equal(t, []string{"bad"}, got.MatchedWords.Negative)
		assert.Equal(t, text.SentimentPositive, got.Sentiment)
		assert.InDelta(t, 0.2, got.Score, 1e-9)
	})

	t.Run("balanced is neutral", func(t *testing.T) {
		got := text.AnalyzeLocalSentiment("good\tbad", lex)
		assert.Equal(t, text.SentimentNeutral, got.Sentiment)
		assert.Equal(t, 0.0, got.Score)
	})

	t.Run("score is clamped", func(t *testing.T) {
		pos := text.AnalyzeLocalSentiment("good great excellent amazing wonderful fantastic perfect awesome superb brilliant", lex)
		assert.Equal(t, 1.0, pos.Score)
		assert.Len(t, pos.MatchedWords.Positive, 10)

		neg := text.AnalyzeLocalSentiment("bad terrible awful horrible worst useless waste pathetic disgusting regret avoid", lex)
		assert.Equal(t, -1.0, neg.Score)
		assert.Equal(t, text.SentimentNegative, neg.Sentiment)
	})
}

func TestLabel(t *testing.T) {
	assert.Equal(t, text.SentimentPositive, text.Label(0.1))
	assert.Equal(t, text.SentimentNegative, text.Label(-3))
	assert.Equal(t, text.SentimentNeutral, text.Label(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, text.Clamp(2, -1, 1))
	assert.Equal(t, -1.0, text.Clamp(-2, -1, 1))
	assert.Equal(t, 0.4, text.Clamp(0.4, -1, 1))
}
