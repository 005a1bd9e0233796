package text_test

import (
	"testing"

	"textanalysis/domain/text"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMostFrequentWord(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		assert.Nil(t, text.FindMostFrequentWord(""))
	})

	tests := []struct {
		name      string
		input     string
		wantWord  string
		wantCount int
	}{
		{"repeated word", "hello world hello", "hello", 2},
		{"tie goes to first seen", "cat dog cat dog", "cat", 2},
		{"case insensitive", "Hello HELLO hello", "hello", 3},
		{"punctuation is kept", "hello, hello. hello!", "hello,", 1},
		{"only spaces", "   ", "", 4},
		{"empty tokens can win", "a  b", "a", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.FindMostFrequentWord(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantWord, got.Word)
			assert.Equal(t, tt.wantCount, got.Count)
		})
	}
}
