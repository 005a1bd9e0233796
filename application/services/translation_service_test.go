package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"textanalysis/application/ports"
	"textanalysis/application/ports/mocks"
	apperrors "textanalysis/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestTranslationService_Success(t *testing.T) {
	translator := new(mocks.MockTranslator)
	translator.On("Translate", mock.Anything, "Hello world", "en", "es").
		Return(&ports.Translation{
			TranslatedText: "Hola mundo",
			Source:         "en",
			Target:         "es",
			Match:          json.RawMessage(`0.98`),
			APISource:      "mymemory",
		}, nil)

	svc := NewTranslationService(translator, 500, zap.NewNop(), nil)
	got := svc.Translate(context.Background(), "Hello world", "es")

	body, err := json.Marshal(got)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"translatedText": "Hola mundo",
		"source": "en",
		"target": "es",
		"match": 0.98,
		"apiSource": "mymemory"
	}`, string(body))
	translator.AssertExpectations(t)
}

func TestTranslationService_Failure(t *testing.T) {
	translator := new(mocks.MockTranslator)
	translator.On("Translate", mock.Anything, mock.Anything, "en", "fr").
		Return(nil, apperrors.NewExternalError("mymemory", "Translation failed"))

	svc := NewTranslationService(translator, 500, zap.NewNop(), nil)
	got := svc.Translate(context.Background(), "Hello", "fr")

	body, err := json.Marshal(got)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"error": "Translation service unavailable",
		"message": "Translation failed",
		"original": "Hello",
		"targetLanguage": "fr"
	}`, string(body))
}

func TestTranslationService_TruncatesInput(t *testing.T) {
	long := strings.Repeat("é", 600)

	translator := new(mocks.MockTranslator)
	translator.On("Translate", mock.Anything, strings.Repeat("é", 500), "en", "de").
		Return(&ports.Translation{TranslatedText: "x", Source: "en", Target: "de", APISource: "mymemory"}, nil)

	svc := NewTranslationService(translator, 500, zap.NewNop(), nil)
	got := svc.Translate(context.Background(), long, "de")

	assert.NotNil(t, got.Translation)
	translator.AssertExpectations(t)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", truncate("", 3))
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "日本", truncate("日本語", 2))
	assert.Equal(t, "abc", truncate("abc", 0))
}

func TestTruncate_CountsUTF16Units(t *testing.T) {
	// an emoji is a surrogate pair and is never cut in half
	assert.Equal(t, "a", truncate("a😀", 2))
	assert.Equal(t, "a😀", truncate("a😀b", 3))
	assert.Equal(t, "😀😀", truncate("😀😀😀", 5))
	assert.Equal(t, "a😀", truncate("a😀", 3))
}
