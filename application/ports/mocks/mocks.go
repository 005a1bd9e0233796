// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"textanalysis/application/ports"
	"textanalysis/domain/text"

	"github.com/stretchr/testify/mock"
)

// MockTranslator is a mock implementation of ports.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, input, source, target string) (*ports.Translation, error) {
	args := m.Called(ctx, input, source, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Translation), args.Error(1)
}

func (m *MockTranslator) Name() string {
	return "mock-translator"
}

// MockSentimentProvider is a mock implementation of ports.SentimentProvider
type MockSentimentProvider struct {
	mock.Mock
}

func (m *MockSentimentProvider) Analyze(ctx context.Context, input string) (text.SentimentResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(text.SentimentResult), args.Error(1)
}

func (m *MockSentimentProvider) Name() string {
	return "mock-sentiment"
}

var (
	_ ports.Translator        = (*MockTranslator)(nil)
	_ ports.SentimentProvider = (*MockSentimentProvider)(nil)
)
