package services

import (
	"textanalysis/domain/config"
	"textanalysis/domain/text"
	apperrors "textanalysis/pkg/errors"

	"go.uber.org/zap"
)

// Transform operations
const (
	OperationSlug    = "slug"
	OperationCase    = "case"
	OperationReverse = "reverse"
)

// Validation types
const (
	ValidationEmail      = "email"
	ValidationURL        = "url"
	ValidationPalindrome = "palindrome"
	ValidationProfanity  = "profanity"
)

// TransformResult is the outcome of a transform operation
type TransformResult struct {
	Original  string `json:"original"`
	Result    string `json:"result"`
	Operation string `json:"operation"`
}

// ValidationResult is the outcome of a validation check
type ValidationResult struct {
	Text    string `json:"text"`
	Type    string `json:"type"`
	IsValid bool   `json:"isValid"`
}

// TextService runs the synchronous text operations
type TextService struct {
	cfg    *config.DomainConfig
	logger *zap.Logger
}

// NewTextService creates a new text service
func NewTextService(cfg *config.DomainConfig, logger *zap.Logger) *TextService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &TextService{
		cfg:    cfg,
		logger: logger,
	}
}

// Stats computes the statistics report for input
func (s *TextService) Stats(input string) text.Stats {
	return text.Analyze(input, s.cfg.WordsPerMinute)
}

// Transform applies operation to input. targetCase is only used by the case
// operation and defaults to lower.
func (s *TextService) Transform(input, operation, targetCase string) (*TransformResult, error) {
	var result string

	switch operation {
	case OperationSlug:
		result = text.ToSlug(input)
	case OperationCase:
		if targetCase == "" {
			targetCase = text.CaseLower
		}
		result = text.ConvertCase(input, targetCase)
	case OperationReverse:
		result = text.ReverseText(input)
	default:
		s.logger.Debug("Rejected transform operation", zap.String("operation", operation))
		return nil, apperrors.NewValidationError("Invalid operation")
	}

	return &TransformResult{
		Original:  input,
		Result:    result,
		Operation: operation,
	}, nil
}

// Validate runs the check named by validationType against input
func (s *TextService) Validate(input, validationType string) (*ValidationResult, error) {
	var valid bool

	switch validationType {
	case ValidationEmail:
		valid = text.IsValidEmail(input)
	case ValidationURL:
		valid = text.IsValidURL(input)
	case ValidationPalindrome:
		valid = text.IsPalindrome(input)
	case ValidationProfanity:
		valid = !text.ContainsAny(input, s.cfg.ProfanityWords)
	default:
		s.logger.Debug("Rejected validation type", zap.String("type", validationType))
		return nil, apperrors.NewValidationError("Invalid validation type")
	}

	return &ValidationResult{
		Text:    input,
		Type:    validationType,
		IsValid: valid,
	}, nil
}
