package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DomainConfig holds the fixed word lists and constants used by the text
// functions. It is built once at startup and never mutated afterwards.
type DomainConfig struct {
	// Sentiment lexicons
	PositiveWords []string `yaml:"positive_words"`
	NegativeWords []string `yaml:"negative_words"`

	// Profanity list, matched as lowercase substrings
	ProfanityWords []string `yaml:"profanity_words"`

	// Reading speed used for reading time estimates
	WordsPerMinute int `yaml:"words_per_minute"`

	// Sentiment normalization divisor
	SentimentScale float64 `yaml:"sentiment_scale"`

	// Maximum characters forwarded to the translation API
	MaxTranslationLength int `yaml:"max_translation_length"`
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		PositiveWords: []string{
			"good", "great", "excellent", "amazing", "wonderful", "fantastic",
			"love", "happy", "best", "awesome", "perfect", "beautiful",
			"brilliant", "outstanding", "superb", "delightful", "pleased",
			"recommend", "impressed", "exceeded", "incredible", "loving",
		},
		NegativeWords: []string{
			"bad", "terrible", "awful", "horrible", "hate", "sad", "angry",
			"disappointed", "worst", "poor", "broken", "useless", "waste",
			"frustrating", "annoying", "disgusting", "pathetic", "regret",
			"disappointing", "mediocre", "overpriced", "avoid",
		},
		ProfanityWords:       []string{"badword1", "badword2", "offensive"},
		WordsPerMinute:       200,
		SentimentScale:       5,
		MaxTranslationLength: 500,
	}
}

// LoadDomainConfig returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults. Lists present in the file replace the
// default lists entirely.
func LoadDomainConfig(path string) (*DomainConfig, error) {
	cfg := DefaultDomainConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *DomainConfig) Validate() error {
	if c.WordsPerMinute <= 0 {
		return fmt.Errorf("words_per_minute must be positive, got %d", c.WordsPerMinute)
	}
	if c.SentimentScale <= 0 {
		return fmt.Errorf("sentiment_scale must be positive, got %v", c.SentimentScale)
	}
	if c.MaxTranslationLength <= 0 {
		return fmt.Errorf("max_translation_length must be positive, got %d", c.MaxTranslationLength)
	}
	return nil
}

// Lexicon builds the lookup sets used by the sentiment scorer
func (c *DomainConfig) Lexicon() Lexicon {
	return Lexicon{
		positive: toSet(c.PositiveWords),
		negative: toSet(c.NegativeWords),
		scale:    c.SentimentScale,
	}
}

// Lexicon is a read-only view of the sentiment word lists
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
	scale    float64
}

// IsPositive reports whether word is in the positive list
func (l Lexicon) IsPositive(word string) bool {
	_, ok := l.positive[word]
	return ok
}

// IsNegative reports whether word is in the negative list
func (l Lexicon) IsNegative(word string) bool {
	_, ok := l.negative[word]
	return ok
}

// Scale returns the normalization divisor
func (l Lexicon) Scale() float64 {
	if l.scale <= 0 {
		return 5
	}
	return l.scale
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
