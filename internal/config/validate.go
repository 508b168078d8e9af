package config

import (
	"fmt"
	"slices"
)

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"json", "text"}
	writingLevels = []string{"beginner", "intermediate", "advanced"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.SubmitsPerMinute < 0 {
		return fmt.Errorf("rate_limit: limits must be >= 0")
	}

	if err := c.Practice.validate(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}
	if err := c.Writing.validate(); err != nil {
		return fmt.Errorf("writing: %w", err)
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	return nil
}

func (p *PracticeConfig) validate() error {
	if p.MaxQuizQuestions <= 0 {
		return fmt.Errorf("max_quiz_questions must be > 0 (got %d)", p.MaxQuizQuestions)
	}
	if p.WritingMinWords <= 0 {
		return fmt.Errorf("writing_min_words must be > 0 (got %d)", p.WritingMinWords)
	}
	if p.WritingMaxWords < p.WritingMinWords {
		return fmt.Errorf("writing_max_words (%d) must be >= writing_min_words (%d)", p.WritingMaxWords, p.WritingMinWords)
	}
	if p.SessionIdleTTL < 0 || p.JanitorInterval < 0 {
		return fmt.Errorf("session_idle_ttl and janitor_interval must be >= 0")
	}
	return nil
}

func (w *WritingConfig) validate() error {
	if !slices.Contains(writingLevels, w.DefaultLevel) {
		return fmt.Errorf("default_level must be one of %v (got %q)", writingLevels, w.DefaultLevel)
	}
	if w.PromptCount <= 0 || w.PromptCount > 20 {
		return fmt.Errorf("prompt_count must be in 1..20 (got %d)", w.PromptCount)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	if l.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", l.RequestTimeout)
	}
	if l.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must be >= 0 (got %v)", l.RequestsPerSecond)
	}
	if l.RequestsPerSecond > 0 && l.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 when requests_per_second is set (got %d)", l.Burst)
	}
	if l.HasAnthropic() && l.AnthropicModel == "" {
		return fmt.Errorf("anthropic_model is required with an API key")
	}
	if l.HasGemini() && l.GeminiModel == "" {
		return fmt.Errorf("gemini_model is required with an API key")
	}
	return nil
}
