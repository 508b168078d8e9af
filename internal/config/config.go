package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Practice  PracticeConfig  `yaml:"practice"`
	Writing   WritingConfig   `yaml:"writing"`
	LLM       LLMConfig       `yaml:"llm"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds the per-IP request limits of the REST API.
// Zero disables a limit.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"              env-default:"120"`
	SubmitsPerMinute  int           `yaml:"submits_per_minute"  env:"RATE_LIMIT_SUBMIT_RPM"       env-default:"10"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}

// PracticeConfig holds study session limits.
type PracticeConfig struct {
	MaxQuizQuestions int           `yaml:"max_quiz_questions" env:"PRACTICE_MAX_QUIZ_QUESTIONS" env-default:"20"`
	WritingMinWords  int           `yaml:"writing_min_words"  env:"PRACTICE_WRITING_MIN_WORDS"  env-default:"50"`
	WritingMaxWords  int           `yaml:"writing_max_words"  env:"PRACTICE_WRITING_MAX_WORDS"  env-default:"200"`
	SessionIdleTTL   time.Duration `yaml:"session_idle_ttl"   env:"PRACTICE_SESSION_IDLE_TTL"   env-default:"2h"`
	JanitorInterval  time.Duration `yaml:"janitor_interval"   env:"PRACTICE_JANITOR_INTERVAL"   env-default:"5m"`
}

// WritingConfig holds writing prompt defaults.
type WritingConfig struct {
	DefaultLevel string `yaml:"default_level" env:"WRITING_DEFAULT_LEVEL" env-default:"intermediate"`
	PromptCount  int    `yaml:"prompt_count"  env:"WRITING_PROMPT_COUNT"  env-default:"10"`
}

// LLMConfig holds the language model providers. A provider without an API key
// is replaced by the built-in templates.
type LLMConfig struct {
	AnthropicAPIKey   string        `yaml:"anthropic_api_key"   env:"ANTHROPIC_API_KEY"`
	AnthropicModel    string        `yaml:"anthropic_model"     env:"LLM_ANTHROPIC_MODEL"     env-default:"claude-3-5-haiku-latest"`
	GeminiAPIKey      string        `yaml:"gemini_api_key"      env:"GEMINI_API_KEY"`
	GeminiModel       string        `yaml:"gemini_model"        env:"LLM_GEMINI_MODEL"        env-default:"gemini-2.0-flash"`
	RequestTimeout    time.Duration `yaml:"request_timeout"     env:"LLM_REQUEST_TIMEOUT"     env-default:"30s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"LLM_REQUESTS_PER_SECOND" env-default:"2"`
	Burst             int           `yaml:"burst"               env:"LLM_BURST"               env-default:"4"`
}

// HasAnthropic reports whether quiz explanations come from Claude.
func (c LLMConfig) HasAnthropic() bool {
	return c.AnthropicAPIKey != ""
}

// HasGemini reports whether writing evaluation and prompts come from Gemini.
func (c LLMConfig) HasGemini() bool {
	return c.GeminiAPIKey != ""
}
