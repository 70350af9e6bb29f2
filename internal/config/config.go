package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Content ContentConfig `mapstructure:"content" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all text-generation backend settings. Backend selects
// the implementation: "gemini" talks to the Gemini API directly, "openai"
// talks to OpenAI or an OpenAI-compatible endpoint, "relay" posts prompts to
// the pass-through relay endpoint.
type LLMConfig struct {
	Backend           string `mapstructure:"backend"             validate:"required,oneof=gemini openai relay"`
	ModelName         string `mapstructure:"model_name"`
	GeminiAPIKey      string `mapstructure:"gemini_api_key"      validate:"required_if=Backend gemini"`
	OpenAIAPIKey      string `mapstructure:"openai_api_key"      validate:"required_if=Backend openai"`
	OpenAIBaseURL     string `mapstructure:"openai_base_url"     validate:"omitempty,url"`
	RelayURL          string `mapstructure:"relay_url"           validate:"required_if=Backend relay,omitempty,url"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0,lte=60"`
}

// ContentConfig tunes the normalization and presentation pipeline.
type ContentConfig struct {
	MaxSlideLength     int `mapstructure:"max_slide_length"      validate:"required,gte=40,lte=1000"`
	SlideRevealDelayMS int `mapstructure:"slide_reveal_delay_ms" validate:"required,gte=0,lte=60000"`
	QuizAdvanceDelayMS int `mapstructure:"quiz_advance_delay_ms" validate:"required,gte=0,lte=60000"`
	SessionTTLMinutes  int `mapstructure:"session_ttl_minutes"   validate:"required,gt=0,lte=1440"`
}
