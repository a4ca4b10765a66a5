package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"      validate:"required"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Media     MediaConfig     `mapstructure:"media"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication and token settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// ProvidersConfig contains credentials and model names for the
// generation providers. Empty keys are allowed: the corresponding
// adapters then report themselves unconfigured at call time.
type ProvidersConfig struct {
	OpenAIAPIKey     string `mapstructure:"openai_api_key"`
	OpenAITextModel  string `mapstructure:"openai_text_model"`
	OpenAIImageModel string `mapstructure:"openai_image_model"`
	GeminiAPIKey     string `mapstructure:"gemini_api_key"`
	GeminiTextModel  string `mapstructure:"gemini_text_model"`
}

// MediaConfig contains blob-storage settings for uploaded media.
type MediaConfig struct {
	StoragePath   string `mapstructure:"storage_path"    validate:"required"`
	PublicBaseURL string `mapstructure:"public_base_url" validate:"required"`
}
