package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	AI       AI
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret string
	// ProviderURL is the base URL of the external identity provider
	// (e.g. https://<project>.supabase.co/auth/v1). Used for token revocation on logout.
	ProviderURL string
}

type AI struct {
	// UseMock selects the canned question/score path instead of calling a
	// completion provider. A development switch, not a failure fallback.
	UseMock      bool
	Provider     string // "openai" or "gemini"
	OpenAIKey    string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("AI_PROVIDER", "openai")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Auth.JWTSecret = viper.GetString("AUTH_JWT_SECRET")
	config.Auth.ProviderURL = viper.GetString("AUTH_URL")

	config.AI.UseMock = viper.GetBool("USE_MOCK_AI")
	config.AI.Provider = viper.GetString("AI_PROVIDER")
	config.AI.OpenAIKey = viper.GetString("OPENAI_API_KEY")
	config.AI.OpenAIModel = viper.GetString("OPENAI_MODEL")
	config.AI.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	config.AI.GeminiModel = viper.GetString("GEMINI_MODEL")

	log.Info().
		Str("port", config.Server.Port).
		Bool("use_mock_ai", config.AI.UseMock).
		Str("ai_provider", config.AI.Provider).
		Msg("Config loaded")
	return &config, nil
}
