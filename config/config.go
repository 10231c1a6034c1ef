package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	GeminiApiKey string
	JWTSecret    string
	Feedback     Feedback
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
}

type Feedback struct {
	// Timeout bounds every call to the narrative-generation service.
	Timeout time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("FEEDBACK_TIMEOUT_MS", 4000)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.JWTSecret = viper.GetString("JWT_SECRET")
	config.Feedback.Timeout = time.Duration(viper.GetInt("FEEDBACK_TIMEOUT_MS")) * time.Millisecond

	log.Info().Str("port", config.Server.Port).Dur("feedback_timeout", config.Feedback.Timeout).Msg("Config loaded")
	return &config, nil
}
