package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Verification Verification
	Session      Session
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

// Verification points at the external participant lookup service.
type Verification struct {
	URL     string
	Timeout time.Duration
}

// Session controls the ephemeral exam-session store. RedisAddr empty means
// the in-memory store is used.
type Session struct {
	TTL       time.Duration
	RedisAddr string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("VERIFICATION_TIMEOUT_SECONDS", 5)
	viper.SetDefault("SESSION_TTL_MINUTES", 120)

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

	config.Verification.URL = viper.GetString("VERIFICATION_URL")
	config.Verification.Timeout = time.Duration(viper.GetInt("VERIFICATION_TIMEOUT_SECONDS")) * time.Second

	config.Session.TTL = time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute
	config.Session.RedisAddr = viper.GetString("SESSION_REDIS_ADDR")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
