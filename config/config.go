package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL string
	AuthToken   string
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins string
}

// Load reads .env (if present) and the process environment.
// Nothing is validated here: a missing database URL only surfaces
// when the first statement is executed.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("TURSO_DATABASE_URL", "")
	v.SetDefault("TURSO_AUTH_TOKEN", "")
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")

	return &Config{
		DatabaseURL: v.GetString("TURSO_DATABASE_URL"),
		AuthToken:   v.GetString("TURSO_AUTH_TOKEN"),
		Port:        v.GetString("PORT"),
		Env:         v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		CORSOrigins: v.GetString("CORS_ORIGINS"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
