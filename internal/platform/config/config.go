package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the server needs from the environment so main
// stays lean. Business logic never reads the environment directly.
type Config struct {
	Addr          string `env:"ADDR" envDefault:":5000"`
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"https://ac-insight-x.vercel.app"`

	// BlockOnEmailFailure makes a failed confirmation send fatal to the
	// request. Default false: the registration stays successful and the
	// failure is logged.
	BlockOnEmailFailure bool `env:"BLOCK_ON_EMAIL_FAILURE" envDefault:"false"`

	SMTP SMTP `envPrefix:"SMTP_"`
	Mail Mail `envPrefix:"MAIL_"`
}

// SMTP holds transactional mail relay credentials.
type SMTP struct {
	Host     string `env:"HOST" envDefault:"smtp-relay.brevo.com"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Mail holds the static sender identity for outbound confirmations.
type Mail struct {
	FromName    string `env:"FROM_NAME" envDefault:"Insight X"`
	FromAddress string `env:"FROM_ADDRESS" envDefault:"kathant.somaiya@somaiya.edu"`
}

// FromEnv builds a Config from environment variables.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
