package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the server. Values come from the process
// environment, optionally seeded from a .env file.
type Config struct {
	HTTP      HTTP
	DB        DB        `envPrefix:"DB_"`
	JWT       JWT       `envPrefix:"JWT_"`
	Media     Media     `envPrefix:"MEDIA_"`
	SMTP      SMTP      `envPrefix:"SMTP_"`
	Log       Log       `envPrefix:"LOG_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	AppName          string `env:"APP_NAME" envDefault:"SkillTracker"`
	PublicBaseURL    string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`
	DefaultAvatarURL string `env:"DEFAULT_AVATAR_URL" envDefault:"https://res.cloudinary.com/dvf40q13y/image/upload/v1724858882/skill-tracker/default-avatar.png"`
	SeedDemo         bool   `env:"SEED_DEMO" envDefault:"false"`
}

type HTTP struct {
	Port         string   `env:"PORT" envDefault:"5000"`
	BodyLimit    int      `env:"BODY_LIMIT" envDefault:"6291456"`
	AllowOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

type DB struct {
	Driver          string        `env:"DRIVER" envDefault:"postgres"`
	Host            string        `env:"HOST" envDefault:"localhost"`
	User            string        `env:"USER" envDefault:"postgres"`
	Password        string        `env:"PASSWORD" envDefault:"postgres"`
	Name            string        `env:"NAME" envDefault:"skilltracker"`
	Port            string        `env:"PORT" envDefault:"5432"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"skilltracker.db"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"50"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"50"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

// DSN returns the postgres connection string for the given database name.
func (d DB) DSN(dbName string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, dbName, d.Port, d.SSLMode)
}

// DevJWTSecret is the signing key used when JWT_SECRET is unset. Parse only
// accepts it in dev mode.
const DevJWTSecret = "fallback-dev-secret"

var ErrDevJWTSecret = errors.New("JWT_SECRET must be set unless LOG_DEV is enabled")

type JWT struct {
	Secret string        `env:"SECRET" envDefault:"fallback-dev-secret"`
	TTL    time.Duration `env:"TTL" envDefault:"1h"`
	Issuer string        `env:"ISSUER" envDefault:"skilltracker"`
}

// Media configures the S3-compatible host that keeps avatars and certificate files.
type Media struct {
	Driver    string `env:"DRIVER" envDefault:"minio"`
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	Region    string `env:"REGION" envDefault:"us-east-1"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"skilltracker-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"skilltracker-secret-key"`
	Bucket    string `env:"BUCKET" envDefault:"skill-tracker"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	// PublicURL is the base URL files are served from; empty derives it from the endpoint.
	PublicURL string `env:"PUBLIC_URL"`
	Folder    string `env:"FOLDER" envDefault:"skill-tracker"`
}

type SMTP struct {
	Host       string `env:"HOST"`
	Port       int    `env:"PORT" envDefault:"587"`
	User       string `env:"USER"`
	Pass       string `env:"PASS"`
	SenderName string `env:"SENDER_NAME" envDefault:"SkillTracker"`
}

// Enabled reports whether outgoing mail is configured.
func (s SMTP) Enabled() bool {
	return s.Host != ""
}

type Log struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Dev       bool   `env:"DEV" envDefault:"false"`
	File      string `env:"FILE"`
	SentryDSN string `env:"SENTRY_DSN"`
}

type RateLimit struct {
	Max    int           `env:"MAX" envDefault:"10"`
	Window time.Duration `env:"WINDOW" envDefault:"1m"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v (using system environment variables)", err)
	}

	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.JWT.Secret == DevJWTSecret {
		if !cfg.Log.Dev {
			return nil, ErrDevJWTSecret
		}
		log.Printf("warning: using the built-in dev JWT secret; set JWT_SECRET outside development")
	}

	return &cfg, nil
}
