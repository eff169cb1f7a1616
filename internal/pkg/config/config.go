package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, etc.)
// - default: Values common across all environments (timezone, labels, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Sheets SheetsConfig
	Mail   MailConfig
	Admin  AdminConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects the backing medium for the event configuration and the
// reservation log. "sheets" talks to the Google Sheets collaborator, "file"
// keeps everything on local disk.
type StoreConfig struct {
	Backend             string `envconfig:"STORE_BACKEND" default:"file"`
	LiveInfoPath        string `envconfig:"LIVE_INFO_PATH" default:"data/live-info.json"`
	ReservationLogPath  string `envconfig:"RESERVATION_LOG_PATH" default:"data/reservations.jsonl"`
	MaxProgramImageSize int64  `envconfig:"MAX_PROGRAM_IMAGE_BYTES" default:"5242880"`
}

type SheetsConfig struct {
	ClientEmail   string `envconfig:"GOOGLE_CLIENT_EMAIL" default:""`
	PrivateKey    string `envconfig:"GOOGLE_PRIVATE_KEY" default:""`
	SpreadsheetID string `envconfig:"GOOGLE_SPREADSHEET_ID" default:""`
}

func (c SheetsConfig) Configured() bool {
	return c.ClientEmail != "" && c.PrivateKey != "" && c.SpreadsheetID != ""
}

type MailConfig struct {
	ResendAPIKey string `envconfig:"RESEND_API_KEY" default:""`
	From         string `envconfig:"EMAIL_FROM" default:"フルートライブ予約 <noreply@lietoposto.com>"`
	ReplyTo      string `envconfig:"EMAIL_REPLY_TO" default:"contact@lietoposto.com"`
}

// AdminConfig carries the shared-secret credential for the admin editor.
// PasswordHash, when set, takes precedence over the plain Password and is
// compared as a bcrypt hash.
type AdminConfig struct {
	Password     string `envconfig:"ADMIN_PASSWORD" default:""`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" default:""`
}

func (c AdminConfig) Configured() bool {
	return c.Password != "" || c.PasswordHash != ""
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Backend:             "file",
			LiveInfoPath:        "testdata/live-info.json",
			ReservationLogPath:  "testdata/reservations.jsonl",
			MaxProgramImageSize: 5 * 1024 * 1024,
		},
		Admin: AdminConfig{
			Password: "flute2025admin",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}
