package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the full service configuration, loaded from a TOML file
// with secrets overlaid from the environment.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Notifications NotificationsConfig `toml:"notifications"`
	Reminder      ReminderConfig      `toml:"reminder"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type AuthConfig struct {
	// JWTSecret comes from the JWT_SECRET environment variable; the TOML
	// value is only a development fallback.
	JWTSecret string `toml:"jwt_secret"`
}

type NotificationsConfig struct {
	Enabled       bool   `toml:"enabled"`
	FromEmail     string `toml:"from_email"`
	FromName      string `toml:"from_name"`
	SendGridKey   string `toml:"-"`
	TwilioSID     string `toml:"-"`
	TwilioToken   string `toml:"-"`
	TwilioFromTel string `toml:"twilio_from_tel"`
}

type ReminderConfig struct {
	Enabled bool `toml:"enabled"`
	// CronSpec defaults to hourly at minute 0 when empty.
	CronSpec string `toml:"cron_spec"`
}

// Load reads the TOML config at path and overlays secrets from the
// environment (a .env file is honored if present).
func Load(path string) (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	cfg.Notifications.SendGridKey = os.Getenv("SENDGRID_API_KEY")
	cfg.Notifications.TwilioSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Notifications.TwilioToken = os.Getenv("TWILIO_AUTH_TOKEN")

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Reminder.CronSpec == "" {
		cfg.Reminder.CronSpec = "0 * * * *"
	}

	return &cfg, nil
}
