package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Security    SecurityConfig
	Log         LogConfig
	JWT         JWTConfig
	Auth        AuthConfig
	Reservation ReservationConfig
	Mail        MailConfig
	Notify      NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,https://computer-com.github.io"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Content-Type,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Authorization"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type SecurityConfig struct {
	ContentSecurityPolicy     string `envconfig:"SECURITY_CSP" default:"default-src 'self'; img-src 'self' data: https:; font-src 'self' https://fonts.gstatic.com; style-src 'self' 'unsafe-inline' https://fonts.googleapis.com"`
	CrossOriginOpenerPolicy   string `envconfig:"SECURITY_COOP" default:"same-origin-allow-popups"`
	CrossOriginEmbedderPolicy string `envconfig:"SECURITY_COEP" default:"require-corp"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET"`
}

// AuthConfig.Mode is one of disabled, optional or required.
type AuthConfig struct {
	Mode string `envconfig:"AUTH_MODE" default:"disabled"`
}

// ReservationConfig.StatusPolicy is compat (any non-empty status) or strict.
type ReservationConfig struct {
	StatusPolicy string `envconfig:"RESERVATION_STATUS_POLICY" default:"compat"`
}

type MailConfig struct {
	Transport    string        `envconfig:"MAIL_TRANSPORT" default:"log"`
	From         string        `envconfig:"MAIL_FROM" default:"no-reply@forkify.local"`
	Brand        string        `envconfig:"MAIL_BRAND" default:"ForkiFy"`
	Timeout      time.Duration `envconfig:"MAIL_TIMEOUT" default:"30s"`
	SMTPHost     string        `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     string        `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword string        `envconfig:"SMTP_PASSWORD"`
	SESRegion    string        `envconfig:"SES_REGION" default:"us-east-1"`
}

type NotifyConfig struct {
	// Strict reports a failed delivery as a request failure even though the reservation was persisted.
	Strict    bool `envconfig:"NOTIFY_STRICT" default:"true"`
	Async     bool `envconfig:"NOTIFY_ASYNC" default:"false"`
	QueueSize int  `envconfig:"NOTIFY_QUEUE_SIZE" default:"100"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Security: SecurityConfig{
			ContentSecurityPolicy:     "default-src 'self'",
			CrossOriginOpenerPolicy:   "same-origin-allow-popups",
			CrossOriginEmbedderPolicy: "require-corp",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Auth: AuthConfig{
			Mode: "disabled",
		},
		Reservation: ReservationConfig{
			StatusPolicy: "compat",
		},
		Mail: MailConfig{
			Transport: "log",
			From:      "no-reply@forkify.test",
			Brand:     "ForkiFy",
			Timeout:   5 * time.Second,
		},
		Notify: NotifyConfig{
			Strict:    true,
			QueueSize: 10,
		},
	}
}
