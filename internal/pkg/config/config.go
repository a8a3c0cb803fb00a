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
// - required: Values that differ between environments and have no safe fallback
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// The single-salon deployment runs with zero configuration, so nothing is required.
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	DB       DBConfig
	Upload   UploadConfig
	CORS     CORSConfig
	Log      LogConfig
	Booking  BookingConfig
	WhatsApp WhatsAppConfig
}

type ServerConfig struct {
	Port          string `envconfig:"PORT" default:"8080"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

type StoreConfig struct {
	// file | postgres
	Driver  string `envconfig:"STORE_DRIVER" default:"file"`
	DataDir string `envconfig:"STORE_DATA_DIR" default:"data"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"salon"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"salon"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
}

type UploadConfig struct {
	Dir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type BookingConfig struct {
	SlotCapacity     int    `envconfig:"SLOT_CAPACITY" default:"2"`
	TimeZone         string `envconfig:"SALON_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	PhoneCountryCode string `envconfig:"PHONE_COUNTRY_CODE" default:"54"`
}

type WhatsAppConfig struct {
	AccountSID string        `envconfig:"WHATSAPP_ACCOUNT_SID"`
	AuthToken  string        `envconfig:"WHATSAPP_AUTH_TOKEN"`
	From       string        `envconfig:"WHATSAPP_FROM"`
	APIBase    string        `envconfig:"WHATSAPP_API_BASE" default:"https://api.twilio.com"`
	Timeout    time.Duration `envconfig:"WHATSAPP_TIMEOUT" default:"10s"`
}

// Enabled reports whether credentials for the messaging gateway were supplied.
func (c WhatsAppConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.From != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the salon timezone, falling back to UTC-3.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone("ART", -3*60*60)
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case "file", "postgres":
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: file, postgres (got %q)", c.Store.Driver)
	}
	if c.Booking.SlotCapacity < 1 {
		return fmt.Errorf("SLOT_CAPACITY must be > 0")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be > 0")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:8889",
		},
		Store: StoreConfig{
			Driver:  "file",
			DataDir: "data",
		},
		Upload: UploadConfig{
			Dir:      "uploads",
			MaxBytes: 1 << 20,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Booking: BookingConfig{
			SlotCapacity:     2,
			TimeZone:         "America/Argentina/Buenos_Aires",
			PhoneCountryCode: "54",
		},
		WhatsApp: WhatsAppConfig{
			APIBase: "https://api.twilio.com",
			Timeout: 2 * time.Second,
		},
	}
}
