package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty default: optional third-party credentials; the feature falls back when unset
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	App    AppConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	SMS    SMSConfig
	QR     QRConfig
	Redis  RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development" validate:"oneof=development staging production"`
	TimeZone string `envconfig:"APP_TZ" default:"Asia/Kolkata"`
	LogDir   string `envconfig:"APP_LOG_DIR" default:"logs"`
}

type DBConfig struct {
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	User         string        `envconfig:"DB_USER" required:"true"`
	Password     string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string        `envconfig:"DB_NAME" default:"parkingpro"`
	SSLMode      string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone     string        `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	QueryTimeout time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"3s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// SMSConfig holds provider credentials. A provider is used only when all of its fields are set.
type SMSConfig struct {
	Fast2SMSAPIKey string        `envconfig:"SMS_API_KEY"`
	Fast2SMSURL    string        `envconfig:"SMS_API_URL" default:"https://www.fast2sms.com/dev/bulkV2"`
	TwilioSID      string        `envconfig:"TWILIO_SID"`
	TwilioToken    string        `envconfig:"TWILIO_TOKEN"`
	TwilioFrom     string        `envconfig:"TWILIO_FROM"`
	TwilioBaseURL  string        `envconfig:"TWILIO_BASE_URL" default:"https://api.twilio.com"`
	CountryCode    string        `envconfig:"SMS_COUNTRY_CODE" default:"+91"`
	Timeout        time.Duration `envconfig:"SMS_TIMEOUT" default:"10s"`
}

type QRConfig struct {
	Dir   string   `envconfig:"QR_DIR" default:"storage/qrcodes"`
	Tiers []string `envconfig:"QR_TIERS" default:"qrcode,raster,static" validate:"min=1,dive,oneof=qrcode raster static"`
	Size  int      `envconfig:"QR_SIZE" default:"256" validate:"gte=21"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	PlanTTL  time.Duration `envconfig:"REDIS_PLAN_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	v := validator.New()
	for _, section := range []any{cfg.App, cfg.Log, cfg.QR} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		App: AppConfig{
			Env:      "development",
			TimeZone: "Asia/Kolkata",
			LogDir:   "logs",
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "Asia/Kolkata",
			QueryTimeout: 3 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		SMS: SMSConfig{
			CountryCode: "+91",
			Timeout:     2 * time.Second,
		},
		QR: QRConfig{
			Dir:   "storage/qrcodes",
			Tiers: []string{"qrcode", "raster", "static"},
			Size:  256,
		},
	}
}
