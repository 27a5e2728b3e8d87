package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, schedules), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	App       AppConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Broker    BrokerConfig
	Jobs      JobsConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AppConfig struct {
	// Business calendar used for "today" and for cron expressions.
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Empty Addr disables the distributed job lock.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Empty URL disables outbox publishing; jobs stay queued.
type BrokerConfig struct {
	URL string `envconfig:"RABBITMQ_URL" default:""`
}

// Cron expressions use the seconds field (robfig/cron WithSeconds).
type JobsConfig struct {
	Enabled           bool          `envconfig:"JOBS_ENABLED" default:"true"`
	BookingExpirySpec string        `envconfig:"JOB_BOOKING_EXPIRY_SPEC" default:"0 * * * * *"`
	MovieStatusSpec   string        `envconfig:"JOB_MOVIE_STATUS_SPEC" default:"0 5 0 * * *"`
	VoucherExpirySpec string        `envconfig:"JOB_VOUCHER_EXPIRY_SPEC" default:"0 1 0 * * *"`
	CouponExpirySpec  string        `envconfig:"JOB_COUPON_EXPIRY_SPEC" default:"0 1 * * * *"`
	OutboxRelaySpec   string        `envconfig:"JOB_OUTBOX_RELAY_SPEC" default:"*/15 * * * * *"`
	BookingHoldTTL    time.Duration `envconfig:"BOOKING_HOLD_TTL" default:"15m"`
	LockTTL           time.Duration `envconfig:"JOB_LOCK_TTL" default:"10m"`
}

type RateLimitConfig struct {
	AdminRPS   float64 `envconfig:"ADMIN_RATE_LIMIT_RPS" default:"1"`
	AdminBurst int     `envconfig:"ADMIN_RATE_LIMIT_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
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
		App: AppConfig{
			TimeZone: "Asia/Ho_Chi_Minh",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Jobs: JobsConfig{
			Enabled:           false,
			BookingExpirySpec: "0 * * * * *",
			MovieStatusSpec:   "0 5 0 * * *",
			VoucherExpirySpec: "0 1 0 * * *",
			CouponExpirySpec:  "0 1 * * * *",
			OutboxRelaySpec:   "*/15 * * * * *",
			BookingHoldTTL:    15 * time.Minute,
			LockTTL:           time.Minute,
		},
		RateLimit: RateLimitConfig{
			AdminRPS:   100,
			AdminBurst: 100,
		},
	}
}
