package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type DBConfig struct {
	Driver string
	DSN    string
}

type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

type Config struct {
	Port                string
	GinMode             string
	LogLevel            string
	AllowedOrigin       string
	DB                  DBConfig
	RateLimit           RateLimitConfig
	CarouselInterval    time.Duration
	MaxQuantity         int
	BookingWindowMonths int
	TableCount          int
	SessionTTL          time.Duration
	SessionSweep        time.Duration
}

func (c Config) String() string {
	return fmt.Sprintf(
		"Port: %s | GinMode: %s | LogLevel: %s | DB: %s | RateLimit: %d/%s | Carousel: %s | MaxQuantity: %d | Tables: %d | SessionTTL: %s",
		c.Port,
		c.GinMode,
		c.LogLevel,
		c.DB.Driver,
		c.RateLimit.Requests,
		c.RateLimit.Interval,
		c.CarouselInterval,
		c.MaxQuantity,
		c.TableCount,
		c.SessionTTL,
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("log_level", "info")
	v.SetDefault("allowed_origin", "http://localhost:5173")
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("db_dsn", "file::memory:?cache=shared")
	v.SetDefault("rate_limit", 50)
	v.SetDefault("rate_interval", 1)
	v.SetDefault("carousel_interval", "3s")
	v.SetDefault("max_quantity", 20)
	v.SetDefault("booking_window_months", 1)
	v.SetDefault("table_count", 20)
	v.SetDefault("session_ttl", "30m")
	v.SetDefault("session_sweep_interval", "1m")
}

// Load membaca .env (jika ada) lalu environment variable.
// envFiles kosong berarti ".env" di working directory.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		// .env opsional, environment tetap dibaca
		if len(envFiles) > 0 {
			return nil, errors.Wrapf(err, "failed to load env files %v", envFiles)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:          v.GetString("port"),
		GinMode:       v.GetString("gin_mode"),
		LogLevel:      v.GetString("log_level"),
		AllowedOrigin: v.GetString("allowed_origin"),
		DB: DBConfig{
			Driver: strings.ToLower(v.GetString("db_driver")),
			DSN:    v.GetString("db_dsn"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("rate_limit"),
			Interval: time.Duration(v.GetInt("rate_interval")) * time.Second,
		},
		CarouselInterval:    v.GetDuration("carousel_interval"),
		MaxQuantity:         v.GetInt("max_quantity"),
		BookingWindowMonths: v.GetInt("booking_window_months"),
		TableCount:          v.GetInt("table_count"),
		SessionTTL:          v.GetDuration("session_ttl"),
		SessionSweep:        v.GetDuration("session_sweep_interval"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverMySQL:
	default:
		return errors.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return errors.New("DB_DSN is empty")
	}
	if c.CarouselInterval <= 0 {
		return errors.Errorf("CAROUSEL_INTERVAL must be positive, got %s", c.CarouselInterval)
	}
	if c.MaxQuantity < 1 {
		return errors.Errorf("MAX_QUANTITY must be at least 1, got %d", c.MaxQuantity)
	}
	if c.TableCount < 1 {
		return errors.Errorf("TABLE_COUNT must be at least 1, got %d", c.TableCount)
	}
	if c.BookingWindowMonths < 0 {
		return errors.Errorf("BOOKING_WINDOW_MONTHS must not be negative, got %d", c.BookingWindowMonths)
	}
	if c.SessionTTL <= 0 || c.SessionSweep <= 0 {
		return errors.Errorf("SESSION_TTL and SESSION_SWEEP_INTERVAL must be positive, got %s and %s", c.SessionTTL, c.SessionSweep)
	}
	if c.RateLimit.Requests < 1 || c.RateLimit.Interval <= 0 {
		return errors.New("RATE_LIMIT and RATE_INTERVAL must be positive")
	}
	return nil
}

// InitDB membuka koneksi gorm sesuai driver yang dikonfigurasi
func InitDB(cfg DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverMySQL:
		dialector = mysql.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", cfg.Driver)
	}
	return db, nil
}
