package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Tracing  TracingConfig  `toml:"tracing"`
	Studio   StudioConfig   `toml:"studio"`
	Redis    RedisConfig    `toml:"redis"`
	Kafka    KafkaConfig    `toml:"kafka"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к Postgres. При Enabled = false данные живут только в памяти.
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TracingConfig параметры OpenTelemetry
type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

// StudioConfig параметры студии и движка записи
type StudioConfig struct {
	Name                string `toml:"name"`
	Phone               string `toml:"phone"`
	Timezone            string `toml:"timezone"`
	SlotStartHour       int    `toml:"slot_start_hour"`
	SlotEndHour         int    `toml:"slot_end_hour"`
	SlotStepMinutes     int    `toml:"slot_step_minutes"`
	SeedFile            string `toml:"seed_file"`
	FavoriteLimit       int    `toml:"favorite_limit"`
	RecommendationLimit int    `toml:"recommendation_limit"`
	StrictTransitions   bool   `toml:"strict_transitions"`
}

// Location часовой пояс студии
func (s StudioConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// RedisConfig лимит публичной записи
type RedisConfig struct {
	Enabled       bool   `toml:"enabled"`
	Addr          string `toml:"addr"`
	Password      string `toml:"password"`
	DB            int    `toml:"db"`
	BookingLimit  int    `toml:"booking_limit"`
	WindowSeconds int    `toml:"window_seconds"`
}

// KafkaConfig публикация событий записей
type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// Load читает TOML файл, затем .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg.applyEnv()
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Database.Enabled = enabled
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Tracing.OTLPEndpoint = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
}

func (c *Config) fillDefaults() {
	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 10)
	setInt(&c.Server.WriteTimeout, 10)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 15)

	setString(&c.Database.Host, "localhost")
	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 25)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "studio_booking")

	setString(&c.Tracing.OTLPEndpoint, "localhost:4317")
	if c.Tracing.SampleRatio <= 0 {
		c.Tracing.SampleRatio = 1
	}

	setString(&c.Studio.Timezone, "Europe/Kyiv")
	setInt(&c.Studio.SlotStartHour, 9)
	setInt(&c.Studio.SlotEndHour, 20)
	setInt(&c.Studio.SlotStepMinutes, 15)
	setInt(&c.Studio.FavoriteLimit, 5)
	setInt(&c.Studio.RecommendationLimit, 3)

	setString(&c.Redis.Addr, "localhost:6379")
	setInt(&c.Redis.BookingLimit, 10)
	setInt(&c.Redis.WindowSeconds, 60)

	setString(&c.Kafka.Topic, "studio.appointments")
}

// Validate отклоняет невозможные сочетания параметров
func (c *Config) Validate() error {
	s := c.Studio
	if s.SlotStartHour < 0 || s.SlotEndHour > 24 || s.SlotEndHour <= s.SlotStartHour {
		return fmt.Errorf("studio: slot hours %d..%d are invalid", s.SlotStartHour, s.SlotEndHour)
	}
	if s.SlotStepMinutes <= 0 || s.SlotStepMinutes > 60 {
		return fmt.Errorf("studio: slot_step_minutes must be in 1..60, got %d", s.SlotStepMinutes)
	}
	if _, err := s.Location(); err != nil {
		return fmt.Errorf("studio: unknown timezone %q: %w", s.Timezone, err)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka: brokers are required when enabled")
	}
	if c.Database.Enabled && c.Database.DBName == "" {
		return errors.New("database: dbname is required when enabled")
	}
	return nil
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
