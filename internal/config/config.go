package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BusinessConfig рабочие часы салона и параметры бронирования.
// Передаётся в usecases явным значением, а не через глобальное состояние
type BusinessConfig struct {
	Timezone              string `toml:"timezone"`
	OpenTime              string `toml:"open_time"`  // HH:MM
	CloseTime             string `toml:"close_time"` // HH:MM
	DefaultStepMinutes    int    `toml:"default_step_minutes"`
	BookingTimeoutSeconds int    `toml:"booking_timeout_seconds"`
}

// Hours конвертирует бизнес-настройки в доменное значение рабочих часов
func (b BusinessConfig) Hours() (domain.BusinessHours, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("invalid business timezone %q: %w", b.Timezone, err)
	}

	open, err := types.NewTimeStringFromString(b.OpenTime)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("invalid open_time: %w", err)
	}
	closeT, err := types.NewTimeStringFromString(b.CloseTime)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("invalid close_time: %w", err)
	}

	hours := domain.BusinessHours{
		Location: loc,
		Open:     open,
		Close:    closeT,
	}
	if !open.IsBefore(closeT) {
		return domain.BusinessHours{}, fmt.Errorf("close_time %s must be after open_time %s", closeT, open)
	}

	return hours, nil
}

// BookingTimeout возвращает максимальное время выполнения транзакции бронирования
func (b BusinessConfig) BookingTimeout() time.Duration {
	if b.BookingTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(b.BookingTimeoutSeconds) * time.Second
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %q: %w", path, err)
	}

	applyDefaults(&cfg)

	if _, err := cfg.Business.Hours(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "brb-booking-service"
	}

	if cfg.Business.Timezone == "" {
		cfg.Business.Timezone = "America/Sao_Paulo"
	}
	if cfg.Business.OpenTime == "" {
		cfg.Business.OpenTime = "09:00"
	}
	if cfg.Business.CloseTime == "" {
		cfg.Business.CloseTime = "18:00"
	}
	if cfg.Business.DefaultStepMinutes == 0 {
		cfg.Business.DefaultStepMinutes = domain.DefaultStepMinutes
	}
}
