package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Cache    CacheConfig    `toml:"cache"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки redis-кеша ответов публичных GET-эндпоинтов
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	RedisAddr  string `toml:"redis_addr"`
	RedisDB    int    `toml:"redis_db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// ScheduleConfig настройки расписания бизнеса
type ScheduleConfig struct {
	ClosedWeekdays  []string `toml:"closed_weekdays"`
	DayStart        string   `toml:"day_start"`
	DayEnd          string   `toml:"day_end"`
	SlotStepMinutes int      `toml:"slot_step_minutes"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SlotGrid собирает доменную сетку слотов из конфигурации
func (s ScheduleConfig) SlotGrid() domain.SlotGrid {
	return domain.SlotGrid{
		StartTime:   types.TimeString(s.DayStart),
		EndTime:     types.TimeString(s.DayEnd),
		StepMinutes: s.SlotStepMinutes,
	}
}

// ParseClosedWeekdays конвертирует имена дней недели в доменный тип
func (s ScheduleConfig) ParseClosedWeekdays() (domain.ClosedWeekdays, error) {
	closed := make(domain.ClosedWeekdays, len(s.ClosedWeekdays))
	for _, name := range s.ClosedWeekdays {
		wd, err := parseWeekday(name)
		if err != nil {
			return nil, err
		}
		closed[wd] = true
	}
	return closed, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "logs/scheduling-service.log"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "scheduling-service"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 30
	}
	if cfg.Schedule.DayStart == "" {
		cfg.Schedule.DayStart = domain.DefaultDayStart.String()
	}
	if cfg.Schedule.DayEnd == "" {
		cfg.Schedule.DayEnd = domain.DefaultDayEnd.String()
	}
	if cfg.Schedule.SlotStepMinutes == 0 {
		cfg.Schedule.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if cfg.Schedule.ClosedWeekdays == nil {
		cfg.Schedule.ClosedWeekdays = []string{"saturday", "sunday"}
	}
}

func validate(cfg *Config) error {
	if err := (types.TimeString(cfg.Schedule.DayStart)).Validate(); err != nil {
		return fmt.Errorf("config: schedule.day_start: %w", err)
	}
	if err := (types.TimeString(cfg.Schedule.DayEnd)).Validate(); err != nil {
		return fmt.Errorf("config: schedule.day_end: %w", err)
	}
	if cfg.Schedule.SlotStepMinutes <= 0 {
		return fmt.Errorf("config: schedule.slot_step_minutes must be positive")
	}
	if _, err := cfg.Schedule.ParseClosedWeekdays(); err != nil {
		return fmt.Errorf("config: schedule.closed_weekdays: %w", err)
	}
	return nil
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
}
