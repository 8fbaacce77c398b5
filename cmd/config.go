package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/jobs"
)

// Config holds every setting read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	Policy policy.Settings

	GoogleMapsAPIKey string
	RedisAddr        string
	TrafficCacheTTL  time.Duration
	RabbitMQURL      string
	DispatchSchedule string
}

// LoadConfig reads the keys below through getenv. Empty values fall back to
// defaults; malformed numbers are reported together.
//
//	HTTP_PORT, DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE, LOG_LEVEL,
//	ORIGIN_LAT, ORIGIN_LNG, SERVICE_RADIUS_KM, BASE_FEE, PER_KM_RATE, FALLBACK_SPEED_KMH,
//	PREP_BUFFER_SECONDS, TRAFFIC_TIMEOUT_SECONDS, GOOGLE_MAPS_API_KEY, REDIS_ADDR,
//	TRAFFIC_CACHE_TTL_SECONDS, RABBITMQ_URL, DISPATCH_SCHEDULE
func LoadConfig(getenv func(string) string) (Config, error) {
	r := envReader{getenv: getenv}
	defaults := policy.DefaultSettings()

	cfg := Config{
		HTTPPort:   r.str("HTTP_PORT", "8080"),
		DBHost:     r.str("DB_HOST", "localhost"),
		DBPort:     r.str("DB_PORT", "5432"),
		DBUser:     r.str("DB_USER", "postgres"),
		DBPassword: r.str("DB_PASSWORD", ""),
		DBName:     r.str("DB_NAME", "delivery"),
		DBSslMode:  r.str("DB_SSLMODE", "disable"),
		LogLevel:   r.str("LOG_LEVEL", "info"),

		Policy: policy.Settings{
			OriginLatitude:   r.float("ORIGIN_LAT", defaults.OriginLatitude),
			OriginLongitude:  r.float("ORIGIN_LNG", defaults.OriginLongitude),
			ServiceRadiusKm:  r.float("SERVICE_RADIUS_KM", defaults.ServiceRadiusKm),
			BaseFee:          r.int("BASE_FEE", defaults.BaseFee),
			PerKmRate:        r.float("PER_KM_RATE", defaults.PerKmRate),
			FallbackSpeedKmh: r.float("FALLBACK_SPEED_KMH", defaults.FallbackSpeedKmh),
			PrepBuffer:       r.seconds("PREP_BUFFER_SECONDS", defaults.PrepBuffer),
			TrafficTimeout:   r.seconds("TRAFFIC_TIMEOUT_SECONDS", defaults.TrafficTimeout),
		},

		GoogleMapsAPIKey: r.str("GOOGLE_MAPS_API_KEY", ""),
		RedisAddr:        r.str("REDIS_ADDR", ""),
		TrafficCacheTTL:  r.seconds("TRAFFIC_CACHE_TTL_SECONDS", 5*time.Minute),
		RabbitMQURL:      r.str("RABBITMQ_URL", ""),
		DispatchSchedule: r.str("DISPATCH_SCHEDULE", jobs.DefaultDispatchSchedule),
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN is the libpq connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL to a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type envReader struct {
	getenv func(string) string
	errs   []error
}

func (r *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (r *envReader) float(key string, fallback float64) float64 {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (r *envReader) int(key string, fallback int) int {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (r *envReader) seconds(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return time.Duration(v * float64(time.Second))
}
