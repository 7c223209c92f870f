package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Правила поиска дубликатов маршрутов
const (
	RouteRuleDestinationDistance = "destination_distance"
	RouteRuleSourceDestination   = "source_destination"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Auth     AuthConfig
	Booking  BookingConfig
}

type ServerConfig struct {
	Host             string
	Port             int
	Env              string
	CORSAllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	TxMaxRetries    int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled      bool
	ListCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// BookingConfig - настройки правил валидации маршрутов, рейсов и заказов
type BookingConfig struct {
	RouteDuplicateRule       string
	FlightRequireForwardTime bool
	OrderEventsEnabled       bool
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env необязателен, переменные окружения имеют приоритет
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),

			CORSAllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			TxMaxRetries:    viper.GetInt("DB_TX_MAX_RETRIES"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:      viper.GetBool("CACHE_ENABLED"),
			ListCacheTTL: time.Duration(viper.GetInt("LIST_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  time.Duration(viper.GetInt("JWT_TTL")) * time.Second,
		},
		Booking: BookingConfig{
			RouteDuplicateRule:       strings.ToLower(strings.TrimSpace(viper.GetString("ROUTE_DUPLICATE_RULE"))),
			FlightRequireForwardTime: viper.GetBool("FLIGHT_REQUIRE_FORWARD_TIME"),
			OrderEventsEnabled:       viper.GetBool("ORDER_EVENTS_ENABLED"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults - значения по умолчанию для незаданных параметров
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.TxMaxRetries == 0 {
		c.Database.TxMaxRetries = 3
	}
	if c.Cache.ListCacheTTL == 0 {
		c.Cache.ListCacheTTL = 60 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.Booking.RouteDuplicateRule == "" {
		c.Booking.RouteDuplicateRule = RouteRuleDestinationDistance
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch c.Booking.RouteDuplicateRule {
	case RouteRuleDestinationDistance, RouteRuleSourceDestination:
	default:
		return fmt.Errorf("invalid ROUTE_DUPLICATE_RULE %q", c.Booking.RouteDuplicateRule)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
