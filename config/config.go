package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	OTP      OTPConfig      `mapstructure:"otp"`
	Security SecurityConfig `mapstructure:"security"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// OTPConfig controls one-time-passcode issuance.
type OTPConfig struct {
	Length      int           `mapstructure:"length"`
	TTL         time.Duration `mapstructure:"ttl"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

// SecurityConfig parametrizes the sliding-window security monitor.
// max_requests_per_subject is scoped to a (subject, source IP) pair.
type SecurityConfig struct {
	Window                      time.Duration `mapstructure:"window"`
	MaxRequestsPerSubject       int64         `mapstructure:"max_requests_per_subject"`
	MaxRequestsPerIP            int64         `mapstructure:"max_requests_per_ip"`
	BruteForceThreshold         int64         `mapstructure:"brute_force_threshold"`
	DistributedIPThreshold      int64         `mapstructure:"distributed_ip_threshold"`
	EnumerationSubjectThreshold int64         `mapstructure:"enumeration_subject_threshold"`
}

// LedgerConfig controls wallet mutation behavior.
type LedgerConfig struct {
	MaxRetries int `mapstructure:"max_retries"` // Optimistic concurrency retry bound
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SWC_ (Secure Wallet Core).
// Nested keys use underscore: SWC_DATABASE_HOST, SWC_OTP_TTL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_core")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("otp.length", 6)
	v.SetDefault("otp.ttl", "5m")
	v.SetDefault("otp.max_attempts", 3)
	v.SetDefault("security.window", "10m")
	v.SetDefault("security.max_requests_per_subject", 5)
	v.SetDefault("security.max_requests_per_ip", 10)
	v.SetDefault("security.brute_force_threshold", 5)
	v.SetDefault("security.distributed_ip_threshold", 3)
	v.SetDefault("security.enumeration_subject_threshold", 10)
	v.SetDefault("ledger.max_retries", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SWC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
