package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
//
// Fields whose zero value is a valid setting (false, 0) carry no
// env-default tag: cleanenv would apply it over an explicit YAML zero.
// Their defaults are set by defaults().
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	GRPC       GRPCConfig       `yaml:"grpc"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Segment    SegmentConfig    `yaml:"segment"`
}

// defaults returns the starting point Load fills from YAML and ENV. It only
// sets fields that cannot use env-default.
func defaults() Config {
	return Config{
		GRPC:     GRPCConfig{Reflection: true},
		Metrics:  MetricsConfig{Enabled: true},
		Database: DatabaseConfig{MinConns: 5},
	}
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns host:port for net.Listen.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// GRPCConfig holds gRPC server settings.
type GRPCConfig struct {
	Host           string `yaml:"host"              env:"GRPC_HOST"              env-default:"0.0.0.0"`
	Port           int    `yaml:"port"              env:"GRPC_PORT"              env-default:"50051"`
	MaxRecvMsgSize int    `yaml:"max_recv_msg_size" env:"GRPC_MAX_RECV_MSG_SIZE" env-default:"4194304"`
	Reflection     bool   `yaml:"reflection"        env:"GRPC_REFLECTION"        env-description:"default true"`
}

func (c GRPCConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// MetricsConfig controls the Prometheus side listener of the gRPC server.
// The REST server exposes /metrics on its own port.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-description:"default true"`
	Host    string `yaml:"host"    env:"METRICS_HOST"    env-default:"0.0.0.0"`
	Port    int    `yaml:"port"    env:"METRICS_PORT"    env-default:"9090"`
}

func (c MetricsConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN               string        `yaml:"dsn"                 env:"DATABASE_DSN"                 env-required:"true"`
	MaxConns          int32         `yaml:"max_conns"           env:"DATABASE_MAX_CONNS"           env-default:"25"`
	MinConns          int32         `yaml:"min_conns"           env:"DATABASE_MIN_CONNS"           env-description:"default 5"`
	MaxConnLifetime   time.Duration `yaml:"max_conn_lifetime"   env:"DATABASE_MAX_CONN_LIFETIME"   env-default:"1h"`
	MaxConnIdleTime   time.Duration `yaml:"max_conn_idle_time"  env:"DATABASE_MAX_CONN_IDLE_TIME"  env-default:"30m"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"1m"`
	// LogQueries traces every statement at debug level.
	LogQueries bool `yaml:"log_queries" env:"DATABASE_LOG_QUERIES" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ClassifierConfig holds settings of the keyword classifier.
type ClassifierConfig struct {
	// Seed fixes the confidence RNG; 0 seeds from the clock.
	Seed uint64 `yaml:"seed" env:"CLASSIFIER_SEED" env-default:"0"`
}

// SegmentConfig holds history handling of the segment service.
type SegmentConfig struct {
	HistoryFetch  int  `yaml:"history_fetch"  env:"SEGMENT_HISTORY_FETCH"  env-default:"5"`
	HistoryLimit  int  `yaml:"history_limit"  env:"SEGMENT_HISTORY_LIMIT"  env-default:"2"`
	AtomicHistory bool `yaml:"atomic_history" env:"SEGMENT_ATOMIC_HISTORY" env-default:"false"`
}
