package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validatePort("server.port", c.Server.Port); err != nil {
		return err
	}
	if err := validatePort("grpc.port", c.GRPC.Port); err != nil {
		return err
	}
	if c.Metrics.Enabled {
		if err := validatePort("metrics.port", c.Metrics.Port); err != nil {
			return err
		}
		if c.Metrics.Port == c.GRPC.Port {
			return fmt.Errorf("metrics.port must differ from grpc.port (both %d)", c.Metrics.Port)
		}
	}
	if c.GRPC.MaxRecvMsgSize <= 0 {
		return fmt.Errorf("grpc.max_recv_msg_size must be > 0 (got %d)", c.GRPC.MaxRecvMsgSize)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Segment.validate(); err != nil {
		return fmt.Errorf("segment: %w", err)
	}

	return nil
}

func validatePort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be in 1..65535 (got %d)", name, port)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d, max %d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (s *SegmentConfig) validate() error {
	if s.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be >= 1 (got %d)", s.HistoryLimit)
	}
	if s.HistoryFetch < s.HistoryLimit {
		return fmt.Errorf("history_fetch must be >= history_limit (got %d < %d)", s.HistoryFetch, s.HistoryLimit)
	}
	return nil
}
