// Package config loads lvroute settings from lvroute.yaml and LVROUTE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/dijkstra"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Query  QueryConfig  `mapstructure:"query"`
	Batch  BatchConfig  `mapstructure:"batch"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	Listen          string        `mapstructure:"listen"`
	RateLimit       float64       `mapstructure:"rate_limit"` // requests per second per client
	RateBurst       int           `mapstructure:"rate_burst"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// QueryConfig holds engine limits applied to every query. Zero means no limit.
type QueryConfig struct {
	MaxDistance      float64 `mapstructure:"max_distance"`
	InfEdgeThreshold float64 `mapstructure:"inf_edge_threshold"`
}

type BatchConfig struct {
	Workers int           `mapstructure:"workers"`
	Timeout time.Duration `mapstructure:"timeout"` // per query; zero means none
}

// Load reads the configuration from file and environment variables.
// A missing default config file is not an error; a missing explicit one is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".lvroute"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("lvroute")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("LVROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.rate_limit", 50.0)
	v.SetDefault("server.rate_burst", 100)
	v.SetDefault("server.request_timeout", 5*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("query.max_distance", 0.0)
	v.SetDefault("query.inf_edge_threshold", 0.0)
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.timeout", time.Duration(0))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var merr *multierror.Error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Server.RateLimit > 0, "server.rate_limit must be positive (%g)", c.Server.RateLimit)
	check(c.Server.RateBurst >= 1, "server.rate_burst must be at least 1 (%d)", c.Server.RateBurst)
	check(c.Server.RequestTimeout > 0, "server.request_timeout must be positive (%s)", c.Server.RequestTimeout)
	check(c.Server.ShutdownTimeout >= 0, "server.shutdown_timeout must not be negative (%s)", c.Server.ShutdownTimeout)
	check(c.Query.MaxDistance >= 0, "query.max_distance must not be negative (%g)", c.Query.MaxDistance)
	check(c.Query.InfEdgeThreshold >= 0, "query.inf_edge_threshold must not be negative (%g)", c.Query.InfEdgeThreshold)
	check(c.Batch.Workers >= 1, "batch.workers must be at least 1 (%d)", c.Batch.Workers)
	check(c.Batch.Timeout >= 0, "batch.timeout must not be negative (%s)", c.Batch.Timeout)

	return merr.ErrorOrNil()
}

// Options translates the query limits into engine options.
func (q QueryConfig) Options() []dijkstra.Option {
	var opts []dijkstra.Option
	if q.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(q.MaxDistance))
	}
	if q.InfEdgeThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(q.InfEdgeThreshold))
	}

	return opts
}
