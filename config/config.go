//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package config loads the rouge command configuration from a YAML file and
// ROUGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

// Sink types.
const (
	SinkNone  = "none"
	SinkLocal = "local"
	SinkMySQL = "mysql"
)

// Environment variable names.
const (
	EnvMetrics     = "ROUGE_METRICS"
	EnvStats       = "ROUGE_STATS"
	EnvExclusive   = "ROUGE_EXCLUSIVE"
	EnvRaw         = "ROUGE_RAW"
	EnvLengths     = "ROUGE_LENGTHS"
	EnvParallelism = "ROUGE_PARALLELISM"
	EnvLogLevel    = "ROUGE_LOG_LEVEL"
	EnvSink        = "ROUGE_SINK"
	EnvSinkDir     = "ROUGE_SINK_DIR"
	EnvMySQLDSN    = "ROUGE_MYSQL_DSN"
)

// MySQLConfig configures the MySQL sink.
type MySQLConfig struct {
	DSN         string `yaml:"dsn"`
	TablePrefix string `yaml:"table_prefix"`
	SkipDBInit  bool   `yaml:"skip_db_init"`
}

// SinkConfig selects where reports are saved.
type SinkConfig struct {
	Type  string      `yaml:"type"`
	Dir   string      `yaml:"dir"`
	MySQL MySQLConfig `yaml:"mysql"`
}

// Config is the root configuration of the rouge command.
type Config struct {
	Metrics     []string   `yaml:"metrics"`
	Stats       []string   `yaml:"stats"`
	Exclusive   bool       `yaml:"exclusive"`
	Raw         bool       `yaml:"raw"`
	Lengths     bool       `yaml:"lengths"`
	Parallelism int        `yaml:"parallelism"`
	LogLevel    string     `yaml:"log_level"`
	Sink        SinkConfig `yaml:"sink"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Metrics:     metricNames(rouge.DefaultMetrics),
		Stats:       statNames(rouge.DefaultStats),
		Exclusive:   true,
		Parallelism: 1,
		LogLevel:    "info",
		Sink:        SinkConfig{Type: SinkNone},
	}
}

// Load reads a config from path. A missing file yields the defaults, and keys
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = 1
	}
	if cfg.Sink.Type == "" {
		cfg.Sink.Type = SinkNone
	}
	return cfg, nil
}

// defaultEnvFile is loaded when no dotenv file is named. It may be absent.
const defaultEnvFile = ".env"

// ApplyEnv loads the given dotenv files and overrides cfg with the ROUGE_*
// variables that are set. Without files it loads ".env" if present; a named
// file that is missing is an error. Every malformed variable is reported.
func ApplyEnv(cfg *Config, envFiles ...string) error {
	if len(envFiles) == 0 {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}

	var errs *multierror.Error
	if v, ok := os.LookupEnv(EnvMetrics); ok {
		cfg.Metrics = splitList(v)
	}
	if v, ok := os.LookupEnv(EnvStats); ok {
		cfg.Stats = splitList(v)
	}
	for name, dst := range map[string]*bool{
		EnvExclusive: &cfg.Exclusive,
		EnvRaw:       &cfg.Raw,
		EnvLengths:   &cfg.Lengths,
	} {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		*dst = b
	}
	if v, ok := os.LookupEnv(EnvParallelism); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", EnvParallelism, err))
		} else {
			cfg.Parallelism = n
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvSink); ok {
		cfg.Sink.Type = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvSinkDir); ok {
		cfg.Sink.Dir = v
	}
	if v, ok := os.LookupEnv(EnvMySQLDSN); ok {
		cfg.Sink.MySQL.DSN = v
	}
	return errs.ErrorOrNil()
}

// Validate checks the settings that rouge.New does not.
func (c *Config) Validate() error {
	var errs *multierror.Error
	switch c.Sink.Type {
	case SinkNone, SinkLocal:
	case SinkMySQL:
		if c.Sink.MySQL.DSN == "" {
			errs = multierror.Append(errs, errors.New("mysql sink requires a dsn"))
		}
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown sink type %q", c.Sink.Type))
	}
	if c.Parallelism <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("parallelism must be positive, got %d", c.Parallelism))
	}
	return errs.ErrorOrNil()
}

// ScorerOptions converts the config into rouge options. Metric and stat names
// are normalized with NormalizeMetric and NormalizeStat.
func (c *Config) ScorerOptions() []rouge.Option {
	metrics := make([]string, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		metrics = append(metrics, NormalizeMetric(m))
	}
	stats := make([]string, 0, len(c.Stats))
	for _, s := range c.Stats {
		stats = append(stats, NormalizeStat(s))
	}
	return []rouge.Option{
		rouge.WithMetrics(metrics...),
		rouge.WithStats(stats...),
		rouge.WithExclusive(c.Exclusive),
		rouge.WithRawResults(c.Raw),
		rouge.WithReturnLengths(c.Lengths),
		rouge.WithParallelism(c.Parallelism),
	}
}

// NormalizeMetric maps the short names "1".."5" and "L" to "rouge-1".."rouge-5"
// and "rouge-l", case-insensitively. Full names are lower-cased.
func NormalizeMetric(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "rouge-") {
		return name
	}
	return "rouge-" + name
}

// NormalizeStat lower-cases a stat name so that "F" selects "f".
func NormalizeStat(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func metricNames(metrics []rouge.Metric) []string {
	names := make([]string, 0, len(metrics))
	for _, m := range metrics {
		names = append(names, m.String())
	}
	return names
}

func statNames(stats []rouge.Stat) []string {
	names := make([]string, 0, len(stats))
	for _, s := range stats {
		names = append(names, s.String())
	}
	return names
}
