// Package config loads and validates lunatic.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/zamotany/lunatic/internal/cli"
	"github.com/zamotany/lunatic/internal/dialect"
	"github.com/zamotany/lunatic/internal/parser"
)

// DefaultFile is looked up in the working directory when -config is unset.
const DefaultFile = "lunatic.json"

// Config is the on-disk configuration shared by all subcommands.
type Config struct {
	LuaVersion string       `json:"lua_version"`
	MaxDepth   int          `json:"max_depth"`
	Output     string       `json:"output"`
	Color      string       `json:"color"`
	LogLevel   string       `json:"log_level"`
	Serve      ServeOptions `json:"serve"`
	Watch      WatchOptions `json:"watch"`
}

// ServeOptions configures `lunatic serve`. CertFile and KeyFile are set
// together or not at all.
type ServeOptions struct {
	Addr     string `json:"addr"`
	CertFile string `json:"cert_file"`
	KeyFile  string `json:"key_file"`
}

// WatchOptions configures `lunatic watch`. Debounce is a time.Duration
// string such as "100ms".
type WatchOptions struct {
	Debounce string `json:"debounce"`
}

var (
	outputs = map[string]bool{"debug": true, "json": true, "tokens": true}
	colors  = map[string]bool{"auto": true, "always": true, "never": true}
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LuaVersion: dialect.DefaultVersion,
		MaxDepth:   parser.DefaultMaxDepth,
		Output:     "debug",
		Color:      "auto",
		LogLevel:   "warn",
		Serve:      ServeOptions{Addr: "127.0.0.1:4433"},
		Watch:      WatchOptions{Debounce: "100ms"},
	}
}

// Load reads configuration from path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// Save writes the configuration to path as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports every invalid field, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if _, err := dialect.Parse(c.LuaVersion); err != nil {
		errs = append(errs, fmt.Errorf("lua_version: %w", err))
	}
	if c.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max_depth: must be positive, got %d", c.MaxDepth))
	}
	if !outputs[c.Output] {
		errs = append(errs, fmt.Errorf("output: unknown format %q (want debug, json or tokens)", c.Output))
	}
	if !colors[c.Color] {
		errs = append(errs, fmt.Errorf("color: unknown mode %q (want auto, always or never)", c.Color))
	}
	if c.LogLevel != "" {
		if _, err := cli.ParseLevel(c.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("log_level: %w", err))
		}
	}
	if _, err := c.DebounceDuration(); err != nil {
		errs = append(errs, fmt.Errorf("watch.debounce: %w", err))
	}
	if (c.Serve.CertFile == "") != (c.Serve.KeyFile == "") {
		errs = append(errs, errors.New("serve: cert_file and key_file must be set together"))
	}

	return errors.Join(errs...)
}

// Dialect returns the configured Lua dialect.
func (c *Config) Dialect() (dialect.Dialect, error) {
	return dialect.Parse(c.LuaVersion)
}

// ParserOptions returns the parser options described by the config.
func (c *Config) ParserOptions() (parser.Options, error) {
	d, err := c.Dialect()
	if err != nil {
		return parser.Options{}, err
	}
	return parser.Options{Dialect: d, MaxDepth: c.MaxDepth}, nil
}

// DebounceDuration parses watch.debounce. An empty value means no debounce.
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", d)
	}
	return d, nil
}
