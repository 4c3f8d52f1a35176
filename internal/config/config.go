package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config holds the server and self-play settings. Values come from the
// defaults, then CHESS_* environment variables, then command-line flags.
type Config struct {
	Addr            string
	AllowOrigins    string
	Seed            int64
	SelfPlayDelay   time.Duration
	SelfPlayTimeout time.Duration // wall-time limit of one self-play request
	MaxPlies        int
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		AllowOrigins:    "*",
		Seed:            0,
		SelfPlayDelay:   250 * time.Millisecond,
		SelfPlayTimeout: 30 * time.Second,
		MaxPlies:        500,
	}
}

// Load parses args (without the program name) on top of the environment
// read through getenv.
func Load(name string, args []string, getenv func(string) string) (Config, error) {
	env, err := fromEnv(Default(), getenv)
	if err != nil {
		return Config{}, err
	}

	cfg := env
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", env.Addr, "listen address")
	fs.StringVar(&cfg.AllowOrigins, "origins", env.AllowOrigins, "comma-separated CORS origins")
	fs.Int64Var(&cfg.Seed, "seed", env.Seed, "random move seed (0 = from clock)")
	fs.DurationVar(&cfg.SelfPlayDelay, "selfplay-delay", env.SelfPlayDelay, "pause between self-play moves")
	fs.DurationVar(&cfg.SelfPlayTimeout, "selfplay-timeout", env.SelfPlayTimeout, "wall-time limit of one self-play request")
	fs.IntVar(&cfg.MaxPlies, "max-plies", env.MaxPlies, "upper bound on self-play length")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv(cfg Config, getenv func(string) string) (Config, error) {
	cfg.Addr = envOr(getenv, "CHESS_ADDR", cfg.Addr)
	cfg.AllowOrigins = envOr(getenv, "CHESS_ORIGINS", cfg.AllowOrigins)

	if v := envOr(getenv, "CHESS_SEED", ""); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("CHESS_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := envOr(getenv, "CHESS_SELFPLAY_DELAY", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("CHESS_SELFPLAY_DELAY: %w", err)
		}
		cfg.SelfPlayDelay = d
	}
	if v := envOr(getenv, "CHESS_SELFPLAY_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("CHESS_SELFPLAY_TIMEOUT: %w", err)
		}
		cfg.SelfPlayTimeout = d
	}
	if v := envOr(getenv, "CHESS_MAX_PLIES", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("CHESS_MAX_PLIES: %w", err)
		}
		cfg.MaxPlies = n
	}
	return cfg, nil
}

func envOr(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if c.MaxPlies <= 0 {
		errs = append(errs, fmt.Errorf("max plies must be positive, got %d", c.MaxPlies))
	}
	if c.SelfPlayDelay < 0 {
		errs = append(errs, fmt.Errorf("self-play delay must not be negative, got %s", c.SelfPlayDelay))
	}
	if c.SelfPlayTimeout <= 0 {
		errs = append(errs, fmt.Errorf("self-play timeout must be positive, got %s", c.SelfPlayTimeout))
	}
	return errors.Join(errs...)
}
