package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DBPath string // path to the SQLite database file

	TokenTTL       time.Duration // advisory lifetime reported at issuance
	TokenCacheSize int           // bound on the verification cache

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict API access to specific IPs/CIDRs
	IssueCIDRS   []string // IPs/CIDRs allowed to request tokens (default: loopback only)
	TrustProxy   bool     // true => trust X-Forwarded-For headers
	CORSOrigins  []string // allowed CORS origins for the extension ("*" by default)

	RateBurst        int // rate limit: burst per client IP
	RateRefillPerMin int // rate limit: refill per client IP per minute
}

// fileConfig mirrors Config for the optional YAML file. Pointer fields
// distinguish "absent" from zero values; durations are written as strings
// ("5s", "720h").
type fileConfig struct {
	ListenAddr       *string  `yaml:"listen_addr"`
	ShutdownTimeout  *string  `yaml:"shutdown_timeout"`
	LogLevel         *string  `yaml:"log_level"`
	PrettyLog        *bool    `yaml:"pretty_log"`
	DBPath           *string  `yaml:"db_path"`
	TokenTTL         *string  `yaml:"token_ttl"`
	TokenCacheSize   *int     `yaml:"token_cache_size"`
	AllowedHosts     []string `yaml:"allowed_hosts"`
	AllowedCIDRS     []string `yaml:"allowed_cidrs"`
	IssueCIDRS       []string `yaml:"issue_cidrs"`
	TrustProxy       *bool    `yaml:"trust_proxy"`
	CORSOrigins      []string `yaml:"cors_origins"`
	RateBurst        *int     `yaml:"rate_burst"`
	RateRefillPerMin *int     `yaml:"rate_refill_per_min"`
}

// Load builds the configuration. Precedence, lowest to highest: built-in
// defaults, the optional YAML file named by SYNCMARKS_CONFIG_FILE, then
// SYNCMARKS_* environment variables.
func Load() (*Config, error) {
	fc, err := loadFile(os.Getenv("SYNCMARKS_CONFIG_FILE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ListenAddr:      pickString("SYNCMARKS_LISTEN_ADDR", fc.ListenAddr, ":8080"),
		ShutdownTimeout: pickDuration("SYNCMARKS_SHUTDOWN_TIMEOUT", fc.ShutdownTimeout, 5*time.Second),

		LogLevel:  pickString("SYNCMARKS_LOG_LEVEL", fc.LogLevel, "info"),
		PrettyLog: pickBool("SYNCMARKS_PRETTY_LOG", fc.PrettyLog, false),

		DBPath: pickString("SYNCMARKS_DB_PATH", fc.DBPath, "syncmarks.db"),

		TokenTTL:       pickDuration("SYNCMARKS_TOKEN_TTL", fc.TokenTTL, 30*24*time.Hour),
		TokenCacheSize: pickInt("SYNCMARKS_TOKEN_CACHE_SIZE", fc.TokenCacheSize, 1024),

		AllowedHosts: pickSlice("SYNCMARKS_ALLOWED_HOSTS", fc.AllowedHosts, nil),
		AllowedCIDRS: pickSlice("SYNCMARKS_ALLOWED_CIDRS", fc.AllowedCIDRS, nil),
		IssueCIDRS:   pickSlice("SYNCMARKS_ISSUE_CIDRS", fc.IssueCIDRS, []string{"127.0.0.1/32", "::1/128"}),
		TrustProxy:   pickBool("SYNCMARKS_TRUST_PROXY", fc.TrustProxy, false),
		CORSOrigins:  pickSlice("SYNCMARKS_CORS_ORIGINS", fc.CORSOrigins, []string{"*"}),

		RateBurst:        pickInt("SYNCMARKS_RATE_BURST", fc.RateBurst, 30),
		RateRefillPerMin: pickInt("SYNCMARKS_RATE_REFILL_PER_MIN", fc.RateRefillPerMin, 60),
	}

	if cfg.TokenCacheSize < 1 {
		return nil, fmt.Errorf("token cache size must be positive, got %d", cfg.TokenCacheSize)
	}

	return cfg, nil
}

func loadFile(path string) (*fileConfig, error) {
	fc := &fileConfig{}
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fc, nil
}

// helpers

func pickString(key string, file *string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if file != nil && *file != "" {
		return *file
	}
	return def
}

func pickBool(key string, file *bool, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if file != nil {
		return *file
	}
	return def
}

func pickInt(key string, file *int, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	if file != nil {
		return *file
	}
	return def
}

func pickDuration(key string, file *string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	if file != nil {
		if d, err := time.ParseDuration(*file); err == nil {
			return d
		}
	}
	return def
}

func pickSlice(key string, file []string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		return splitAndTrim(v)
	}
	if len(file) > 0 {
		return file
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
