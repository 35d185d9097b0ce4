package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// OTTOLINK_API_DOMAIN.
const EnvPrefix = "OTTOLINK"

const (
	developmentEnvironment = "development"
	developmentInstallSalt = "ottolink-development-install-salt"
	minInstallSaltLength   = 16
)

// Config contains runtime configuration values. It is loaded once at
// service start and passed down by value.
type Config struct {
	Environment string

	APIDomain          string
	OttoProjectsDomain string
	HeartbeatURL       string

	SiteURL     string
	SiteID      string
	InstallSalt string

	ConnectTokenTTL     time.Duration
	IssueRateLimit      int
	IssueRateWindow     time.Duration
	SigningSecretLength int

	ConnectivityCacheTTL time.Duration
	HeartbeatInterval    time.Duration
	HeartbeatTicksPerRun int
	DebounceWindow       time.Duration
	LogThrottleWindow    time.Duration

	ProbeTimeout  time.Duration
	RemoteTimeout time.Duration

	JWTRefreshMargin time.Duration
	JWTMaxTTL        time.Duration
	PublicHashTTL    time.Duration

	RetryMaxAttempts     int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration

	TemporalHostPort  string
	TemporalNamespace string
	TaskQueue         string

	AsyncPoolSize int
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("environment", developmentEnvironment)

	v.SetDefault("api_domain", "https://api.searchatlas.com")
	v.SetDefault("otto_projects_domain", "https://sa.searchatlas.com/api/v2/otto-projects")
	v.SetDefault("heartbeat_url", "")

	v.SetDefault("site_url", "http://localhost")
	v.SetDefault("site_id", "1")
	v.SetDefault("install_salt", "")

	v.SetDefault("connect_token_ttl", 15*time.Minute)
	v.SetDefault("issue_rate_limit", 10)
	v.SetDefault("issue_rate_window", 5*time.Minute)
	v.SetDefault("signing_secret_length", 32)

	v.SetDefault("connectivity_cache_ttl", 5*time.Minute)
	v.SetDefault("heartbeat_interval", 2*time.Hour)
	v.SetDefault("heartbeat_ticks_per_run", 12)
	v.SetDefault("debounce_window", 10*time.Second)
	v.SetDefault("log_throttle_window", 5*time.Minute)

	v.SetDefault("probe_timeout", 15*time.Second)
	v.SetDefault("remote_timeout", 30*time.Second)

	v.SetDefault("jwt_refresh_margin", 5*time.Minute)
	v.SetDefault("jwt_max_ttl", 24*time.Hour)
	v.SetDefault("public_hash_ttl", time.Hour)

	v.SetDefault("retry_max_attempts", 3)
	v.SetDefault("retry_initial_interval", time.Second)
	v.SetDefault("retry_max_interval", 30*time.Second)

	v.SetDefault("temporal_host_port", "localhost:7233")
	v.SetDefault("temporal_namespace", "default")
	v.SetDefault("task_queue", "ottolink-heartbeat")

	v.SetDefault("async_pool_size", 16)
}

// Load reads configuration from OTTOLINK_* environment variables with sane
// defaults.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Environment: v.GetString("environment"),

		APIDomain:          strings.TrimRight(v.GetString("api_domain"), "/"),
		OttoProjectsDomain: strings.TrimRight(v.GetString("otto_projects_domain"), "/"),
		HeartbeatURL:       v.GetString("heartbeat_url"),

		SiteURL:     v.GetString("site_url"),
		SiteID:      v.GetString("site_id"),
		InstallSalt: v.GetString("install_salt"),

		ConnectTokenTTL:     v.GetDuration("connect_token_ttl"),
		IssueRateLimit:      v.GetInt("issue_rate_limit"),
		IssueRateWindow:     v.GetDuration("issue_rate_window"),
		SigningSecretLength: v.GetInt("signing_secret_length"),

		ConnectivityCacheTTL: v.GetDuration("connectivity_cache_ttl"),
		HeartbeatInterval:    v.GetDuration("heartbeat_interval"),
		HeartbeatTicksPerRun: v.GetInt("heartbeat_ticks_per_run"),
		DebounceWindow:       v.GetDuration("debounce_window"),
		LogThrottleWindow:    v.GetDuration("log_throttle_window"),

		ProbeTimeout:  v.GetDuration("probe_timeout"),
		RemoteTimeout: v.GetDuration("remote_timeout"),

		JWTRefreshMargin: v.GetDuration("jwt_refresh_margin"),
		JWTMaxTTL:        v.GetDuration("jwt_max_ttl"),
		PublicHashTTL:    v.GetDuration("public_hash_ttl"),

		RetryMaxAttempts:     v.GetInt("retry_max_attempts"),
		RetryInitialInterval: v.GetDuration("retry_initial_interval"),
		RetryMaxInterval:     v.GetDuration("retry_max_interval"),

		TemporalHostPort:  v.GetString("temporal_host_port"),
		TemporalNamespace: v.GetString("temporal_namespace"),
		TaskQueue:         v.GetString("task_queue"),

		AsyncPoolSize: v.GetInt("async_pool_size"),
	}

	// Only local development may run without an operator-provided salt.
	if cfg.InstallSalt == "" && cfg.Environment == developmentEnvironment {
		cfg.InstallSalt = developmentInstallSalt
	}
	if cfg.HeartbeatURL == "" {
		cfg.HeartbeatURL = cfg.APIDomain + "/api/v2/otto-plugin/heartbeat/"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the subsystem cannot run with.
func (c Config) Validate() error {
	if c.APIDomain == "" {
		return fmt.Errorf("api_domain is required")
	}
	if c.OttoProjectsDomain == "" {
		return fmt.Errorf("otto_projects_domain is required")
	}
	if c.ConnectivityCacheTTL <= 0 {
		return fmt.Errorf("connectivity_cache_ttl must be positive")
	}
	if c.HeartbeatInterval < c.ConnectivityCacheTTL {
		return fmt.Errorf("heartbeat_interval %s is shorter than connectivity_cache_ttl %s", c.HeartbeatInterval, c.ConnectivityCacheTTL)
	}
	if c.IssueRateLimit < 1 {
		return fmt.Errorf("issue_rate_limit must be at least 1")
	}
	if c.SigningSecretLength < 32 {
		return fmt.Errorf("signing_secret_length must be at least 32")
	}
	if len(c.InstallSalt) < minInstallSaltLength {
		return fmt.Errorf("install_salt must be at least %d characters", minInstallSaltLength)
	}
	if c.HeartbeatTicksPerRun < 1 {
		return fmt.Errorf("heartbeat_ticks_per_run must be at least 1")
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("retry_max_attempts must be at least 1")
	}
	return nil
}
