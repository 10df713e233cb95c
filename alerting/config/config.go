package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/modelwatch/modelwatch/accesscontrol"
	"github.com/modelwatch/modelwatch/db"
	"github.com/modelwatch/modelwatch/helpers"
	"github.com/modelwatch/modelwatch/models"
)

const (
	DefaultLockSize           = 32
	DefaultConfigCacheTTL     = 60 * time.Second
	DefaultNotifierMaxRetries = 3
	DefaultNotifierRetryWait  = 5 * time.Second
	DefaultBreakerConsecutive = int64(3)
	DefaultHttpClientTimeout  = 5 * time.Second
	DefaultPruneInterval      = 12 * time.Hour
	DefaultCutoffDuration     = 30 * 24 * time.Hour
	DefaultRateLimitMaxAmount = 10
	DefaultRateLimitValidSecs = 1 * time.Second
)

var defaultServerConfig = helpers.ServerConfig{
	Port: 8080,
}

var defaultHealthConfig = models.HealthConfig{
	Port: 8081,
}

var defaultLoggingConfig = helpers.LoggingConfig{
	Level: "info",
}

type DBConfig struct {
	ModelDB  db.DatabaseConfig `yaml:"model_db"`
	MetricDB db.DatabaseConfig `yaml:"metric_db"`
	AlertDB  db.DatabaseConfig `yaml:"alert_db"`
}

type NotifierConfig struct {
	MaxRetries         uint64          `yaml:"max_retries"`
	RetryInterval      time.Duration   `yaml:"retry_interval"`
	BreakerConsecutive int64           `yaml:"breaker_consecutive_failures"`
	TLSClientCerts     models.TLSCerts `yaml:"tls"`
}

type RateLimitConfig struct {
	MaxAmount     int           `yaml:"max_amount"`
	ValidDuration time.Duration `yaml:"valid_duration"`
}

type PrunerConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	CutoffDuration  time.Duration `yaml:"cutoff_duration"`
}

type Config struct {
	Logging           helpers.LoggingConfig           `yaml:"logging"`
	Server            helpers.ServerConfig            `yaml:"server"`
	Health            models.HealthConfig             `yaml:"health"`
	DB                DBConfig                        `yaml:"db"`
	LockSize          int                             `yaml:"lock_size"`
	ConfigCacheTTL    time.Duration                   `yaml:"config_cache_ttl"`
	Notifier          NotifierConfig                  `yaml:"notifier"`
	RateLimit         RateLimitConfig                 `yaml:"rate_limit"`
	Pruner            PrunerConfig                    `yaml:"pruner"`
	Principals        []accesscontrol.PrincipalConfig `yaml:"principals"`
	HttpClientTimeout time.Duration                   `yaml:"http_client_timeout"`
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := &Config{
		Logging:        defaultLoggingConfig,
		Server:         defaultServerConfig,
		Health:         defaultHealthConfig,
		LockSize:       DefaultLockSize,
		ConfigCacheTTL: DefaultConfigCacheTTL,
		Notifier: NotifierConfig{
			MaxRetries:         DefaultNotifierMaxRetries,
			RetryInterval:      DefaultNotifierRetryWait,
			BreakerConsecutive: DefaultBreakerConsecutive,
		},
		RateLimit: RateLimitConfig{
			MaxAmount:     DefaultRateLimitMaxAmount,
			ValidDuration: DefaultRateLimitValidSecs,
		},
		Pruner: PrunerConfig{
			RefreshInterval: DefaultPruneInterval,
			CutoffDuration:  DefaultCutoffDuration,
		},
		HttpClientTimeout: DefaultHttpClientTimeout,
	}

	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	err := dec.Decode(conf)

	if err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return conf, nil
}

func (c *Config) Validate() error {
	if c.DB.ModelDB.URL == "" {
		return fmt.Errorf("Configuration error: db.model_db.url is empty")
	}

	if c.DB.MetricDB.URL == "" {
		return fmt.Errorf("Configuration error: db.metric_db.url is empty")
	}

	if c.DB.AlertDB.URL == "" {
		return fmt.Errorf("Configuration error: db.alert_db.url is empty")
	}

	if c.LockSize <= 0 {
		return fmt.Errorf("Configuration error: lock_size is less than or equal to 0")
	}

	if c.ConfigCacheTTL <= time.Duration(0) {
		return fmt.Errorf("Configuration error: config_cache_ttl is less-equal than 0")
	}

	if c.Notifier.RetryInterval <= time.Duration(0) {
		return fmt.Errorf("Configuration error: notifier.retry_interval is less-equal than 0")
	}

	if c.Notifier.BreakerConsecutive <= 0 {
		return fmt.Errorf("Configuration error: notifier.breaker_consecutive_failures is less than or equal to 0")
	}

	if c.RateLimit.MaxAmount <= 0 {
		return fmt.Errorf("Configuration error: rate_limit.max_amount is less than or equal to 0")
	}

	if c.RateLimit.ValidDuration <= time.Duration(0) {
		return fmt.Errorf("Configuration error: rate_limit.valid_duration is less-equal than 0")
	}

	if c.Pruner.RefreshInterval <= time.Duration(0) {
		return fmt.Errorf("Configuration error: pruner.refresh_interval is less-equal than 0")
	}

	if c.Pruner.CutoffDuration <= time.Duration(0) {
		return fmt.Errorf("Configuration error: pruner.cutoff_duration is less-equal than 0")
	}

	if len(c.Principals) == 0 {
		return fmt.Errorf("Configuration error: no principals configured")
	}

	for _, p := range c.Principals {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	if c.HttpClientTimeout <= time.Duration(0) {
		return fmt.Errorf("Configuration error: http_client_timeout is less-equal than 0")
	}

	if err := c.Health.Validate(); err != nil {
		return err
	}

	return nil
}
