// Package config provides configuration management for the remediator.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (AUTH_BEARER_TOKEN, REMEDIATION_STORAGE_CLASSES, ...)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Remediation RemediationConfig `mapstructure:"remediation"`
	K8s         K8sConfig         `mapstructure:"k8s"`
	Log         LogConfig         `mapstructure:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AuthConfig contains the static bearer secret callers must present.
type AuthConfig struct {
	BearerToken string `mapstructure:"bearer_token"`
}

// RemediationConfig contains the remediation policy.
type RemediationConfig struct {
	// StorageClasses is the set of class names whose PVC-backed pods are
	// remediated. Comma-separated in env form (REMEDIATION_STORAGE_CLASSES).
	StorageClasses []string `mapstructure:"storage_classes"`

	// DryRun reports decisions without deleting anything.
	DryRun bool `mapstructure:"dry_run"`

	// DeleteUncontrolled also deletes pods with no controller owner.
	// Off by default: such pods are not recreated after deletion.
	DeleteUncontrolled bool `mapstructure:"delete_uncontrolled"`
}

// K8sConfig contains Kubernetes client settings.
type K8sConfig struct {
	// Kubeconfig is an optional kubeconfig path; empty means in-cluster
	// config with a fallback to the default loading rules.
	Kubeconfig string `mapstructure:"kubeconfig"`

	OperationTimeout  time.Duration `mapstructure:"operation_timeout"`
	DeleteConcurrency int           `mapstructure:"delete_concurrency"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/csi-remediator")

	// Maps nested config: remediation.storage_classes → REMEDIATION_STORAGE_CLASSES
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for fatal configuration errors. The service refuses to
// start without a bearer secret or with an empty storage class set.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.BearerToken) == "" {
		return fmt.Errorf("auth.bearer_token must not be empty")
	}
	if len(c.Remediation.StorageClassSet()) == 0 {
		return fmt.Errorf("remediation.storage_classes must name at least one storage class")
	}
	if c.K8s.DeleteConcurrency < 1 {
		return fmt.Errorf("k8s.delete_concurrency must be at least 1")
	}
	return nil
}

// StorageClassSet returns the configured classes as a deduplicated set.
// Names are trimmed but compared case-sensitively, matching how the API
// server treats storageClassName.
func (c RemediationConfig) StorageClassSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.StorageClasses))
	for _, name := range c.StorageClasses {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Auth (required; default registers the key for env binding)
	v.SetDefault("auth.bearer_token", "")

	// Remediation
	v.SetDefault("remediation.storage_classes", []string{})
	v.SetDefault("remediation.dry_run", false)
	v.SetDefault("remediation.delete_uncontrolled", false)

	// K8s
	v.SetDefault("k8s.kubeconfig", "")
	v.SetDefault("k8s.operation_timeout", "30s")
	v.SetDefault("k8s.delete_concurrency", 8)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
