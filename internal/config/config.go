package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultRemote is the remote pushes go to when none is configured
	DefaultRemote = "origin"

	// DefaultSettleDelay is the pause after each merge before it is reported complete.
	// It paces the sequential output; merges do not depend on it.
	DefaultSettleDelay = 500 * time.Millisecond

	// EnvPrefix prefixes every environment variable read by prtrain
	EnvPrefix = "PRTRAIN"

	configName = "prtrain"
)

// Configuration keys
const (
	KeyRemote          = "remote"
	KeyPush            = "push"
	KeySettleDelay     = "settle_delay"
	KeyPushConcurrency = "push_concurrency"
	KeyBanner          = "banner"
)

// Config holds the settings of a single prtrain run
type Config struct {
	// Remote is the remote the train is pushed to
	Remote string `mapstructure:"remote"`
	// Push publishes the train after merging
	Push bool `mapstructure:"push"`
	// SettleDelay is the pause after each merge
	SettleDelay time.Duration `mapstructure:"settle_delay"`
	// PushConcurrency caps simultaneous pushes (0 = unlimited)
	PushConcurrency int `mapstructure:"push_concurrency"`
	// Banner prints the start-up banner
	Banner bool `mapstructure:"banner"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Remote:          DefaultRemote,
		Push:            false,
		SettleDelay:     DefaultSettleDelay,
		PushConcurrency: 0,
		Banner:          true,
	}
}

// FlagKeys maps command-line flag names to configuration keys
var FlagKeys = map[string]string{
	"remote":           KeyRemote,
	"push":             KeyPush,
	"settle-delay":     KeySettleDelay,
	"push-concurrency": KeyPushConcurrency,
}

// NoBannerFlag is the flag that turns the banner off
const NoBannerFlag = "no-banner"

// Load reads the configuration for the repository rooted at repoRoot.
// repoRoot may be empty when no repository was found; flags may be nil.
func Load(repoRoot string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if err := readConfigFiles(v, repoRoot); err != nil {
		return nil, err
	}

	if flags != nil {
		for flagName, key := range FlagKeys {
			if flag := flags.Lookup(flagName); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", flagName, err)
				}
			}
		}
		if flags.Changed(NoBannerFlag) {
			noBanner, err := flags.GetBool(NoBannerFlag)
			if err != nil {
				return nil, err
			}
			v.Set(KeyBanner, !noBanner)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Remote) == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle delay must not be negative, got %s", c.SettleDelay)
	}
	if c.PushConcurrency < 0 {
		return fmt.Errorf("push concurrency must not be negative, got %d", c.PushConcurrency)
	}
	return nil
}

// RepoConfigFile returns the path of the repository-level config file
func RepoConfigFile(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configName+".yaml")
}

// UserConfigDir returns the directory holding the user-level config file
func UserConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, configName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", configName)
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := Default()
	v.SetDefault(KeyRemote, defaults.Remote)
	v.SetDefault(KeyPush, defaults.Push)
	v.SetDefault(KeySettleDelay, defaults.SettleDelay)
	v.SetDefault(KeyPushConcurrency, defaults.PushConcurrency)
	v.SetDefault(KeyBanner, defaults.Banner)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// readConfigFiles merges the user config file and then the repository config file into v
func readConfigFiles(v *viper.Viper, repoRoot string) error {
	var files []string
	if dir := UserConfigDir(); dir != "" {
		files = append(files, filepath.Join(dir, configName+".yaml"))
	}
	if repoRoot != "" {
		files = append(files, RepoConfigFile(repoRoot))
	}

	v.SetConfigType("yaml")
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to open config file %s: %w", file, err)
		}
		err = v.MergeConfig(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", file, err)
		}
	}
	return nil
}
