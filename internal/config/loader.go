package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load loads and validates configuration from:
// 1. Default values
// 2. the YAML file at path (optional, a missing file is not an error)
// 3. environment variables (NS_COOKIE_<i>, USER_<i>, TG_BOT_TOKEN, TG_USER_ID,
// and SECTION_KEY for everything else)
func Load(path string) (*Config, error) {
	startTime := time.Now()

	v, err := newViper(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	// Values are kept verbatim: any non-empty pair, whitespace included, fills the slot.
	for i := 1; i <= MaxAccounts; i++ {
		cfg.Accounts[i-1] = Account{
			Index:  i,
			Cookie: v.GetString(cookieKey(i)),
			Name:   v.GetString(userKey(i)),
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	slog.Debug("configuration loaded",
		"path", path,
		"accounts", len(cfg.ConfiguredAccounts()),
		"notifications", cfg.Telegram.Enabled(),
		"duration_ms", time.Since(startTime).Milliseconds())

	return cfg, nil
}

// newViper initializes a viper instance with defaults, env bindings and the optional file.
func newViper(path string) (*viper.Viper, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path == "" {
		return v, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			// Config file not found is okay, env and defaults still apply
			return v, nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return v, nil
}
