// Package config provides configuration loading, validation, and management
// for the sign-in bot. It reads an optional YAML file, overlays environment
// variables, applies defaults and validates the result.
package config

import (
	"errors"
	"fmt"
)

// MaxAccounts is the number of account slots, addressed 1..MaxAccounts.
const MaxAccounts = 10

// ErrConfiguration is returned (wrapped) for any loading or validation failure.
var ErrConfiguration = errors.New("configuration error")

// Config defines the application configuration for all components.
// It is built once at startup and must be treated as read-only afterwards.
type Config struct {
	Accounts  [MaxAccounts]Account `mapstructure:"-"`
	Telegram  TelegramConfig       `mapstructure:"telegram"`
	CheckIn   CheckInConfig        `mapstructure:"checkin"   validate:"required"`
	Scheduler SchedulerConfig      `mapstructure:"scheduler" validate:"required"`
	HTTP      HTTPConfig           `mapstructure:"http"      validate:"required"`
	Logger    LoggerConfig         `mapstructure:"logger"    validate:"required"`
}

// Account is one check-in slot. Index is the 1-based slot number.
type Account struct {
	Index  int
	Cookie string
	Name   string
}

// Configured reports whether both the session cookie and the display name are set.
// Slots that are not configured are skipped entirely.
func (a Account) Configured() bool {
	return a.Cookie != "" && a.Name != ""
}

// TelegramConfig is the notification target shared by all accounts.
// Either field empty disables notifications without disabling check-ins.
type TelegramConfig struct {
	Token  string `mapstructure:"token"`
	UserID string `mapstructure:"user_id"`
}

// Enabled reports whether notifications can be delivered.
func (t TelegramConfig) Enabled() bool {
	return t.Token != "" && t.UserID != ""
}

// CheckInConfig describes the forum check-in request.
type CheckInConfig struct {
	URL       string `mapstructure:"url"        validate:"required,url"`
	UserAgent string `mapstructure:"user_agent" validate:"required"`
}

// SchedulerConfig holds the scheduler location and per-task settings.
type SchedulerConfig struct {
	Timezone string                `mapstructure:"timezone" validate:"required,timezone"`
	Tasks    map[string]TaskConfig `mapstructure:"tasks"    validate:"dive"`
}

// TaskConfig configures a single scheduled task by name.
type TaskConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Schedule   string `mapstructure:"schedule"     validate:"required_if=Enabled true"`
	RunOnStart bool   `mapstructure:"run_on_start"`
}

// HTTPConfig configures the liveness endpoint.
type HTTPConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

// LoggerConfig configures log output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// ConfiguredAccounts returns the configured slots in index order.
func (c *Config) ConfiguredAccounts() []Account {
	var out []Account
	for _, a := range c.Accounts {
		if a.Configured() {
			out = append(out, a)
		}
	}
	return out
}

func cookieKey(i int) string { return fmt.Sprintf("ns_cookie_%d", i) }
func userKey(i int) string   { return fmt.Sprintf("user_%d", i) }
