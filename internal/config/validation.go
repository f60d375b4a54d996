package config

import (
	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against its struct tags.
// Account slots are not validated: an incomplete slot is simply skipped.
func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}
