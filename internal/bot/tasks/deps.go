// Package tasks implements the scheduled tasks of the sign-in bot.
// It includes task definitions, dependencies, and registration.
package tasks

import (
	"context"
	"log/slog"
)

// Runner performs one check-in pass and returns the report messages.
type Runner interface {
	Run(ctx context.Context) ([]string, error)
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	SignIn Runner
}
