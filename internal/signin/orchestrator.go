// Package signin runs one check-in pass over all configured accounts and reports
// each outcome through the notifier.
package signin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edgard/nodeseek-signbot/internal/checkin"
	"github.com/edgard/nodeseek-signbot/internal/config"
	"github.com/edgard/nodeseek-signbot/internal/notify"
	"github.com/edgard/nodeseek-signbot/internal/quotes"
)

// SignInClient performs the check-in request for one session cookie.
type SignInClient interface {
	SignIn(ctx context.Context, cookie string) (checkin.Outcome, error)
}

// Orchestrator processes account slots 1..10 strictly in order, one at a time.
type Orchestrator struct {
	accounts [config.MaxAccounts]config.Account
	client   SignInClient
	notifier notify.Notifier
	picker   *quotes.Picker
	logger   *slog.Logger
}

// New creates an Orchestrator over the accounts in cfg.
func New(
	cfg *config.Config,
	client SignInClient,
	notifier notify.Notifier,
	picker *quotes.Picker,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if picker == nil {
		picker = quotes.NewPicker(nil)
	}
	return &Orchestrator{
		accounts: cfg.Accounts,
		client:   client,
		notifier: notifier,
		picker:   picker,
		logger:   logger.With("component", "signin"),
	}
}

// Run performs one pass and returns the report messages in slot order.
//
// A failure while processing an account is turned into an error report for that
// account and the pass continues. If sending that error report fails too, the pass
// stops and Run returns the messages gathered so far along with the error.
// Run also stops early when ctx is done.
func (o *Orchestrator) Run(ctx context.Context) ([]string, error) {
	startTime := time.Now()
	o.logger.InfoContext(ctx, "Starting check-in pass")

	var results []string
	var attempted, succeeded, errored int

	for _, acct := range o.accounts {
		if !acct.Configured() {
			continue
		}
		if err := ctx.Err(); err != nil {
			o.logger.WarnContext(ctx, "Check-in pass interrupted", "slot", acct.Index, "error", err)
			return results, err
		}

		attempted++
		log := o.logger.With("slot", acct.Index, "user", acct.Name)

		msg, ok, err := o.processAccount(ctx, acct)
		if err != nil {
			errored++
			log.ErrorContext(ctx, "Check-in failed with error", "error", err)

			msg = ErrorMessage(acct.Name, err)
			if notifyErr := o.notifier.Notify(ctx, msg); notifyErr != nil {
				log.ErrorContext(ctx, "Failed to deliver error report, aborting pass", "error", notifyErr)
				return results, fmt.Errorf("slot %d: failed to deliver error report: %w", acct.Index, notifyErr)
			}
			results = append(results, msg)
			continue
		}

		if ok {
			succeeded++
		}
		log.InfoContext(ctx, "Check-in processed", "success", ok)
		results = append(results, msg)
	}

	o.logger.InfoContext(ctx, "Check-in pass finished",
		"attempted", attempted,
		"succeeded", succeeded,
		"failed", attempted-succeeded,
		"errored", errored,
		"duration", time.Since(startTime))

	return results, nil
}

// processAccount signs one account in, composes its report and sends it.
func (o *Orchestrator) processAccount(ctx context.Context, acct config.Account) (string, bool, error) {
	outcome, err := o.client.SignIn(ctx, acct.Cookie)
	if err != nil {
		return "", false, err
	}

	q := o.picker.Pick()
	var msg string
	if outcome.Succeeded() {
		msg = SuccessMessage(acct.Name, q)
	} else {
		msg = FailureMessage(acct.Name, outcome.Reason, q)
	}

	if err := o.notifier.Notify(ctx, msg); err != nil {
		return "", false, err
	}

	return msg, outcome.Succeeded(), nil
}
