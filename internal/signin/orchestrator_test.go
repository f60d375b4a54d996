package signin_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edgard/nodeseek-signbot/internal/checkin"
	"github.com/edgard/nodeseek-signbot/internal/config"
	"github.com/edgard/nodeseek-signbot/internal/quotes"
	"github.com/edgard/nodeseek-signbot/internal/signin"
)

// fakeClient answers SignIn by cookie.
type fakeClient struct {
	mu       sync.Mutex
	outcomes map[string]checkin.Outcome
	errs     map[string]error
	calls    []string
}

func (f *fakeClient) SignIn(_ context.Context, cookie string) (checkin.Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cookie)
	if err, ok := f.errs[cookie]; ok {
		return checkin.Outcome{}, err
	}
	return f.outcomes[cookie], nil
}

// fakeNotifier records texts and fails on demand.
type fakeNotifier struct {
	texts  []string
	failOn func(text string) error
}

func (f *fakeNotifier) Notify(_ context.Context, text string) error {
	f.texts = append(f.texts, text)
	if f.failOn != nil {
		return f.failOn(text)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func firstQuote() *quotes.Picker {
	return quotes.NewPicker(func(int) int { return 0 })
}

func configWith(accounts ...config.Account) *config.Config {
	cfg := &config.Config{}
	for i := range cfg.Accounts {
		cfg.Accounts[i].Index = i + 1
	}
	for _, a := range accounts {
		cfg.Accounts[a.Index-1] = a
	}
	return cfg
}

func TestRun_SkipsUnconfiguredSlots(t *testing.T) {
	t.Parallel()

	cfg := configWith(
		config.Account{Index: 1, Cookie: "c1"},            // no name
		config.Account{Index: 2, Name: "bob"},             // no cookie
		config.Account{Index: 5, Cookie: "c5", Name: "e"}, // complete
	)
	client := &fakeClient{outcomes: map[string]checkin.Outcome{"c5": {Status: checkin.StatusSuccess}}}
	notifier := &fakeNotifier{}

	results, err := signin.New(cfg, client, notifier, firstQuote(), discardLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if diff := cmp.Diff([]string{"c5"}, client.calls); diff != "" {
		t.Errorf("sign-in calls mismatch (-want +got):\n%s", diff)
	}
	if len(notifier.texts) != 1 || len(results) != 1 {
		t.Fatalf("notifications = %d, results = %d, want 1 each", len(notifier.texts), len(results))
	}
}

func TestRun_NoAccounts(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	notifier := &fakeNotifier{}

	results, err := signin.New(configWith(), client, notifier, nil, discardLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 0 || len(client.calls) != 0 || len(notifier.texts) != 0 {
		t.Errorf("results=%d calls=%d notifications=%d, want all zero", len(results), len(client.calls), len(notifier.texts))
	}
}

func TestRun_Messages(t *testing.T) {
	t.Parallel()

	q := quotes.All()[0]
	cfg := configWith(
		config.Account{Index: 1, Cookie: "ok", Name: "alice"},
		config.Account{Index: 2, Cookie: "dup", Name: "bob"},
	)
	client := &fakeClient{outcomes: map[string]checkin.Outcome{
		"ok":  {Status: checkin.StatusSuccess},
		"dup": {Status: checkin.StatusFailure, Reason: checkin.ReasonAlreadySigned},
	}}
	notifier := &fakeNotifier{}

	results, err := signin.New(cfg, client, notifier, firstQuote(), discardLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		"✅ NodeSeek 签到成功\n\n账号 *alice*：今天已完成签到。\n\n💡 出自 *" + q.Author + "*：" + q.Text,
		"❌ NodeSeek 签到失败\n\n账号 *bob*：" + checkin.ReasonAlreadySigned + "\n\n💡 出自 *" + q.Author + "*：" + q.Text,
	}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, notifier.texts); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_EachMessageHasOneQuote(t *testing.T) {
	t.Parallel()

	var accounts []config.Account
	outcomes := map[string]checkin.Outcome{}
	for i := 1; i <= config.MaxAccounts; i++ {
		cookie := "c" + strings.Repeat("x", i)
		accounts = append(accounts, config.Account{Index: i, Cookie: cookie, Name: "user"})
		outcomes[cookie] = checkin.Outcome{Status: checkin.Status(i % 2), Reason: "r"}
	}
	client := &fakeClient{outcomes: outcomes}

	results, err := signin.New(configWith(accounts...), client, &fakeNotifier{}, quotes.NewPicker(nil), discardLogger()).
		Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != config.MaxAccounts {
		t.Fatalf("results = %d, want %d", len(results), config.MaxAccounts)
	}

	for _, msg := range results {
		matches := 0
		for _, q := range quotes.All() {
			if strings.HasSuffix(msg, "💡 出自 *"+q.Author+"*："+q.Text) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("message %q carries %d quotes, want exactly 1", msg, matches)
		}
	}
}

func TestRun_ErrorIsolatedPerAccount(t *testing.T) {
	t.Parallel()

	var accounts []config.Account
	for i := 1; i <= config.MaxAccounts; i++ {
		accounts = append(accounts, config.Account{Index: i, Cookie: "c" + string(rune('a'+i)), Name: "u" + string(rune('a'+i))})
	}
	failing := accounts[2] // slot 3
	client := &fakeClient{
		outcomes: map[string]checkin.Outcome{},
		errs:     map[string]error{failing.Cookie: errors.New("connection reset by peer")},
	}
	notifier := &fakeNotifier{}

	results, err := signin.New(configWith(accounts...), client, notifier, firstQuote(), discardLogger()).
		Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(client.calls) != config.MaxAccounts {
		t.Errorf("sign-in calls = %d, want %d", len(client.calls), config.MaxAccounts)
	}
	if len(results) != config.MaxAccounts || len(notifier.texts) != config.MaxAccounts {
		t.Fatalf("results = %d, notifications = %d, want %d each", len(results), len(notifier.texts), config.MaxAccounts)
	}
	wantErrMsg := "❌ *" + failing.Name + "* 签到异常：connection reset by peer"
	if results[2] != wantErrMsg {
		t.Errorf("results[2] = %q, want %q", results[2], wantErrMsg)
	}
	for i, msg := range results[3:] {
		if !strings.HasPrefix(msg, "❌ NodeSeek 签到失败") {
			t.Errorf("results[%d] = %q, want a regular failure report", i+3, msg)
		}
	}
}

func TestRun_NotifyErrorBecomesErrorReport(t *testing.T) {
	t.Parallel()

	cfg := configWith(
		config.Account{Index: 1, Cookie: "c1", Name: "alice"},
		config.Account{Index: 2, Cookie: "c2", Name: "bob"},
	)
	client := &fakeClient{outcomes: map[string]checkin.Outcome{
		"c1": {Status: checkin.StatusSuccess},
		"c2": {Status: checkin.StatusSuccess},
	}}
	calls := 0
	notifier := &fakeNotifier{failOn: func(string) error {
		calls++
		if calls == 1 {
			return errors.New("telegram unavailable")
		}
		return nil
	}}

	results, err := signin.New(cfg, client, notifier, firstQuote(), discardLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0] != "❌ *alice* 签到异常：telegram unavailable" {
		t.Errorf("results[0] = %q", results[0])
	}
	if !strings.HasPrefix(results[1], "✅ NodeSeek 签到成功") {
		t.Errorf("results[1] = %q, want success report", results[1])
	}
	if len(notifier.texts) != 3 {
		t.Errorf("notification attempts = %d, want 3", len(notifier.texts))
	}
}

func TestRun_ErrorReportFailureAbortsPass(t *testing.T) {
	t.Parallel()

	cfg := configWith(
		config.Account{Index: 1, Cookie: "c1", Name: "alice"},
		config.Account{Index: 2, Cookie: "c2", Name: "bob"},
		config.Account{Index: 3, Cookie: "c3", Name: "carol"},
	)
	notifyErr := errors.New("telegram unavailable")
	client := &fakeClient{
		outcomes: map[string]checkin.Outcome{"c1": {Status: checkin.StatusSuccess}},
		errs:     map[string]error{"c2": errors.New("timeout")},
	}
	notifier := &fakeNotifier{failOn: func(text string) error {
		if strings.Contains(text, "签到异常") {
			return notifyErr
		}
		return nil
	}}

	results, err := signin.New(cfg, client, notifier, firstQuote(), discardLogger()).Run(context.Background())
	if !errors.Is(err, notifyErr) {
		t.Fatalf("Run() error = %v, want %v", err, notifyErr)
	}
	if len(results) != 1 || !strings.HasPrefix(results[0], "✅") {
		t.Errorf("results = %q, want only the first account's report", results)
	}
	if diff := cmp.Diff([]string{"c1", "c2"}, client.calls); diff != "" {
		t.Errorf("sign-in calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{}
	cfg := configWith(config.Account{Index: 1, Cookie: "c1", Name: "alice"})

	_, err := signin.New(cfg, client, &fakeNotifier{}, firstQuote(), discardLogger()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(client.calls) != 0 {
		t.Errorf("sign-in calls = %d, want 0", len(client.calls))
	}
}
