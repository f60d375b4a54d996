package config

// Default values for configuration
const (
	// Check-in defaults. The formhash value is kept exactly as the forum plugin URL was published.
	DefaultCheckInURL       = "https://node.seek.ink/plugin.php?id=dsu_paulsign:sign&operation=qiandao&formhash=xxxx"
	DefaultCheckInUserAgent = "Mozilla/5.0"

	// Scheduler defaults
	DefaultTimezone          = "UTC"
	DailyCheckInTask         = "daily_checkin"
	DefaultCheckInSchedule   = "0 1 * * *" // 09:00 Asia/Shanghai
	DefaultCheckInRunOnStart = false

	// HTTP defaults
	DefaultHTTPAddr = ":8080"

	// Log defaults
	DefaultLogLevel = "info"
	DefaultLogJSON  = false
)

var defaults = map[string]any{
	"checkin.url":        DefaultCheckInURL,
	"checkin.user_agent": DefaultCheckInUserAgent,

	"scheduler.timezone": DefaultTimezone,

	"scheduler.tasks." + DailyCheckInTask + ".enabled":      true,
	"scheduler.tasks." + DailyCheckInTask + ".schedule":     DefaultCheckInSchedule,
	"scheduler.tasks." + DailyCheckInTask + ".run_on_start": DefaultCheckInRunOnStart,

	"http.addr": DefaultHTTPAddr,

	"logger.level": DefaultLogLevel,
	"logger.json":  DefaultLogJSON,

	"telegram.token":   "",
	"telegram.user_id": "",
}

// envBindings maps config keys to environment variable names that do not follow
// the automatic KEY_PATH naming.
var envBindings = map[string]string{
	"telegram.token":   "TG_BOT_TOKEN",
	"telegram.user_id": "TG_USER_ID",
}
