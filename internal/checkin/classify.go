package checkin

import (
	"regexp"
	"strings"
)

// Markers and fixed replies used by the classifier. Order of the checks matters:
// the specific phrases must win over the generic HTML extraction.
const (
	successMarker = "签到成功"

	alreadySignedMarker = "您今日已经签过到"
	badCredentialMarker = "账号或密码错误"
	notLoggedInMarker   = "未登录"
	badCookieMarker     = "Cookie无效"

	ReasonAlreadySigned = "已签到过，请勿重复操作。"
	ReasonBadCredential = "账号或密码错误，请检查登录信息。"
	ReasonNotLoggedIn   = "未登录或 Cookie 无效，请检查 Cookie 设置。"
	ReasonUnknown       = "发生未知错误，请稍后再试。"
)

var (
	alertErrorRegex  = regexp.MustCompile(`(?i)<div[^>]*class=["']?alert_error["']?[^>]*>([\s\S]*?)</div>`)
	errorParaRegex   = regexp.MustCompile(`(?i)<p[^>]*class=["']?error["']?[^>]*>([\s\S]*?)</p>`)
	messageTextRegex = regexp.MustCompile(`(?i)<div[^>]*id=["']?messagetext["']?[^>]*>[\s\S]*?<p>(.*?)</p>`)
	htmlTagsRegex    = regexp.MustCompile(`<[^>]+>`)
)

var reasonRegexps = []*regexp.Regexp{alertErrorRegex, errorParaRegex, messageTextRegex}

// Classify decides the outcome of a check-in from the response body.
// The success marker wins regardless of anything else in the body.
func Classify(body string) Outcome {
	if strings.Contains(body, successMarker) {
		return Outcome{Status: StatusSuccess}
	}
	return Outcome{Status: StatusFailure, Reason: FailureReason(body)}
}

// FailureReason extracts a human-readable reason from a failed check-in page.
// Known phrases are checked first, then the forum's error blocks; the first match wins.
func FailureReason(body string) string {
	switch {
	case strings.Contains(body, alreadySignedMarker):
		return ReasonAlreadySigned
	case strings.Contains(body, badCredentialMarker):
		return ReasonBadCredential
	case strings.Contains(body, notLoggedInMarker), strings.Contains(body, badCookieMarker):
		return ReasonNotLoggedIn
	}

	for _, re := range reasonRegexps {
		m := re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		if text := strings.TrimSpace(htmlTagsRegex.ReplaceAllString(m[1], "")); text != "" {
			return text
		}
		return ReasonUnknown
	}

	return ReasonUnknown
}
