package signin

import (
	"fmt"
	"strings"

	"github.com/edgard/nodeseek-signbot/internal/quotes"
)

// SuccessMessage is the report for an account whose check-in went through.
func SuccessMessage(name string, q quotes.Quote) string {
	return fmt.Sprintf("✅ NodeSeek 签到成功\n\n账号 *%s*：今天已完成签到。\n\n💡 出自 *%s*：%s", name, q.Author, q.Text)
}

// FailureMessage is the report for a check-in the forum rejected.
func FailureMessage(name, reason string, q quotes.Quote) string {
	return fmt.Sprintf("❌ NodeSeek 签到失败\n\n账号 *%s*：%s\n\n💡 出自 *%s*：%s", name, reason, q.Author, q.Text)
}

// markdownEscaper escapes the legacy Markdown entity characters.
var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "[", `\[`, "`", "\\`")

// ErrorMessage is the minimal report for an account whose processing errored.
// The error text is escaped so it cannot open an unterminated entity.
func ErrorMessage(name string, err error) string {
	return fmt.Sprintf("❌ *%s* 签到异常：%s", name, markdownEscaper.Replace(err.Error()))
}
