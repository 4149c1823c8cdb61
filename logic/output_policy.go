package logic

import (
	"github.com/microcosm-cc/bluemonday"
	"html"
	"notes_board/shared"
	"regexp"
	"strings"
)

const previewMaxLen = 200

// Allow-list for a rendered notes container: note blocks and message
// paragraphs, nothing else.
func newContainerPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div", "h2", "p")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^note$`)).OnElements("div")
	p.AllowAttrs(digestAttr).Matching(regexp.MustCompile(`^[0-9a-f]{8}$`)).OnElements("div")
	return p
}

func stripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}

// Markup-free, shortened version of a response body for log lines.
func diagnosticPreview(body []byte) string {
	plain := shared.StripControl(stripHtml(string(body)))
	return shared.TruncateWithEllipsis(plain, previewMaxLen)
}
