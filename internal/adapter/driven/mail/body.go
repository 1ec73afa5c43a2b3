// Package mail implements the Mailer port over plain SMTP.
package mail

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/prherald/prherald/internal/domain/model"
)

// Subject is the subject line on every review notice.
const Subject = "Pull Requests Needing Attention"

const noticeHeading = "The following Pull Requests need review:"

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy

	// titleEscaper neutralizes link syntax inside PR titles before they are
	// embedded in markdown.
	titleEscaper = strings.NewReplacer("[", `\[`, "]", `\]`)
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// ComposeBody renders the plain-text and HTML parts of a review notice.
// The plain part lists "title - url" lines; the HTML part renders the same
// list as links.
func ComposeBody(items []model.ReviewItem) (text, htmlBody string) {
	var plain strings.Builder
	plain.WriteString(noticeHeading + "\n")

	var md strings.Builder
	md.WriteString(noticeHeading + "\n\n")

	for _, item := range items {
		plain.WriteString(item.Title + " - " + item.URL + "\n")
		md.WriteString("- [" + titleEscaper.Replace(item.Title) + "](" + item.URL + ")\n")
	}

	return plain.String(), renderMarkdown(md.String())
}

// renderMarkdown converts a markdown string to sanitized HTML.
func renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}
