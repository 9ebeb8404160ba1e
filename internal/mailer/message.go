package mailer

import (
	"fmt"
	"mime"
	"strings"
)

const crlf = "\r\n"

// BuildMessage assembles the full RFC 5322 message: headers plus a
// multipart/alternative body carrying the HTML part.
func BuildMessage(from, fromName, to, subject, htmlBody string) []byte {
	const boundary = "onboard-multipart-boundary"

	var builder strings.Builder
	writeHeader := func(key, value string) {
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(value)
		builder.WriteString(crlf)
	}

	fromHeader := from
	if strings.TrimSpace(fromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", fromName), from)
	}

	writeHeader("From", fromHeader)
	writeHeader("To", to)
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", subject))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
	builder.WriteString(crlf)

	builder.WriteString("--" + boundary + crlf)
	writeHeader("Content-Type", "text/html; charset=\"utf-8\"")
	writeHeader("Content-Transfer-Encoding", "8bit")
	builder.WriteString(crlf)
	builder.WriteString(htmlBody)
	builder.WriteString(crlf)
	builder.WriteString("--" + boundary + "--" + crlf)

	return []byte(builder.String())
}
