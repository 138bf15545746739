package solution

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"leetpush/internal/domain/model"
)

const notAvailable = "N/A"

// BuildContent renders the metadata header followed by a blank line and the code verbatim.
func BuildContent(snapshot model.ProblemSnapshot, now time.Time) string {
	category := snapshot.Category()
	if category == "" {
		category = notAvailable
	}

	var builder strings.Builder
	builder.WriteString("/*\n")
	builder.WriteString(fmt.Sprintf(" * LeetCode Problem: %s\n", snapshot.Title))
	builder.WriteString(fmt.Sprintf(" * Problem URL: %s\n", snapshot.URL))
	builder.WriteString(fmt.Sprintf(" * Difficulty: %s\n", snapshot.Difficulty))
	builder.WriteString(fmt.Sprintf(" * Category: %s\n", category))
	builder.WriteString(fmt.Sprintf(" * Submission Date: %s\n", now.UTC().Format(time.DateOnly)))
	builder.WriteString(" */\n\n")
	builder.WriteString(snapshot.SourceCode)
	return builder.String()
}

// EncodeContent base64-encodes the UTF-8 bytes of content for a JSON request body.
func EncodeContent(content string) string {
	return base64.StdEncoding.EncodeToString([]byte(content))
}

// DecodeContent reverses EncodeContent. GitHub wraps base64 at 60 columns, so
// line breaks are ignored.
func DecodeContent(encoded string) (string, error) {
	clean := strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	data, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	return string(data), nil
}

// CommitMessage names the commit for a create or an update.
func CommitMessage(title string, update bool) string {
	if update {
		return "Update solution for " + title
	}
	return "Add solution for " + title
}
