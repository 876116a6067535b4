package ingestion

import (
	"regexp"
	"strings"
)

var multiBlankLines = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes text content while preserving line structure:
// line endings become LF, trailing whitespace is trimmed per line, runs of
// blank lines collapse to at most two, and interior whitespace runs collapse
// to single spaces.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.Join(strings.Fields(line), " "))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
