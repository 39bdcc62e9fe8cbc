package skill

import "strings"

// headerDelimiter separates the header block from the body. The split
// is on the literal token, not on whole lines, matching the historical
// package format exactly.
const headerDelimiter = "---"

// ParseDocument splits raw primary-document text into header fields
// and body. Parsing is permissive: text that does not start with the
// delimiter, or that has fewer than three delimiter-separated
// segments, becomes a Document with an empty header and the entire
// text as body. Header lines are key/value pairs split on the first
// colon; lines without a colon are skipped without error. Existing
// packages rely on that tolerance, so it must not be tightened here.
func ParseDocument(content string) Document {
	if !strings.HasPrefix(content, headerDelimiter) {
		return Document{Header: map[string]string{}, Body: content}
	}

	parts := strings.SplitN(content, headerDelimiter, 3)
	if len(parts) < 3 {
		return Document{Header: map[string]string{}, Body: content}
	}

	header := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		header[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return Document{Header: header, Body: strings.TrimSpace(parts[2])}
}

// CountLines returns the number of non-empty lines in content. Lines
// containing only whitespace count as empty.
func CountLines(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
