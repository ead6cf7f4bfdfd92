package transcript

import (
	"encoding/json"
	"path/filepath"
	"strings"

	apperrors "github.com/ross7390/meeting-maestro/errors"
)

// Normalizer converts an uploaded file into one canonical line-oriented
// transcript string regardless of source format.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer instance
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize dispatches on the file extension. txt passes through unmodified;
// json is validated for well-formedness only and passed through as raw text;
// csv is reformatted line by line.
func (n *Normalizer) Normalize(filename, content string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "csv":
		return formatCSV(content), nil
	case "txt":
		return content, nil
	case "json":
		if !json.Valid([]byte(content)) {
			return "", apperrors.ErrInvalidContent(nil)
		}
		return content, nil
	default:
		return "", apperrors.ErrUnsupportedFormat(ext)
	}
}

// formatCSV rewrites each data line as "[timestamp] speaker: text". The
// scanner toggles an in-quotes flag on every quote character and splits on
// commas only outside quotes; a doubled quote toggles the flag twice and is
// therefore a net no-op rather than an escaped literal quote. Lines with
// fewer than three fields are dropped without error.
func formatCSV(content string) string {
	var out strings.Builder

	lines := make([]string, 0)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	// A header is only recognized on the first non-empty line.
	if strings.Contains(lines[0], "timestamp") && strings.Contains(lines[0], "speaker") {
		lines = lines[1:]
	}

	for _, line := range lines {
		fields := splitQuoted(line)
		if len(fields) < 3 {
			continue
		}

		timestamp := strings.TrimSpace(fields[0])
		speaker := strings.TrimSpace(fields[1])
		text := stripSurroundingQuotes(strings.TrimSpace(fields[2]))

		out.WriteString("[" + timestamp + "] " + speaker + ": " + text + "\n")
	}

	return out.String()
}

// splitQuoted splits a line on commas outside double quotes. Quote
// characters themselves are consumed, not emitted.
func splitQuoted(line string) []string {
	fields := make([]string, 0, 4)
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, current.String())

	return fields
}

// stripSurroundingQuotes removes at most one leading and one trailing quote.
func stripSurroundingQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
