package extract

import (
	"os"
	"strings"
	"unicode/utf8"
)

// extractTXT reads a plain text file. Non-UTF-8 content falls back to a
// Latin-1 interpretation, which accepts any byte sequence.
func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Source: path, Err: err}
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String(), nil
}
