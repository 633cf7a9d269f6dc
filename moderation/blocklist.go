package moderation

import (
	_ "embed"
	"os"
	"strings"

	"fraibot/errors"
)

//go:embed blocklist.txt
var defaultBlocklist string

// DefaultWords returns the embedded blocklist, one word per line.
func DefaultWords() []string {
	return splitWords(defaultBlocklist)
}

// LoadWords reads a blocklist file from disk, for deployments that override
// the embedded default.
func LoadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	words := splitWords(string(data))
	if len(words) == 0 {
		return nil, errors.ErrEmptyBlocklist
	}
	return words, nil
}

func splitWords(raw string) []string {
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		if word := strings.TrimSpace(line); word != "" {
			words = append(words, word)
		}
	}
	return words
}
