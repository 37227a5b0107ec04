package scorepadservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// PlayedAtParser turns user input into the time a session was played.
type PlayedAtParser struct {
	w *when.Parser
}

// NewPlayedAtParser creates a parser for English natural language dates.
func NewPlayedAtParser() *PlayedAtParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &PlayedAtParser{w: w}
}

// Parse accepts RFC 3339, a date, or natural language relative to now.
// Blank input means now.
func (p *PlayedAtParser) Parse(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, input, now.Location()); err == nil {
		return t.UTC(), nil
	}

	normalized := strings.ToLower(input)
	normalized = strings.ReplaceAll(normalized, "today ", "today at ")

	r, err := p.w.Parse(normalized, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidPlayedAt, input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q not recognized", ErrInvalidPlayedAt, input)
	}
	return r.Time.UTC(), nil
}
