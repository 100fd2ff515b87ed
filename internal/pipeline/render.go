package pipeline

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// Envelope is the structured form of a processed result. Field order fixes
// the JSON key order, so output is deterministic up to the timestamp.
type Envelope struct {
	App       string `json:"app"`
	Length    int    `json:"length"`
	Timestamp string `json:"timestamp"`
	Output    string `json:"output"`
}

// Render produces the final output string. Plain mode returns the processed
// text verbatim; JSON mode wraps it in an Envelope stamped with the given
// wall-clock time in UTC. Length counts runes, not bytes.
func Render(processed string, jsonOutput bool, app string, now time.Time) (string, error) {
	if !jsonOutput {
		return processed, nil
	}
	env := Envelope{
		App:       app,
		Length:    utf8.RuneCountInString(processed),
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Output:    processed,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(data), nil
}
