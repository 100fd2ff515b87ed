// Package classify defines the classification result shape and the
// placeholder model behind it. The placeholder labels every input "unknown"
// with confidence 0.0; the interface and result shape are stable so a real
// model can slot in without touching callers.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Confidence is a classification score in [0, 1]. It serializes with an
// explicit decimal point so integral scores appear as 0.0 rather than 0.
type Confidence float64

// MarshalJSON implements json.Marshaler.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// String renders the score for both JSON and key=value output.
func (c Confidence) String() string {
	f := float64(c)
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Result is a single classification outcome. Field order fixes the JSON key
// order.
type Result struct {
	Label      string     `json:"label"`
	Confidence Confidence `json:"confidence"`
	Input      string     `json:"input"`
}

// Classifier assigns a label to a piece of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
}

// Placeholder is the stub model: constant label, constant confidence, input
// echoed verbatim. It never errs and performs no inference.
type Placeholder struct{}

// NewPlaceholder returns the stub classifier.
func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

// Classify implements Classifier.
func (p *Placeholder) Classify(_ context.Context, text string) (Result, error) {
	return Result{Label: "unknown", Confidence: 0, Input: text}, nil
}

// FormatText renders a result as a single key=value line.
func FormatText(r Result) string {
	return fmt.Sprintf("label=%s confidence=%s", r.Label, r.Confidence)
}

// FormatJSON renders a result as 2-space-indented JSON.
func FormatJSON(r Result) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}
