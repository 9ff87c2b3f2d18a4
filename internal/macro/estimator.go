// ABOUTME: Macro-estimation collaborator interface and reply parsing.
// ABOUTME: Turns free-text food descriptions into estimated daily macros.
package macro

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Macros is the collaborator's estimate for one day of food entries.
type Macros struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g,omitempty"`
}

// Estimator estimates daily macros from free-text food descriptions.
// Implementations own their retry and timeout policy; callers treat any
// error as "nutrition unknown" and never retry themselves.
type Estimator interface {
	Estimate(ctx context.Context, items []string) (*Macros, error)
}

// ParseReply extracts a Macros JSON object from a collaborator reply. The
// reply may wrap the object in prose or a fenced code block.
func ParseReply(reply string) (*Macros, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var m Macros
	if err := json.Unmarshal([]byte(reply[start:end+1]), &m); err != nil {
		return nil, fmt.Errorf("parse macro estimate: %w", err)
	}
	if m.Calories <= 0 {
		return nil, fmt.Errorf("macro estimate has no calories")
	}
	return &m, nil
}
