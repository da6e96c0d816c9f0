package quality

import (
	"encoding/json"
	"fmt"
)

// Severity is the ordinal status tier of a reading.
type Severity int

const (
	Good Severity = iota
	Moderate
	Poor
	Harmful
)

var severityNames = [...]string{"good", "moderate", "poor", "harmful"}

func (s Severity) String() string {
	if s < Good || s > Harmful {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity maps a lower-case tier name back to its Severity.
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return Good, fmt.Errorf("unknown severity %q", name)
}

// AtLeast reports whether s is as severe as other or worse.
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Worst returns the most severe status. An empty list is good.
func Worst(statuses ...Severity) Severity {
	worst := Good
	for _, s := range statuses {
		if s > worst {
			worst = s
		}
	}
	return worst
}
