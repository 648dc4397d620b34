package valueobject

import (
	"encoding/json"
	"fmt"
)

// RiskLevel is an immutable value object representing the risk classification.
type RiskLevel struct {
	value string
}

var (
	RiskLevelLow      = RiskLevel{value: "low"}
	RiskLevelMedium   = RiskLevel{value: "medium"}
	RiskLevelHigh     = RiskLevel{value: "high"}
	RiskLevelCritical = RiskLevel{value: "critical"}
)

// Lower bounds of each level, inclusive. Every score-to-level mapping uses this table.
const (
	criticalThreshold = 75.0
	highThreshold     = 50.0
	mediumThreshold   = 25.0
)

// RiskLevelFromString reconstructs a RiskLevel from its string representation.
func RiskLevelFromString(s string) (RiskLevel, error) {
	switch s {
	case "low":
		return RiskLevelLow, nil
	case "medium":
		return RiskLevelMedium, nil
	case "high":
		return RiskLevelHigh, nil
	case "critical":
		return RiskLevelCritical, nil
	default:
		return RiskLevel{}, fmt.Errorf("invalid risk level: %s", s)
	}
}

// RiskLevelFromScore derives the RiskLevel for a score in [0,100].
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score >= criticalThreshold:
		return RiskLevelCritical
	case score >= highThreshold:
		return RiskLevelHigh
	case score >= mediumThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// String returns the string representation.
func (r RiskLevel) String() string {
	return r.value
}

// IsZero returns true if the RiskLevel has not been set.
func (r RiskLevel) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.value == other.value
}

// MarshalJSON encodes the level as its string form.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes a level previously produced by MarshalJSON.
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	level, err := RiskLevelFromString(s)
	if err != nil {
		return err
	}
	*r = level
	return nil
}
