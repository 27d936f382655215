// models/settings.go
package models

import (
	"fmt"
	"time"
)

// SettingsKeySplitRules is the settings-store key for the partner split.
const SettingsKeySplitRules = "split_rules"

// Setting is a generic key-value configuration row.
type Setting struct {
	Key       string      `json:"key" bson:"key"`
	Value     interface{} `json:"value" bson:"value"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updated_at"`
}

// SplitRules allocates the agency commission among internal stakeholders.
// The three percentages must sum to 100; Validate is called at
// configuration-write time, never inside the calculator.
type SplitRules struct {
	Gestor      int `json:"gestor" bson:"gestor" validate:"gte=0,lte=100"`
	Operacional int `json:"operacional" bson:"operacional" validate:"gte=0,lte=100"`
	Reserva     int `json:"reserva" bson:"reserva" validate:"gte=0,lte=100"`
}

// Validate checks the split percentages sum to exactly 100.
func (r SplitRules) Validate() error {
	if r.Gestor < 0 || r.Operacional < 0 || r.Reserva < 0 {
		return fmt.Errorf("split percentages must not be negative")
	}
	if sum := r.Gestor + r.Operacional + r.Reserva; sum != 100 {
		return fmt.Errorf("split percentages must sum to 100, got %d", sum)
	}
	return nil
}

// DefaultSplitRules is used until an admin configures the split.
func DefaultSplitRules() SplitRules {
	return SplitRules{Gestor: 30, Operacional: 30, Reserva: 40}
}

// SplitBreakdown is the amount allocated to each stakeholder.
type SplitBreakdown struct {
	Gestor      float64 `json:"gestor"`
	Operacional float64 `json:"operacional"`
	Reserva     float64 `json:"reserva"`
}
