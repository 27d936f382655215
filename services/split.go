// services/split.go
package services

import "github.com/litteagency/litteflux_backend/models"

// ApplySplit allocates an accumulated commission among the internal
// stakeholders. The caller guarantees the rules sum to 100 (enforced by
// SplitRules.Validate at configuration-write time); this function just
// multiplies.
func ApplySplit(total float64, rules models.SplitRules) models.SplitBreakdown {
	return models.SplitBreakdown{
		Gestor:      total * float64(rules.Gestor) / 100,
		Operacional: total * float64(rules.Operacional) / 100,
		Reserva:     total * float64(rules.Reserva) / 100,
	}
}
