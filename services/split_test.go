package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/litteagency/litteflux_backend/models"
)

func TestApplySplit(t *testing.T) {
	rules := models.SplitRules{Gestor: 30, Operacional: 30, Reserva: 40}

	got := ApplySplit(1000, rules)

	assert.Equal(t, float64(300), got.Gestor)
	assert.Equal(t, float64(300), got.Operacional)
	assert.Equal(t, float64(400), got.Reserva)
}

func TestApplySplitTotalInvariant(t *testing.T) {
	cases := []struct {
		total float64
		rules models.SplitRules
	}{
		{1000, models.SplitRules{Gestor: 30, Operacional: 30, Reserva: 40}},
		{12345.67, models.SplitRules{Gestor: 33, Operacional: 33, Reserva: 34}},
		{0.03, models.SplitRules{Gestor: 1, Operacional: 1, Reserva: 98}},
		{0, models.SplitRules{Gestor: 50, Operacional: 25, Reserva: 25}},
		{999999.99, models.SplitRules{Gestor: 100, Operacional: 0, Reserva: 0}},
	}

	for _, tc := range cases {
		got := ApplySplit(tc.total, tc.rules)
		sum := got.Gestor + got.Operacional + got.Reserva
		assert.InDelta(t, tc.total, sum, 1e-9, "split of %v with %+v", tc.total, tc.rules)
	}
}

func TestSplitRulesValidate(t *testing.T) {
	assert.NoError(t, models.SplitRules{Gestor: 30, Operacional: 30, Reserva: 40}.Validate())
	assert.NoError(t, models.SplitRules{Gestor: 100, Operacional: 0, Reserva: 0}.Validate())
	assert.Error(t, models.SplitRules{Gestor: 30, Operacional: 30, Reserva: 30}.Validate())
	assert.Error(t, models.SplitRules{Gestor: 120, Operacional: -10, Reserva: -10}.Validate())
}
