package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/litteagency/litteflux_backend/models"
)

func TestSummarize(t *testing.T) {
	paid := campaignWithDefaults("Nike")
	paid.Financial.GrossValue = 10000
	paid.Financial.ClientPayStatus = "Pago"

	paidAndSettled := campaignWithDefaults("Adidas")
	paidAndSettled.Financial.GrossValue = 5000
	paidAndSettled.Financial.AgencyTax = 1500
	paidAndSettled.Financial.InfluencerCut = 3500
	paidAndSettled.Financial.ClientPayStatus = "Pago"
	paidAndSettled.Financial.PayoutStatus = "Pago"

	unpaid := campaignWithDefaults("Puma")
	unpaid.Financial.GrossValue = 2000

	s := Summarize([]models.Campaign{paid, paidAndSettled, unpaid})

	// Paid without explicit values falls back to 20% tax / 80% cut.
	assert.InDelta(t, 2000+1500, s.Balance, 1e-9)
	assert.InDelta(t, 8000, s.PendingPayouts, 1e-9)
	assert.InDelta(t, 2000, s.Receivable, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Balance)
	assert.Zero(t, s.Receivable)
	assert.Zero(t, s.PendingPayouts)
}
