// services/financial.go
package services

import "github.com/litteagency/litteflux_backend/models"

// Historical default shares used when a campaign predates explicit cut/tax
// values.
const (
	defaultAgencyShare     = 0.2
	defaultInfluencerShare = 0.8
)

// CashSummary is the consolidated cash-flow view of all campaigns.
type CashSummary struct {
	// Balance is the agency tax already collected from paid campaigns.
	Balance float64 `json:"saldoTotal"`
	// Receivable is gross value still pending client payment.
	Receivable float64 `json:"aReceber"`
	// PendingPayouts is the influencer cut owed on paid campaigns whose
	// transfer has not gone out yet.
	PendingPayouts float64 `json:"repassesPendentes"`
}

// Summarize rolls up campaign financials. Campaigns without explicit tax/cut
// values fall back to the historical 20/80 split of gross value.
func Summarize(campaigns []models.Campaign) CashSummary {
	var s CashSummary

	for _, c := range campaigns {
		val := c.Financial.GrossValue
		tax := c.Financial.AgencyTax
		if tax == 0 {
			tax = val * defaultAgencyShare
		}
		cut := c.Financial.InfluencerCut
		if cut == 0 {
			cut = val * defaultInfluencerShare
		}

		if c.Financial.ClientPayStatus == "Pago" {
			s.Balance += tax
			if c.Financial.PayoutStatus != "Pago" {
				s.PendingPayouts += cut
			}
		} else {
			s.Receivable += val
		}
	}

	return s
}
