// services/deadlines.go
package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litteagency/litteflux_backend/models"
	"github.com/litteagency/litteflux_backend/utils"
)

// Deadline bucket types
const (
	DeadlineUpcoming = "UPCOMING"
	DeadlineOverdue  = "DELAY"
)

const upcomingWindowDays = 7
const deadlineListLimit = 5

// DeadlineEvent is one dated obligation surfaced on the dashboard.
type DeadlineEvent struct {
	CampaignID string    `json:"campaignId"`
	Task       string    `json:"task"`
	Brand      string    `json:"brand"`
	Type       string    `json:"type"`
	Date       time.Time `json:"date"`
	// DaysLeft is only meaningful for upcoming events.
	DaysLeft int `json:"daysLeft,omitempty"`
}

// DeadlineReport buckets every pending dated obligation across campaigns.
type DeadlineReport struct {
	Upcoming []DeadlineEvent `json:"upcoming"`
	Overdue  []DeadlineEvent `json:"overdue"`
}

// AggregateDeadlines walks every date-bearing sub-record of every campaign
// and classifies it as upcoming (within the next 7 days) or overdue. Records
// whose paired status already reached its completion sentinel are skipped, as
// are empty and "A definir" dates. Both buckets are sorted ascending by date
// and truncated to the five earliest entries. Pure function; re-run on every
// campaign-list change.
func AggregateDeadlines(campaigns []models.Campaign, influencers []models.Influencer, now time.Time) DeadlineReport {
	handles := make(map[primitive.ObjectID]string, len(influencers))
	for _, inf := range influencers {
		handles[inf.ID] = inf.Username
	}

	var upcoming, overdue []DeadlineEvent
	windowEnd := now.AddDate(0, 0, upcomingWindowDays)

	check := func(dateStr, task, brand, status, concludedVal string, campaignID primitive.ObjectID) {
		if dateStr == "" || dateStr == models.DateTBD {
			return
		}
		d, ok := utils.ParseFlexibleDate(dateStr)
		if !ok {
			return
		}
		if status == concludedVal {
			return
		}

		if d.Before(now) {
			overdue = append(overdue, DeadlineEvent{
				CampaignID: campaignID.Hex(),
				Task:       task,
				Brand:      brand,
				Type:       DeadlineOverdue,
				Date:       d,
			})
		} else if !d.After(windowEnd) {
			diff := int(math.Ceil(d.Sub(now).Hours() / 24))
			upcoming = append(upcoming, DeadlineEvent{
				CampaignID: campaignID.Hex(),
				Task:       task,
				Brand:      brand,
				Type:       DeadlineUpcoming,
				Date:       d,
				DaysLeft:   diff,
			})
		}
	}

	for _, c := range campaigns {
		brand := c.Brand
		if len(c.InfluencerIDs) > 0 {
			if handle, ok := handles[c.InfluencerIDs[0]]; ok && handle != "" {
				brand = fmt.Sprintf("%s (@%s)", c.Brand, handle)
			}
		}

		check(c.Contract.DueDate, "Assinatura Contrato", brand, c.Contract.Status, models.ContractStatusSigned, c.ID)
		check(c.Script.DueDate, "Aprovação Roteiro", brand, c.Script.Status, models.ScriptStatusApproved, c.ID)

		for _, item := range c.Content.Items {
			check(item.PostDate, fmt.Sprintf("Post: %s (%s)", item.Type, item.Platform), brand, item.Status, models.ContentStatusPosted, c.ID)
		}

		// Legacy single-post record
		check(c.Posting.Date, "Publicação Oficial", brand, c.Posting.Status, models.PostStatusPublished, c.ID)

		check(c.Metrics.DueDate, "Coleta Métricas", brand, c.Metrics.Status, models.MetricsStatusSent, c.ID)

		check(c.Invoice.IssueDate, "Emissão de NF", brand, c.Invoice.Status, models.InvoiceStatusIssued, c.ID)
		// The payment-due alert is only relevant once the invoice left the
		// Pendente state.
		check(c.Invoice.PaymentDueDate, "Recebimento Cliente", brand, c.Invoice.Status, models.InvoiceStatusPending, c.ID)
		check(c.Payout.Date, "Repasse Littê", brand, c.Payout.Status, models.PayoutStatusPaid, c.ID)
		check(c.Product.ShippingDate, "Chegada Produto", brand, c.Product.Status, models.ProductStatusDelivered, c.ID)
	}

	sortByDate(upcoming)
	sortByDate(overdue)

	return DeadlineReport{
		Upcoming: truncate(upcoming, deadlineListLimit),
		Overdue:  truncate(overdue, deadlineListLimit),
	}
}

func sortByDate(events []DeadlineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}

func truncate(events []DeadlineEvent, limit int) []DeadlineEvent {
	if events == nil {
		return []DeadlineEvent{}
	}
	if len(events) > limit {
		return events[:limit]
	}
	return events
}
