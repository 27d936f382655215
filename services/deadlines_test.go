package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litteagency/litteflux_backend/models"
)

func campaignWithDefaults(brand string) models.Campaign {
	c := models.Campaign{
		ID:    primitive.NewObjectID(),
		Brand: brand,
	}
	c.ApplyDefaults()
	return c
}

func TestAggregateDeadlinesOverdueContract(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	c := campaignWithDefaults("Nike")
	c.Contract.DueDate = "2024-01-01"
	c.Contract.Status = models.ContractStatusPending

	report := AggregateDeadlines([]models.Campaign{c}, nil, now)

	require.Len(t, report.Overdue, 1)
	assert.Empty(t, report.Upcoming)
	assert.Equal(t, "Assinatura Contrato", report.Overdue[0].Task)
	assert.Equal(t, c.ID.Hex(), report.Overdue[0].CampaignID)
	assert.Equal(t, DeadlineOverdue, report.Overdue[0].Type)
}

func TestAggregateDeadlinesSignedContractSuppressed(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	c := campaignWithDefaults("Nike")
	c.Contract.DueDate = "2024-01-01"
	c.Contract.Status = models.ContractStatusSigned

	report := AggregateDeadlines([]models.Campaign{c}, nil, now)

	assert.Empty(t, report.Overdue)
	assert.Empty(t, report.Upcoming)
}

func TestAggregateDeadlinesUpcomingWindow(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	c := campaignWithDefaults("Adidas")
	c.Script.DueDate = "2024-01-08" // 3 days out
	c.Metrics.DueDate = "2024-01-20" // beyond the 7-day window: dropped

	report := AggregateDeadlines([]models.Campaign{c}, nil, now)

	require.Len(t, report.Upcoming, 1)
	assert.Empty(t, report.Overdue)
	assert.Equal(t, "Aprovação Roteiro", report.Upcoming[0].Task)
	assert.Equal(t, 3, report.Upcoming[0].DaysLeft)
}

func TestAggregateDeadlinesBucketExclusivity(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	c := campaignWithDefaults("Puma")
	c.Contract.DueDate = "2024-01-02"
	c.Script.DueDate = "2024-01-07"
	c.Payout.Date = "01/01/2024" // legacy localized form, overdue

	report := AggregateDeadlines([]models.Campaign{c}, nil, now)

	seen := map[string]string{}
	for _, ev := range report.Upcoming {
		seen[ev.Task] = DeadlineUpcoming
	}
	for _, ev := range report.Overdue {
		_, dup := seen[ev.Task]
		assert.False(t, dup, "task %q present in both buckets", ev.Task)
	}
	assert.Len(t, report.Overdue, 2)
	assert.Len(t, report.Upcoming, 1)
}

func TestAggregateDeadlinesSkipsPlaceholders(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	c := campaignWithDefaults("Vivo")
	c.Contract.DueDate = models.DateTBD
	c.Script.DueDate = ""
	c.Posting.Date = "not-a-date"

	report := AggregateDeadlines([]models.Campaign{c}, nil, now)

	assert.Empty(t, report.Upcoming)
	assert.Empty(t, report.Overdue)
}

func TestAggregateDeadlinesContentItems(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	c := campaignWithDefaults("Natura")
	c.Content.Items = []models.ContentItem{
		{ID: "1", Type: "Reels", Platform: "Instagram", Status: "Pendente", PostDate: "2024-01-06"},
		{ID: "2", Type: "Vídeo", Platform: "TikTok", Status: models.ContentStatusPosted, PostDate: "2024-01-06"},
	}

	report := AggregateDeadlines([]models.Campaign{c}, nil, now)

	require.Len(t, report.Upcoming, 1)
	assert.Equal(t, "Post: Reels (Instagram)", report.Upcoming[0].Task)
}

func TestAggregateDeadlinesInvoicePaymentOnlyAfterIssue(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	c := campaignWithDefaults("Boticário")
	c.Invoice.PaymentDueDate = "2024-01-03"
	c.Invoice.Status = models.InvoiceStatusPending

	// While the invoice is still Pendente the payment alert stays quiet.
	report := AggregateDeadlines([]models.Campaign{c}, nil, now)
	assert.Empty(t, report.Overdue)

	c.Invoice.Status = models.InvoiceStatusIssued
	report = AggregateDeadlines([]models.Campaign{c}, nil, now)
	require.Len(t, report.Overdue, 1)
	assert.Equal(t, "Recebimento Cliente", report.Overdue[0].Task)
}

func TestAggregateDeadlinesInfluencerHandle(t *testing.T) {
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	inf := models.Influencer{ID: primitive.NewObjectID(), Name: "Ana", Username: "ana.oficial"}
	c := campaignWithDefaults("Nike")
	c.InfluencerIDs = []primitive.ObjectID{inf.ID}
	c.Contract.DueDate = "2024-01-01"

	report := AggregateDeadlines([]models.Campaign{c}, []models.Influencer{inf}, now)

	require.Len(t, report.Overdue, 1)
	assert.Equal(t, "Nike (@ana.oficial)", report.Overdue[0].Brand)
}

func TestAggregateDeadlinesSortedAndTruncated(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	var campaigns []models.Campaign
	for i := 1; i <= 8; i++ {
		c := campaignWithDefaults(fmt.Sprintf("Brand%d", i))
		c.Contract.DueDate = fmt.Sprintf("2024-01-%02d", 9-i%9) // dates before now, unsorted
		campaigns = append(campaigns, c)
	}

	report := AggregateDeadlines(campaigns, nil, now)

	require.Len(t, report.Overdue, 5)
	for i := 1; i < len(report.Overdue); i++ {
		assert.False(t, report.Overdue[i].Date.Before(report.Overdue[i-1].Date))
	}
}
