package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litteagency/litteflux_backend/models"
)

func testLead() models.Lead {
	return models.Lead{
		ID:             primitive.NewObjectID(),
		Brand:          "Nike",
		CampaignObject: "Air Max Launch",
		InfluencerIDs:  []primitive.ObjectID{primitive.NewObjectID()},
		Phase:          models.LeadPhaseNegotiation,
		Status:         models.LeadStatusWaiting,
		ProposedValue:  5000,
		Value:          5000,
		Scope:          "3 Reels + 2 Stories",
		StartDate:      "2024-02-01",
	}
}

func TestConvertLeadToCampaign(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	lead := testLead()
	result := ConvertLeadToCampaign(lead, ClosureContext{
		ClosedValue: 6000,
		ActorID:     "user-1",
		ActorName:   "Maria Souza",
		LastMessage: "Fechado por WhatsApp",
	}, now)
	require.NotNil(t, result)

	c := result.Campaign
	assert.Equal(t, "Nike - Air Max Launch", c.Title)
	assert.Equal(t, models.CampaignStatusPlanning, c.Status)
	assert.Equal(t, "Nike", c.Brand)
	assert.Equal(t, lead.InfluencerIDs, c.InfluencerIDs)
	assert.Equal(t, "2024-02-01", c.StartDate)
	assert.Equal(t, "3 Reels + 2 Stories", c.Briefing)
	assert.Equal(t, float64(6000), c.Financial.GrossValue)
	assert.Equal(t, "Sim", c.Contract.Required)
	assert.Equal(t, models.ContractStatusPending, c.Contract.Status)
	assert.Len(t, c.Checklist, 2)
	assert.Equal(t, "Minuta de Contrato", c.Checklist[0].Task)
	assert.Equal(t, "Briefing Recebido", c.Checklist[1].Task)
	for _, item := range c.Checklist {
		assert.NotEmpty(t, item.ID)
		assert.False(t, item.Done)
	}
	assert.Contains(t, c.InternalNotes, "R$ 6000")

	// Side-effect descriptors
	assert.Equal(t, models.NotificationCampaignCreated, result.Notification.Type)
	assert.Equal(t, c.ID.Hex(), result.Notification.CampaignID)
	assert.Equal(t, "user-1", result.Notification.UserID)
	assert.Contains(t, result.Notification.Message, "Nike")

	assert.Equal(t, "Alteração para FECHADO", result.TimelineEntry.Action)
	assert.Equal(t, "Maria Souza", result.TimelineEntry.User)
	assert.Equal(t, "Fechado por WhatsApp", result.TimelineEntry.Notes)
	assert.Equal(t, "10/01/2024", result.TimelineEntry.Date)
}

func TestConvertLeadToCampaignIdempotent(t *testing.T) {
	lead := testLead()
	lead.Status = models.LeadStatusClosed

	result := ConvertLeadToCampaign(lead, ClosureContext{ClosedValue: 6000}, time.Now())
	assert.Nil(t, result, "a lead already closed must not generate a second campaign")
}

func TestConvertLeadToCampaignDefaultCompleteness(t *testing.T) {
	// Even a bare lead must yield a campaign with every sub-document status
	// populated.
	result := ConvertLeadToCampaign(models.Lead{Brand: "Acme"}, ClosureContext{}, time.Now())
	require.NotNil(t, result)

	c := result.Campaign
	assert.NotEmpty(t, c.Contract.Status)
	assert.NotEmpty(t, c.Product.Status)
	assert.NotEmpty(t, c.Script.Status)
	assert.NotNil(t, c.Content.Items)
	assert.NotEmpty(t, c.Posting.Status)
	assert.NotEmpty(t, c.Metrics.Status)
	assert.NotEmpty(t, c.Invoice.Status)
	assert.NotEmpty(t, c.Payout.Status)
	assert.NotEmpty(t, c.Financial.WithdrawalStatus)
	assert.NotEmpty(t, c.Financial.ClientPayStatus)
	assert.NotEmpty(t, c.Financial.PayoutStatus)
	assert.NotEmpty(t, c.Financial.InvoiceStatus)
}

func TestConvertLeadToCampaignStartDateFallbacks(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	// Closure context wins over the lead's own start date.
	lead := testLead()
	result := ConvertLeadToCampaign(lead, ClosureContext{StartDate: "2024-04-01"}, now)
	require.NotNil(t, result)
	assert.Equal(t, "2024-04-01", result.Campaign.StartDate)

	// Without either, the conversion date is used.
	lead.StartDate = ""
	result = ConvertLeadToCampaign(lead, ClosureContext{}, now)
	require.NotNil(t, result)
	assert.Equal(t, "2024-03-15", result.Campaign.StartDate)
}

func TestConvertLeadToCampaignValueFallbacks(t *testing.T) {
	lead := testLead()

	// No closed value: the lead's display value carries over.
	result := ConvertLeadToCampaign(lead, ClosureContext{}, time.Now())
	require.NotNil(t, result)
	assert.Equal(t, float64(5000), result.Campaign.Financial.GrossValue)

	// Nothing at all: zero, never negative or NaN.
	result = ConvertLeadToCampaign(models.Lead{Brand: "X"}, ClosureContext{}, time.Now())
	require.NotNil(t, result)
	assert.Zero(t, result.Campaign.Financial.GrossValue)
}

func TestConvertLeadToCampaignDriveLink(t *testing.T) {
	lead := testLead()
	lead.Brand = "Água & Sol"

	result := ConvertLeadToCampaign(lead, ClosureContext{}, time.Now())
	require.NotNil(t, result)
	assert.Equal(t, driveSearchURL+"%C3%81gua+%26+Sol", result.Campaign.DriveLink)
}
