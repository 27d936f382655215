// services/conversion.go
package services

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litteagency/litteflux_backend/models"
	"github.com/litteagency/litteflux_backend/utils"
)

const driveSearchURL = "https://drive.google.com/drive/u/0/search?q="

// ClosureContext is the optional data supplied by the operator when a lead is
// marked as won.
type ClosureContext struct {
	StartDate   string
	ClosedValue float64
	LastMessage string
	ActorID     string
	ActorName   string
}

// ConversionResult bundles the generated campaign with the side-effect
// descriptors the caller must persist. The engine itself performs no I/O.
type ConversionResult struct {
	Campaign     models.Campaign
	Notification models.NotificationRequest
	// TimelineEntry is appended to the lead's history by the caller.
	TimelineEntry models.TimelineEntry
}

// ConvertLeadToCampaign derives a planning-stage campaign from a lead being
// closed. Returns nil when the lead is already FECHADO: only the first
// closure generates a campaign, which keeps retried status updates from
// creating duplicates.
func ConvertLeadToCampaign(lead models.Lead, closure ClosureContext, now time.Time) *ConversionResult {
	if lead.Status == models.LeadStatusClosed {
		return nil
	}

	startDate := closure.StartDate
	if startDate == "" {
		startDate = lead.StartDate
	}
	if startDate == "" {
		startDate = utils.FormatDateISO(now)
	}
	startDate = utils.NormalizeDate(startDate)

	closedValue := closure.ClosedValue
	if closedValue == 0 {
		closedValue = lead.ProposedValue
	}

	grossValue := closure.ClosedValue
	if grossValue == 0 {
		grossValue = lead.Value
	}
	if grossValue == 0 {
		grossValue = lead.ProposedValue
	}

	nowISO := now.Format(time.RFC3339)

	financial := models.DefaultFinancial()
	financial.GrossValue = grossValue
	financial.CreatedAt = nowISO
	financial.UpdatedAt = nowISO

	campaign := models.Campaign{
		ID:            primitive.NewObjectID(),
		Title:         fmt.Sprintf("%s - %s", lead.Brand, lead.CampaignObject),
		Brand:         lead.Brand,
		InfluencerIDs: lead.InfluencerIDs,
		Status:        models.CampaignStatusPlanning,
		StartDate:     startDate,
		Briefing:      lead.Scope,
		// Best-effort placeholder: a Drive search scoped to the brand, not a
		// real folder.
		DriveLink:     driveSearchURL + url.QueryEscape(lead.Brand),
		InternalNotes: fmt.Sprintf("Campanha gerada via conversão de prospecção. Valor fechado: R$ %v", closedValue),
		Contract:      models.DefaultContract(),
		Product:       models.DefaultProduct(),
		Script:        models.DefaultScript(),
		Content:       models.DefaultContent(),
		Posting:       models.DefaultPosting(),
		Metrics:       models.DefaultMetrics(),
		Invoice:       models.DefaultInvoice(),
		Payout:        models.DefaultPayout(),
		Financial:     financial,
		Timeline:      []models.TimelineEntry{},
		Checklist: []models.ChecklistItem{
			{ID: uuid.NewString(), Module: "Contrato", Task: "Minuta de Contrato", Done: false},
			{ID: uuid.NewString(), Module: "Roteiro", Task: "Briefing Recebido", Done: false},
		},
		CreatedAt: now,
	}

	actorName := closure.ActorName
	if actorName == "" {
		actorName = "Admin"
	}

	return &ConversionResult{
		Campaign: campaign,
		Notification: models.NotificationRequest{
			UserID:     closure.ActorID,
			CampaignID: campaign.ID.Hex(),
			Title:      "Nova Campanha Gerada",
			Message:    fmt.Sprintf("O andamento %s foi convertido em campanha.", lead.Brand),
			Type:       models.NotificationCampaignCreated,
			EventDate:  nowISO,
		},
		TimelineEntry: models.TimelineEntry{
			ID:     uuid.NewString(),
			Date:   utils.FormatDateBR(now),
			Action: "Alteração para " + models.LeadStatusClosed,
			User:   actorName,
			Notes:  closure.LastMessage,
		},
	}
}
