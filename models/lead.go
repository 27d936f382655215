// models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead statuses. RECUSADO and FECHADO are terminal: once set, no further
// business transition is permitted other than soft deletion.
const (
	LeadStatusWaiting = "AGUARDANDO"
	LeadStatusRefused = "RECUSADO"
	LeadStatusClosed  = "FECHADO"
)

// Lead pipeline phases
const (
	LeadPhaseContact     = "1º CONTATO"
	LeadPhaseQuote       = "ORÇAMENTO"
	LeadPhaseNegotiation = "NEGOCIAÇÃO"
)

// TimelineEntry is an append-only history record shared by leads and campaigns.
type TimelineEntry struct {
	ID     string `json:"id" bson:"id"`
	Date   string `json:"date" bson:"date"`
	Action string `json:"action" bson:"action"`
	User   string `json:"user" bson:"user"`
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Lead is a prospective brand/creator deal, pre-contract.
type Lead struct {
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Brand          string               `json:"brand" bson:"brand"`
	CampaignObject string               `json:"campaignObject" bson:"campaign_object"`
	InfluencerIDs  []primitive.ObjectID `json:"influencerIds" bson:"influencer_ids"`
	Phase          string               `json:"phase" bson:"phase"`
	Status         string               `json:"status" bson:"status"`
	ProposedValue  float64              `json:"proposedValue" bson:"proposed_value"`
	ClosedValue    float64              `json:"closedValue" bson:"closed_value"`
	Value          float64              `json:"value" bson:"value"`
	Responsible    string               `json:"responsible" bson:"responsible"`
	Scope          string               `json:"scope" bson:"scope"`
	StartDate      string               `json:"startDate" bson:"start_date"`
	LastContact    string               `json:"lastContact" bson:"last_contact"`
	LastMessage    string               `json:"lastMessage,omitempty" bson:"last_message,omitempty"`
	Timeline       []TimelineEntry      `json:"timeline" bson:"timeline"`
	CreatedAt      time.Time            `json:"createdAt" bson:"created_at"`
	DeletedAt      *time.Time           `json:"deletedAt,omitempty" bson:"deleted_at,omitempty"`
}

// IsTerminal reports whether the lead status permits no further transition.
func (l *Lead) IsTerminal() bool {
	return l.Status == LeadStatusRefused || l.Status == LeadStatusClosed
}

type CreateLeadRequest struct {
	Brand          string  `json:"brand" validate:"required"`
	CampaignObject string  `json:"campaignObject" validate:"required"`
	InfluencerID   string  `json:"influencerId"`
	Phase          string  `json:"phase"`
	Status         string  `json:"status"`
	ProposedValue  float64 `json:"proposedValue"`
	Scope          string  `json:"scope"`
	StartDate      string  `json:"startDate"`
}

// UpdateLeadStatusRequest carries the status transition plus the optional
// closure context used when the lead is won.
type UpdateLeadStatusRequest struct {
	Status      string  `json:"status" validate:"required"`
	StartDate   string  `json:"startDate,omitempty"`
	ClosedValue float64 `json:"closedValue,omitempty"`
	LastMessage string  `json:"lastMessage,omitempty"`
}
