// models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types
const (
	NotificationCampaignCreated = "CAMPAIGN_CREATED"
)

// Notification model
type Notification struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"user_id"`         // The user who receives the notification
	CampaignID primitive.ObjectID `json:"campaignId" bson:"campaign_id"` // Campaign the notification refers to
	Title      string             `json:"title" bson:"title"`
	Message    string             `json:"message" bson:"message"`
	Type       string             `json:"type" bson:"type"`
	EventDate  string             `json:"eventDate,omitempty" bson:"event_date,omitempty"`
	IsRead     bool               `json:"isRead" bson:"is_read"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
}

// NotificationRequest is a side-effect descriptor produced by the conversion
// engine; the caller persists it and pushes it over the websocket hub.
type NotificationRequest struct {
	UserID     string `json:"user_id"`
	CampaignID string `json:"campaign_id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	EventDate  string `json:"event_date"`
}
