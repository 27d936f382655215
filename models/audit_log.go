// models/audit_log.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit entity types
const (
	AuditEntityLead          = "LEAD"
	AuditEntityCampaign      = "CAMPAIGN"
	AuditEntityInfluencer    = "INFLUENCER"
	AuditEntityFinanceConfig = "FINANCE_CONFIG"
	AuditEntityAdjustment    = "FINNA_ADJUSTMENT"
	AuditEntityProfile       = "PROFILE"
)

// AuditLogEntry is append-only; the application only ever inserts and lists.
type AuditLogEntry struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EntityType string             `json:"entityType" bson:"entity_type"`
	EntityID   string             `json:"entityId" bson:"entity_id"`
	Action     string             `json:"action" bson:"action"`
	OldValues  interface{}        `json:"oldValues,omitempty" bson:"old_values,omitempty"`
	NewValues  interface{}        `json:"newValues,omitempty" bson:"new_values,omitempty"`
	UserID     string             `json:"userId,omitempty" bson:"user_id,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
}
