// models/template.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template is a reusable checklist blueprint for new campaigns.
type Template struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Tasks       []string           `json:"tasks" bson:"tasks"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
}

type TemplateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`
}
