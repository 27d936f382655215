// models/note.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SystemNote is a shared sticky note on the admin board.
type SystemNote struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Color     string             `json:"color" bson:"color"`
	IsPinned  bool               `json:"isPinned" bson:"is_pinned"`
	CreatedBy string             `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

type SystemNoteRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Color    string `json:"color"`
	IsPinned bool   `json:"isPinned"`
}
