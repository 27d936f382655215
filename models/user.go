// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleAdmin      = "ADMINISTRADOR"
	RoleInfluencer = "INFLUENCIADOR"
	RoleGuest      = "CONVIDADO"
)

// User account statuses
const (
	UserStatusPending  = "PENDENTE"
	UserStatusApproved = "APROVADO"
	UserStatusBlocked  = "BLOQUEADO"
)

// User model
type User struct {
	ID                primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Email             string              `json:"email" bson:"email"`
	Password          string              `json:"password,omitempty" bson:"password"`
	FullName          string              `json:"fullName" bson:"fullName"`
	Role              string              `json:"role" bson:"role"`     // "ADMINISTRADOR", "INFLUENCIADOR", "CONVIDADO"
	Status            string              `json:"status" bson:"status"` // "PENDENTE", "APROVADO", "BLOQUEADO"
	AvatarURL         string              `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	InfluencerID      *primitive.ObjectID `json:"influencerId,omitempty" bson:"influencerId,omitempty"`
	ResetOTP          string              `json:"-" bson:"resetOTP,omitempty"`
	ResetOTPExpiresAt time.Time           `json:"-" bson:"resetOTPExpiresAt,omitempty"`
	LastActivityAt    time.Time           `json:"lastActivityAt" bson:"lastActivityAt"`
	CreatedAt         time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// PreApprovedEmail lets an admin register an email with a role before the
// account exists; matching signups skip the manual approval step.
type PreApprovedEmail struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Role      string             `json:"role" bson:"role"`
	CreatedBy string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Response is the standard API response envelope
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
