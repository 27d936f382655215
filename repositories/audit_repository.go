package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litteagency/litteflux_backend/config"
	"github.com/litteagency/litteflux_backend/models"
)

type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(db *mongo.Client) *AuditRepository {
	return &AuditRepository{
		collection: config.GetCollection(db, "audit_logs"),
	}
}

// Record appends an audit entry. Audit failures must never abort the
// operation being audited, so callers only log the returned error.
func (r *AuditRepository) Record(entityType, entityID, action string, oldValues, newValues interface{}, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entry := models.AuditLogEntry{
		ID:         primitive.NewObjectID(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		OldValues:  oldValues,
		NewValues:  newValues,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// List returns entries newest first, optionally filtered by entity type
// and entity id.
func (r *AuditRepository) List(ctx context.Context, entityType, entityID string, limit int64) ([]models.AuditLogEntry, error) {
	filter := bson.M{}
	if entityType != "" {
		filter["entity_type"] = entityType
	}
	if entityID != "" {
		filter["entity_id"] = entityID
	}

	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.AuditLogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
