// config/db.go
package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultDBName = "litteflux"

// ConnectDB establishes connection to MongoDB
func ConnectDB() *mongo.Client {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGODB_URI")
	}

	if mongoURI == "" {
		env := os.Getenv("ENV")
		if env == "development" || env == "dev" {
			mongoURI = "mongodb://localhost:27017"
		} else {
			log.Fatal("MONGO_URI or MONGODB_URI environment variable is required for production")
		}
	}

	log.Printf("Connecting to MongoDB at: %s", maskMongoURI(mongoURI))

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("MongoDB ping error:", err)
	}

	log.Println("Connected to MongoDB")

	setupCollections(client)

	return client
}

// GetCollection returns MongoDB collection
func GetCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = defaultDBName
	}
	return client.Database(dbName).Collection(collectionName)
}

// setupCollections ensures all necessary collections and indexes exist
func setupCollections(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = defaultDBName
	}

	db := client.Database(dbName)

	collections := []string{
		"users", "leads", "campaigns", "influencers", "templates",
		"notifications", "audit_logs", "settings", "system_notes",
		"pre_approved_emails",
	}
	for _, collName := range collections {
		db.CreateCollection(ctx, collName)
	}

	// Email index for users collection
	userColl := db.Collection("users")
	emailIndexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := userColl.Indexes().CreateOne(ctx, emailIndexModel)
	if err != nil {
		log.Printf("Error creating email index: %v", err)
	}

	// Settings are a key-value store; one row per key
	settingsColl := db.Collection("settings")
	keyIndexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err = settingsColl.Indexes().CreateOne(ctx, keyIndexModel)
	if err != nil {
		log.Printf("Error creating settings key index: %v", err)
	}

	// Soft-deleted entities are filtered on every list; index the tombstone
	for _, collName := range []string{"leads", "campaigns", "influencers"} {
		coll := db.Collection(collName)
		deletedIndexModel := mongo.IndexModel{
			Keys: bson.D{{Key: "deleted_at", Value: 1}, {Key: "created_at", Value: -1}},
		}
		_, err := coll.Indexes().CreateOne(ctx, deletedIndexModel)
		if err != nil {
			log.Printf("Error creating index on %s: %v", collName, err)
		}
	}

	// Notifications are listed per user, newest first
	notifColl := db.Collection("notifications")
	notifIndexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	}
	_, err = notifColl.Indexes().CreateOne(ctx, notifIndexModel)
	if err != nil {
		log.Printf("Error creating notifications index: %v", err)
	}
}

// maskMongoURI hides credentials when logging the connection string
func maskMongoURI(uri string) string {
	if idx := strings.Index(uri, "@"); idx != -1 {
		if schemeIdx := strings.Index(uri, "://"); schemeIdx != -1 {
			return uri[:schemeIdx+3] + "***:***" + uri[idx:]
		}
	}
	return uri
}
