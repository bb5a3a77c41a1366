package main

import (
	"context"
	"log"
	"time"

	"boardinghouse/internal/config"
	"boardinghouse/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "users", bson.D{{Key: "role", Value: 1}}, nil)
	createIndex(ctx, db, "users", bson.D{{Key: "walletTransactions.status", Value: 1}}, nil)

	// Contracts indexes
	createIndex(ctx, db, "contracts", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "contracts", bson.D{
		{Key: "status", Value: 1},
		{Key: "startDate", Value: -1},
	}, nil)

	// Occupancy indexes
	createIndex(ctx, db, "occupancy_records", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "occupancy_records", bson.D{
		{Key: "status", Value: 1},
		{Key: "moveInDate", Value: -1},
	}, nil)

	// Billing invoices indexes
	createIndex(ctx, db, "billing_invoices", bson.D{{Key: "invoiceNumber", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "billing_invoices", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "billing_invoices", bson.D{{Key: "contractId", Value: 1}}, nil)
	createIndex(ctx, db, "billing_invoices", bson.D{
		{Key: "status", Value: 1},
		{Key: "dueDate", Value: 1},
	}, nil)

	// Settings indexes (one document per user)
	createIndex(ctx, db, "home_settings", bson.D{{Key: "userId", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "profile_settings", bson.D{{Key: "userId", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Service requests indexes
	createIndex(ctx, db, "service_requests", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "service_requests", bson.D{
		{Key: "status", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)

	// Refresh tokens indexes
	createIndex(ctx, db, "refresh_tokens", bson.D{{Key: "token", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "refresh_tokens", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "refresh_tokens", bson.D{{Key: "expiresAt", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
