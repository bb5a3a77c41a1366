package main

import (
	"context"
	"log"
	"time"

	"boardinghouse/internal/config"
	"boardinghouse/internal/database"
	"boardinghouse/internal/models"
	"boardinghouse/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	// Seed users (admin, owner, and two clients with wallets)
	userIDs := seedUsers(ctx, mongoDB.Database)

	// Seed contracts and dependent records for the client users
	contractIDs := seedContracts(ctx, mongoDB.Database, userIDs)
	seedOccupancy(ctx, mongoDB.Database, userIDs)
	seedInvoices(ctx, mongoDB.Database, userIDs, contractIDs)
	seedServiceRequests(ctx, mongoDB.Database, userIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	adminPassword, _ := auth.HashPassword("admin123")
	ownerPassword, _ := auth.HashPassword("owner123")
	clientPassword, _ := auth.HashPassword("password123")

	now := time.Now()
	settledAt := now.Add(-20 * 24 * time.Hour)

	users := []interface{}{
		models.User{
			Email:     "admin@boardinghouse.local",
			Password:  adminPassword,
			Role:      models.RoleAdmin,
			FirstName: "Maria",
			LastName:  "Santos",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.User{
			Email:         "owner@boardinghouse.local",
			Password:      ownerPassword,
			Role:          models.RoleOwner,
			FirstName:     "Ramon",
			LastName:      "Villanueva",
			ContactNumber: "+63 917 555 0101",
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		models.User{
			Email:         "juan@example.com",
			Password:      clientPassword,
			Role:          models.RoleClient,
			FirstName:     "Juan",
			LastName:      "Dela Cruz",
			ContactNumber: "+63 912 345 6789",
			IsActive:      true,
			WalletBalance: 1500,
			WalletTransactions: []models.Transaction{
				{
					ID:        "TX-5E1A9B3C",
					Type:      models.TransactionTopUp,
					Amount:    2000,
					Reference: "GCash top-up",
					Status:    models.StatusSuccess,
					CreatedAt: settledAt.Add(-time.Hour),
					SettledAt: &settledAt,
				},
				{
					ID:        "TX-90D4C2AF",
					Type:      models.TransactionPayment,
					Amount:    500,
					Reference: "Laundry service",
					Status:    models.StatusSuccess,
					CreatedAt: settledAt,
					SettledAt: &settledAt,
				},
			},
			CreatedAt: now.Add(-30 * 24 * time.Hour),
			UpdatedAt: now,
		},
		models.User{
			Email:         "ana@example.com",
			Password:      clientPassword,
			Role:          models.RoleClient,
			FirstName:     "Ana",
			LastName:      "Reyes",
			ContactNumber: "+63 915 222 3344",
			IsActive:      true,
			WalletBalance: 0,
			CreatedAt:     now.Add(-10 * 24 * time.Hour),
			UpdatedAt:     now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedContracts(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("contracts")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear contracts: %v", err)
	}

	now := time.Now()
	juanStart := now.Add(-30 * 24 * time.Hour)
	juanEnd := juanStart.Add(365 * 24 * time.Hour)
	anaStart := now.Add(7 * 24 * time.Hour)

	contracts := []interface{}{
		models.Contract{
			UserID:       userIDs[2],
			PropertyName: "Dorm A",
			RoomNumber:   "204",
			StartDate:    juanStart,
			EndDate:      &juanEnd,
			RentAmount:   4500,
			Currency:     "PHP",
			Status:       models.ContractActive,
			Terms:        "One month advance, one month deposit. Rent due on the 1st.",
			CreatedAt:    juanStart,
			UpdatedAt:    juanStart,
		},
		models.Contract{
			UserID:       userIDs[3],
			PropertyName: "Dorm B",
			RoomNumber:   "101",
			StartDate:    anaStart,
			RentAmount:   5200,
			Currency:     "PHP",
			Status:       models.ContractPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	result, err := collection.InsertMany(ctx, contracts)
	if err != nil {
		log.Fatalf("Failed to seed contracts: %v", err)
	}

	log.Printf("Seeded %d contracts", len(result.InsertedIDs))

	var contractIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		contractIDs = append(contractIDs, id.(primitive.ObjectID))
	}

	return contractIDs
}

func seedOccupancy(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) {
	collection := db.Collection("occupancy_records")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear occupancy records: %v", err)
	}

	now := time.Now()
	juanMoveIn := now.Add(-30 * 24 * time.Hour)
	anaMoveIn := now.Add(7 * 24 * time.Hour)

	records := []interface{}{
		models.OccupancyRecord{
			UserID:       userIDs[2],
			PropertyName: "Dorm A",
			RoomNumber:   "204",
			MoveInDate:   juanMoveIn,
			Status:       models.OccupancyCheckedIn,
			Notes:        "Keys issued at move-in.",
			CreatedAt:    juanMoveIn,
			UpdatedAt:    juanMoveIn,
		},
		models.OccupancyRecord{
			UserID:       userIDs[3],
			PropertyName: "Dorm B",
			RoomNumber:   "101",
			MoveInDate:   anaMoveIn,
			Status:       models.OccupancyPlanned,
			Notes:        "Reservation from website.",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	result, err := collection.InsertMany(ctx, records)
	if err != nil {
		log.Fatalf("Failed to seed occupancy records: %v", err)
	}

	log.Printf("Seeded %d occupancy records", len(result.InsertedIDs))
}

func seedInvoices(ctx context.Context, db *mongo.Database, userIDs, contractIDs []primitive.ObjectID) {
	collection := db.Collection("billing_invoices")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear billing invoices: %v", err)
	}

	now := time.Now()
	issuedAt := now.Add(-15 * 24 * time.Hour)
	paidAt := issuedAt.Add(3 * 24 * time.Hour)

	invoices := []interface{}{
		models.BillingInvoice{
			UserID:        userIDs[2],
			ContractID:    &contractIDs[0],
			InvoiceNumber: "INV-8F3A21C4",
			Items: []models.InvoiceItem{
				{Label: "Monthly rent", Amount: 4500},
				{Label: "Electricity share", Amount: 350},
			},
			AmountDue: 4850,
			Currency:  "PHP",
			DueDate:   issuedAt.Add(14 * 24 * time.Hour),
			Status:    models.InvoicePaid,
			IssuedAt:  issuedAt,
			PaidAt:    &paidAt,
			CreatedAt: issuedAt,
			UpdatedAt: paidAt,
		},
		models.BillingInvoice{
			UserID:        userIDs[2],
			ContractID:    &contractIDs[0],
			InvoiceNumber: "INV-2B7D09E1",
			Items: []models.InvoiceItem{
				{Label: "Monthly rent", Amount: 4500},
			},
			AmountDue: 4500,
			Currency:  "PHP",
			DueDate:   now.Add(14 * 24 * time.Hour),
			Status:    models.InvoiceIssued,
			IssuedAt:  now,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, invoices)
	if err != nil {
		log.Fatalf("Failed to seed billing invoices: %v", err)
	}

	log.Printf("Seeded %d billing invoices", len(result.InsertedIDs))
}

func seedServiceRequests(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) {
	collection := db.Collection("service_requests")

	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear service requests: %v", err)
	}

	now := time.Now()

	requests := []interface{}{
		models.ServiceRequest{
			UserID:      userIDs[2],
			Category:    "maintenance",
			Subject:     "Leaking faucet",
			Description: "The bathroom faucet in room 204 drips constantly.",
			Priority:    "medium",
			Status:      models.ServiceRequestOpen,
			CreatedAt:   now.Add(-2 * 24 * time.Hour),
			UpdatedAt:   now.Add(-2 * 24 * time.Hour),
		},
		models.ServiceRequest{
			UserID:      userIDs[2],
			Category:    "cleaning",
			Subject:     "Extra cleaning before visit",
			Description: "Family visiting this weekend, requesting a deep clean.",
			Priority:    "low",
			Status:      models.ServiceRequestResolved,
			CreatedAt:   now.Add(-10 * 24 * time.Hour),
			UpdatedAt:   now.Add(-8 * 24 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, requests)
	if err != nil {
		log.Fatalf("Failed to seed service requests: %v", err)
	}

	log.Printf("Seeded %d service requests", len(result.InsertedIDs))
}
