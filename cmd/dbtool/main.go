// Command dbtool initializes the database schema and optionally seeds demo
// parcels. Intended for local development and CI environments where the
// application's auto-migration is not available.
package main

import (
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	log.Println("Initializing database schema...")
	if err := initSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if os.Getenv("SEED_DEMO") == "true" {
		log.Println("Seeding demo data...")
		if err := seedDemo(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("Seeding complete.")
	}
}

// initSchema creates the tables the application expects. The columns mirror
// the GORM models used by the repositories.
func initSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS parcels (
			tracking_number VARCHAR(19) PRIMARY KEY,
			sender_id TEXT,
			recipient_name TEXT,
			recipient_address TEXT,
			weight_kg DOUBLE PRECISION,
			length_cm DOUBLE PRECISION,
			width_cm DOUBLE PRECISION,
			height_cm DOUBLE PRECISION,
			declared_value DOUBLE PRECISION,
			distance_km DOUBLE PRECISION,
			content_description TEXT,
			service_tier BIGINT,
			status BIGINT,
			markers TEXT,
			created_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_parcels_sender_id ON parcels (sender_id)`,
		`CREATE INDEX IF NOT EXISTS idx_parcels_status ON parcels (status)`,
		`CREATE TABLE IF NOT EXISTS tracking_events (
			id UUID PRIMARY KEY,
			tracking_number VARCHAR(19),
			status BIGINT,
			location TEXT,
			vehicle_id TEXT,
			warehouse_id TEXT,
			operator TEXT,
			notes TEXT,
			timestamp TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tracking_events_tracking_number ON tracking_events (tracking_number)`,
		`CREATE INDEX IF NOT EXISTS idx_tracking_events_timestamp ON tracking_events (timestamp)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedDemo inserts one registered parcel with its creation event so a fresh
// environment has something to query.
func seedDemo(db *sql.DB) error {
	now := time.Now().UTC()
	trackingNumber := "TRK" + now.Format("20060102") + "00000001"

	_, err := db.Exec(
		`INSERT INTO parcels (
			tracking_number, sender_id, recipient_name, recipient_address,
			weight_kg, length_cm, width_cm, height_cm, declared_value,
			distance_km, content_description, service_tier, status, markers, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (tracking_number) DO NOTHING`,
		trackingNumber, "demo-customer", "Jane Doe", "1 Main St",
		2.5, 30.0, 20.0, 10.0, 120.0,
		0.0, "books", 1, 1, "", now,
	)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO tracking_events (
			id, tracking_number, status, location, vehicle_id,
			warehouse_id, operator, notes, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`,
		uuid.New(), trackingNumber, 1, "Origin facility", "",
		"", "dbtool", "seeded parcel", now,
	)
	return err
}
