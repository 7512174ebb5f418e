package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
}

// Migrate creates the schema. On postgres it also installs the partial
// unique index that enforces at most one active subscription per account
// even when two writers interleave.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.Payment{},
		&db_models.Referral{},
		&db_models.Notification{},
		&db_models.Ticket{},
		&db_models.SpeedTest{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		return db.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_one_active
			 ON subscriptions (account_id)
			 WHERE status = 'active' AND deleted_at IS NULL`,
		).Error
	}

	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
