package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/models"
)

var DB *gorm.DB

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "equipment_management"),
		getenv("DB_PORT", "5432"),
	)

	var err error
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the handlers map to 409.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool: ", err)
	}
	// bounded pool; a request that cannot get a connection fails with its
	// context deadline instead of queueing forever
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return DB
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Computer{},
		&models.NetworkDevice{},
		&models.OtherDevice{},
		&models.AssignedDevice{},
		&models.ImportedComputer{},
		&models.DeviceHistory{},
	); err != nil {
		return err
	}

	// IP and inventory-number uniqueness backstops. The application-layer
	// checks produce the friendly errors; these indexes close the
	// read-then-write race between concurrent requests.
	stmts := []string{
		fmt.Sprintf(`
		  CREATE UNIQUE INDEX IF NOT EXISTS %s_ip_address_unique
		  ON %s (ip_address)
		  WHERE ip_address IS NOT NULL;
		`, models.ComputerTable, models.ComputerTable),
		fmt.Sprintf(`
		  CREATE UNIQUE INDEX IF NOT EXISTS %s_ip_address_unique
		  ON %s (ip_address);
		`, models.NetworkDeviceTable, models.NetworkDeviceTable),
		fmt.Sprintf(`
		  CREATE UNIQUE INDEX IF NOT EXISTS %s_inventory_number_unique
		  ON %s (inventory_number)
		  WHERE inventory_number IS NOT NULL;
		`, models.ComputerTable, models.ComputerTable),
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
