package migration

import (
	"KhajaGhar-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CartLine{}); err != nil {
		log.Fatalf("Error migrating cart line database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
