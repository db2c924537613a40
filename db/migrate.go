package db

import (
	"fmt"
	"log"

	"github.com/achalbajpai/proactively-backend/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.SpeakerProfile{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
