package main

import (
	"log"

	"courtside/app/config"
	"courtside/app/database"
	"courtside/app/store"
)

// Standalone migration runner for deployments that apply schema changes
// before rolling the server.
func main() {
	log.Println("Starting manual migration...")

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := store.New(db).Init(); err != nil {
		log.Fatal("Failed to initialize record store:", err)
	}

	log.Println("Manual migration completed successfully!")
}
