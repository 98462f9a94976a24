package main

import (
	"log"

	"github.com/Vikasthangavel/CTC/app/config"
	"github.com/Vikasthangavel/CTC/app/database"
)

// Runs the schema migrations without starting the web server. Useful for
// preparing a fresh database before first deploy.
func main() {
	log.Println("Starting manual migration...")

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Manual migration completed successfully!")
}
