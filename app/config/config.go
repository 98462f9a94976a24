package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	AdminPhone    string
	SessionSecret string
	Port          string
}

var AppConfig *Config

// Load reads .env (if present) and environment variables into AppConfig.
// The database connection is opened separately by InitDB.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	AppConfig = &Config{
		AdminPhone:    getenv("ADMIN_PHONE", "9524439288"),
		SessionSecret: getenv("SESSION_SECRET", "ctc-portal-dev-secret"),
		Port:          getenv("PORT", "8080"),
	}
}

func InitDB() {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "ctc_db")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable connect_timeout=60", host, port, user, dbname)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Printf("Check DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME and that database %q exists", dbname)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig.DB = db
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
