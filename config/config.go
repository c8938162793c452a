package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pollsite/models"
)

// DB is the global database instance
var DB *gorm.DB

// SessionSecret signs the session cookie tokens.
var SessionSecret []byte

// VoteRequiresAuth controls whether casting a vote needs a logged-in
// session. The route table ships two plausible answers, so it is an explicit
// setting rather than a hardcoded choice. Defaults to true.
var VoteRequiresAuth bool

func LoadConfig() {
	// Load .env file if present; deployments may set env vars directly
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	SessionSecret = []byte(os.Getenv("SESSION_SECRET"))
	if len(SessionSecret) == 0 {
		log.Fatalf("Session secret key not set in environment")
	}

	VoteRequiresAuth = os.Getenv("VOTE_REQUIRES_AUTH") != "false"
}

func ConnectDatabase() {
	// Load DB config from environment variables
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	var errDB error
	DB, errDB = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if errDB != nil {
		log.Fatalf("Error connecting to database: %v", errDB)
	}

	log.Println("Database connected successfully")

	if err := DB.AutoMigrate(&models.User{}, &models.Question{}, &models.Choice{}, &models.Comment{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	log.Println("Database migrated successfully")
}
