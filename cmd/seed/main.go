package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/yudhapratama/portfolio-api/config"
	"github.com/yudhapratama/portfolio-api/pkg/helpers"
)

// Seeds the admin account and the two singleton rows so the dashboard and
// the public site have something to render on first boot.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := getenvDefault("SEED_ADMIN_USERNAME", "admin")
	password := getenvDefault("SEED_ADMIN_PASSWORD", "changeme123")

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO admin_users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, username, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	fmt.Printf("seeded admin user: id=%s username=%s\n", id, username)

	// Hero singleton: insert only when the table is empty.
	var heroCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM hero_content`).Scan(&heroCount); err != nil {
		log.Fatalf("failed to count hero rows: %v", err)
	}
	if heroCount == 0 {
		if _, err := db.Exec(`
			INSERT INTO hero_content (subtitle, title, description, image_url)
			VALUES ('Full-Stack Developer', 'Hi, I build things for the web',
			        'Welcome to my portfolio. Update this text from the admin dashboard.', '')
		`); err != nil {
			log.Fatalf("failed to seed hero content: %v", err)
		}
		fmt.Println("seeded hero content")
	}

	var contactCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM contact_info`).Scan(&contactCount); err != nil {
		log.Fatalf("failed to count contact rows: %v", err)
	}
	if contactCount == 0 {
		if _, err := db.Exec(`
			INSERT INTO contact_info (email, phone, location)
			VALUES ('hello@example.com', '+1 555 000 0000', 'Jakarta, Indonesia')
		`); err != nil {
			log.Fatalf("failed to seed contact info: %v", err)
		}
		fmt.Println("seeded contact info")
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
