// Command seeduser creates or resets the admin employee.
// Usage: go run ./cmd/seeduser [-username admin] [-password 123456] [-name Administrator]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"menuadmin/internal/config"
	"menuadmin/internal/infra"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "admin", "login name")
	password := flag.String("password", "123456", "plain-text password, stored as bcrypt hash")
	name := flag.String("name", "Administrator", "display name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// ON CONFLICT works on both postgres and sqlite.
	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO employee (name, username, password, status, create_time, update_time)
		VALUES (?, ?, ?, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (username) DO UPDATE
		SET password = EXCLUDED.password,
		    name = EXCLUDED.name,
		    status = 1,
		    update_time = CURRENT_TIMESTAMP
	`, *name, *username, string(hash))

	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("employee %q created/updated\n", *username)
}
