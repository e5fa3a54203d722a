package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"blogctl/internal/server"
)

func main() {
	godotenv.Load()

	addr := os.Getenv("BLOGD_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dbPath := os.Getenv("BLOGD_DB")
	if dbPath == "" {
		dbPath = "blog.db"
	}

	db, err := server.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err = server.InitDB(db); err != nil {
		log.Fatalf("initializing database: %v", err)
	}

	if err = server.SeedDB(db); err != nil {
		log.Fatalf("seeding database: %v", err)
	}

	if err = server.CleanupExpiredSessions(db); err != nil {
		log.Printf("cleaning up expired sessions: %v", err)
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			if err := server.CleanupExpiredSessions(db); err != nil {
				log.Printf("cleaning up expired sessions: %v", err)
			}
		}
	}()

	srv := server.New(db)

	log.Printf("blogd listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, srv.NewRouter()))
}
