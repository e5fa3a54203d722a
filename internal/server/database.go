// Package server implements blogd, the development API server blogctl
// talks to.
package server

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"blogctl/internal/models"
)

func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		expires_at DATETIME NOT NULL
	);`

	_, err := db.Exec(schema)
	return err
}

func SeedDB(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	posts := []models.Post{
		{Title: "Hey now", Content: "Everything is awesome!"},
		{Title: "What's the deal?", Content: "What is happening?!"},
		{Title: "Football", Content: "Niners and stuff."},
	}

	stmt := "INSERT INTO posts (title, content) VALUES (?, ?)"
	for _, post := range posts {
		if _, err := db.Exec(stmt, post.Title, post.Content); err != nil {
			return err
		}
	}

	return nil
}
