package server

import (
	"database/sql"

	"blogctl/internal/models"
)

func getPosts(db *sql.DB) ([]models.Post, error) {
	rows, err := db.Query("SELECT id, title, content FROM posts ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func getPostByID(db *sql.DB, id int) (*models.Post, error) {
	row := db.QueryRow("SELECT id, title, content FROM posts WHERE id = ?", id)

	var post models.Post
	err := row.Scan(&post.ID, &post.Title, &post.Content)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func createPost(db *sql.DB, title, content string) (*models.Post, error) {
	result, err := db.Exec("INSERT INTO posts (title, content) VALUES (?, ?)", title, content)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return getPostByID(db, int(id))
}

// updatePost applies a partial edit: an empty field keeps its prior
// value. Returns nil when the id does not exist.
func updatePost(db *sql.DB, id int, title, content string) (*models.Post, error) {
	post, err := getPostByID(db, id)
	if err != nil || post == nil {
		return nil, err
	}

	if title == "" {
		title = post.Title
	}
	if content == "" {
		content = post.Content
	}

	_, err = db.Exec("UPDATE posts SET title = ?, content = ? WHERE id = ?", title, content, id)
	if err != nil {
		return nil, err
	}
	return getPostByID(db, id)
}

// deletePost reports whether a row was actually removed.
func deletePost(db *sql.DB, id int) (bool, error) {
	result, err := db.Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
