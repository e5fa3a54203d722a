package models

// Post is a blog post as it travels over the wire. The identifier is
// assigned by the server; a draft has none.
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Credentials are used once per login attempt and never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
