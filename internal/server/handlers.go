package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogctl/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if creds.Email != s.adminEmail || !checkPassword(s.adminHash, creds.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := createSession(s.db)
	if err != nil {
		log.Printf("creating session: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := getPosts(s.db)
	if err != nil {
		log.Printf("listing posts: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) CreatePost(w http.ResponseWriter, r *http.Request) {
	var draft models.Post
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if draft.Title == "" || draft.Content == "" {
		writeError(w, http.StatusBadRequest, "title and content are required")
		return
	}

	post, err := createPost(s.db, draft.Title, draft.Content)
	if err != nil {
		log.Printf("creating post: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var draft models.Post
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	post, err := updatePost(s.db, id, draft.Title, draft.Content)
	if err != nil {
		log.Printf("updating post %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	deleted, err := deletePost(s.db, id)
	if err != nil {
		log.Printf("deleting post %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Logout revokes the presented session server-side. Not part of the
// client contract; kept for operators poking the API directly.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := deleteSession(s.db, bearerToken(r)); err != nil {
		log.Printf("deleting session: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
