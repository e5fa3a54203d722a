package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// NewRouter wires the API routes, protected ones behind the bearer
// middleware.
func (s *Server) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/api/auth/login", s.Login).Methods("POST")
	r.HandleFunc("/api/auth/logout", s.requireAuth(s.Logout)).Methods("POST")
	r.HandleFunc("/api/blogs", s.requireAuth(s.ListPosts)).Methods("GET")
	r.HandleFunc("/api/blogs", s.requireAuth(s.CreatePost)).Methods("POST")
	r.HandleFunc("/api/blogs/{id}", s.requireAuth(s.UpdatePost)).Methods("PATCH")
	r.HandleFunc("/api/blogs/{id}", s.requireAuth(s.DeletePost)).Methods("DELETE")

	return r
}

// requestLogger logs each request under a correlation id.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%s)", id, r.Method, r.URL.Path, time.Since(start))
	})
}
