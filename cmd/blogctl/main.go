package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"blogctl/internal/client"
	"blogctl/internal/models"
	"blogctl/internal/token"
)

// Default server base URL; can override with BLOGCTL_SERVER env var or
// --server flag.
var serverBaseURL = "http://localhost:8080"

type app struct {
	tokens *token.Store
	guard  *client.Guard
	auth   *client.Auth
	posts  *client.Posts
}

func main() {
	godotenv.Load()

	cmd := flag.String("cmd", "list", "Command: login|logout|status|list|create|edit|delete")
	email := flag.String("email", "", "Email (for login)")
	password := flag.String("password", "", "Password (for login)")
	id := flag.Int("id", 0, "Post ID (for edit/delete)")
	title := flag.String("title", "", "Post title (for create/edit)")
	content := flag.String("content", "", "Post content (for create/edit)")
	serverFlag := flag.String("server", "", "Override server base URL (e.g. https://blog.example.com)")
	flag.Parse()

	if env := os.Getenv("BLOGCTL_SERVER"); env != "" {
		serverBaseURL = strings.TrimRight(env, "/")
	}
	if *serverFlag != "" {
		serverBaseURL = strings.TrimRight(*serverFlag, "/")
	}

	tokens, err := token.DefaultStore()
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	a := &app{
		tokens: tokens,
		guard:  client.NewGuard(tokens),
		auth:   client.NewAuth(serverBaseURL, tokens),
		posts:  client.NewPosts(serverBaseURL, tokens),
	}

	switch *cmd {
	case "login":
		err = a.login(*email, *password)
	case "logout":
		err = a.logout()
	case "status":
		err = a.status()
	case "list":
		err = a.list()
	case "create":
		err = a.create(*title, *content)
	case "edit":
		err = a.edit(*id, *title, *content)
	case "delete":
		err = a.remove(*id)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func (a *app) login(email, password string) error {
	// Logging in while already authenticated skips straight to the
	// listing, the way the login view redirects forward.
	if state, err := a.guard.State(); err == nil && state == client.Authenticated {
		fmt.Println("Already logged in.")
		return a.list()
	}

	if email == "" || password == "" {
		return errors.New("--email and --password are required")
	}

	if _, err := a.auth.Login(email, password); err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return a.list()
}

func (a *app) logout() error {
	if err := a.auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *app) status() error {
	state, err := a.guard.State()
	if err != nil {
		return err
	}
	fmt.Printf("Server: %s\nSession: %s\n", serverBaseURL, state)
	return nil
}

func (a *app) list() error {
	if _, err := a.guard.Require(); err != nil {
		return loginHint(err)
	}

	posts, err := a.posts.ListAll()
	if err != nil {
		return a.checkUnauthorized(err)
	}
	printPosts(posts)
	return nil
}

func (a *app) create(title, content string) error {
	if _, err := a.guard.Require(); err != nil {
		return loginHint(err)
	}

	posts, err := a.posts.ListAll()
	if err != nil {
		return a.checkUnauthorized(err)
	}

	created, err := a.posts.Create(title, content)
	if err != nil {
		return a.checkUnauthorized(err)
	}

	printPosts(client.Reconcile(posts, created))
	return nil
}

func (a *app) edit(id int, title, content string) error {
	if id <= 0 {
		return errors.New("--id is required")
	}
	if _, err := a.guard.Require(); err != nil {
		return loginHint(err)
	}

	posts, err := a.posts.ListAll()
	if err != nil {
		return a.checkUnauthorized(err)
	}

	updated, err := a.posts.Update(id, title, content)
	if err != nil {
		return a.checkUnauthorized(err)
	}

	printPosts(client.Reconcile(posts, updated))
	return nil
}

func (a *app) remove(id int) error {
	if id <= 0 {
		return errors.New("--id is required")
	}
	if _, err := a.guard.Require(); err != nil {
		return loginHint(err)
	}

	posts, err := a.posts.ListAll()
	if err != nil {
		return a.checkUnauthorized(err)
	}

	if err := a.posts.Delete(id); err != nil {
		return a.checkUnauthorized(err)
	}

	printPosts(client.RemoveByID(posts, id))
	return nil
}

// checkUnauthorized drops the stored token when the server rejected it,
// so the next command starts anonymous instead of retrying a dead
// session.
func (a *app) checkUnauthorized(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		if clearErr := a.tokens.Clear(); clearErr != nil {
			return fmt.Errorf("%w (clearing stored token also failed: %v)", err, clearErr)
		}
		return fmt.Errorf("%w; log in again with -cmd login", err)
	}
	return err
}

func loginHint(err error) error {
	if errors.Is(err, client.ErrAnonymous) {
		return fmt.Errorf("%w; log in with -cmd login", err)
	}
	return err
}

func printPosts(posts []models.Post) {
	if len(posts) == 0 {
		fmt.Println("No posts.")
		return
	}
	for _, post := range posts {
		fmt.Printf("[%d] %s\n    %s\n", post.ID, post.Title, post.Content)
	}
}
