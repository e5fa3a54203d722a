package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"blogctl/internal/models"
	"blogctl/internal/token"
)

// Posts performs authenticated calls against the remote blog collection.
// Every request carries the stored token as a bearer credential.
type Posts struct {
	baseURL string
	client  *http.Client
	tokens  *token.Store
}

func NewPosts(baseURL string, tokens *token.Store) *Posts {
	return &Posts{baseURL: baseURL, client: http.DefaultClient, tokens: tokens}
}

type postDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListAll fetches the full remote collection.
func (p *Posts) ListAll() ([]models.Post, error) {
	resp, err := p.do(http.MethodGet, "/api/blogs", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var posts []models.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("%w: decoding post list: %v", ErrNetwork, err)
	}
	return posts, nil
}

// Create submits a draft and returns the server-assigned post. Each call
// creates a new post; there is no deduplication.
func (p *Posts) Create(title, content string) (models.Post, error) {
	if title == "" || content == "" {
		return models.Post{}, ErrValidation
	}
	resp, err := p.do(http.MethodPost, "/api/blogs", postDraft{Title: title, Content: content})
	if err != nil {
		return models.Post{}, err
	}
	defer resp.Body.Close()
	return decodePost(resp.Body)
}

// Update edits an existing post by identifier and returns the updated post.
func (p *Posts) Update(id int, title, content string) (models.Post, error) {
	if title == "" || content == "" {
		return models.Post{}, ErrValidation
	}
	resp, err := p.do(http.MethodPatch, fmt.Sprintf("/api/blogs/%d", id), postDraft{Title: title, Content: content})
	if err != nil {
		return models.Post{}, err
	}
	defer resp.Body.Close()
	return decodePost(resp.Body)
}

// Delete removes a post by identifier. Deleting twice is safe: the second
// call fails with ErrNotFound.
func (p *Posts) Delete(id int) error {
	resp, err := p.do(http.MethodDelete, fmt.Sprintf("/api/blogs/%d", id), nil)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func decodePost(r io.Reader) (models.Post, error) {
	var post models.Post
	if err := json.NewDecoder(r).Decode(&post); err != nil {
		return models.Post{}, fmt.Errorf("%w: decoding post: %v", ErrNetwork, err)
	}
	return post, nil
}

// do issues one bearer-authenticated request and maps failure statuses to
// the error taxonomy. An absent token fails before any network I/O.
func (p *Posts) do(method, path string, payload any) (*http.Response, error) {
	tok, err := p.tokens.Read()
	if err != nil {
		return nil, fmt.Errorf("reading token: %w", err)
	}
	if tok == "" {
		return nil, fmt.Errorf("%w: no session token", ErrUnauthorized)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, p.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: server rejected token (status %d)", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotFound
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: server returned status %d", ErrNetwork, resp.StatusCode)
	}
}
