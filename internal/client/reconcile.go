package client

import "blogctl/internal/models"

// Reconcile merges one created or edited post back into the listing. The
// caller does not know whether the interaction that produced the post was
// a create or an edit, so the merge is decided by identifier alone: a
// matching entry is replaced in place, anything else is appended.
func Reconcile(posts []models.Post, incoming models.Post) []models.Post {
	for i, post := range posts {
		if post.ID == incoming.ID {
			posts[i] = incoming
			return posts
		}
	}
	return append(posts, incoming)
}

// RemoveByID drops every entry with the given identifier. Removing an
// absent identifier is a no-op to tolerate races between interactions.
func RemoveByID(posts []models.Post, id int) []models.Post {
	kept := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	return kept
}
