package engine

import (
	"strings"

	"blogql/internal/models"
)

// Users returns all users when query is empty, otherwise the users whose
// name contains query case-insensitively. Store order is preserved and the
// result is a fresh slice.
func (e *Engine) Users(query string) []*models.User {
	e.mu.RLock()
	defer e.mu.RUnlock()

	all := e.store.Users()
	if query == "" {
		return append([]*models.User(nil), all...)
	}

	q := strings.ToLower(query)
	users := []*models.User{}
	for _, u := range all {
		if strings.Contains(strings.ToLower(u.Name), q) {
			users = append(users, u)
		}
	}
	return users
}

// Posts returns all posts when query is empty, otherwise the posts whose
// title or body contains query case-insensitively.
func (e *Engine) Posts(query string) []*models.Post {
	e.mu.RLock()
	defer e.mu.RUnlock()

	all := e.store.Posts()
	if query == "" {
		return append([]*models.Post(nil), all...)
	}

	q := strings.ToLower(query)
	posts := []*models.Post{}
	for _, p := range all {
		titleMatch := strings.Contains(strings.ToLower(p.Title), q)
		bodyMatch := strings.Contains(strings.ToLower(p.Body), q)
		if titleMatch || bodyMatch {
			posts = append(posts, p)
		}
	}
	return posts
}

// Comments returns all comments, unfiltered, in store order.
func (e *Engine) Comments() []*models.Comment {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]*models.Comment(nil), e.store.Comments()...)
}

// FirstUser returns the earliest-inserted user. Backs the demo "me" query.
func (e *Engine) FirstUser() (*models.User, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	users := e.store.Users()
	if len(users) == 0 {
		return nil, &NotFoundError{Message: "User not found"}
	}
	return users[0], nil
}

// FirstPost returns the earliest-inserted post. Backs the demo "post" query.
func (e *Engine) FirstPost() (*models.Post, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	posts := e.store.Posts()
	if len(posts) == 0 {
		return nil, &NotFoundError{Message: "Post not found"}
	}
	return posts[0], nil
}
