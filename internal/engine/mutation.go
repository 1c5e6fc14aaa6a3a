package engine

import (
	"fmt"

	"github.com/google/uuid"

	"blogql/internal/models"
)

// Mutations validate everything before touching the store, so a failed
// operation leaves the store exactly as it was.

// CreateUser inserts a new user with a fresh id. Fails with ConflictError
// when the email is already taken (exact, case-sensitive match).
func (e *Engine) CreateUser(in models.CreateUserInput) (*models.User, error) {
	if err := e.validate.Struct(in); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid user input: %v", err), Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store.UserByEmail(in.Email) != nil {
		return nil, &ConflictError{Message: "Email taken"}
	}

	u := &models.User{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
		Age:   in.Age,
	}
	e.store.InsertUser(u)
	return u, nil
}

// DeleteUser removes the user and cascades: first every post the user
// authored (each with its attached comments), then every remaining comment
// the user authored on other users' posts.
func (e *Engine) DeleteUser(id string) (*models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	u, ok := e.store.RemoveUser(id)
	if !ok {
		return nil, &NotFoundError{Message: "User not found"}
	}

	var authored []string
	for _, p := range e.store.Posts() {
		if p.Author == id {
			authored = append(authored, p.ID)
		}
	}
	for _, postID := range authored {
		e.removePostComments(postID)
		e.store.RemovePost(postID)
	}

	var remaining []string
	for _, c := range e.store.Comments() {
		if c.Author == id {
			remaining = append(remaining, c.ID)
		}
	}
	for _, commentID := range remaining {
		e.store.RemoveComment(commentID)
	}

	return u, nil
}

// CreatePost inserts a new post with a fresh id. Fails with NotFoundError
// when the author id does not reference an existing user.
func (e *Engine) CreatePost(in models.CreatePostInput) (*models.Post, error) {
	if err := e.validate.Struct(in); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid post input: %v", err), Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store.UserByID(in.Author) == nil {
		return nil, &NotFoundError{Message: "User not found"}
	}

	p := &models.Post{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
		Author:    in.Author,
	}
	e.store.InsertPost(p)
	return p, nil
}

// DeletePost removes the post and every comment attached to it.
func (e *Engine) DeletePost(id string) (*models.Post, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store.PostByID(id) == nil {
		return nil, &NotFoundError{Message: "Post not found"}
	}

	e.removePostComments(id)
	p, _ := e.store.RemovePost(id)
	return p, nil
}

// CreateComment inserts a new comment with a fresh id. The author must exist
// and the post must exist and be currently published; the two conditions are
// not distinguished in the error.
func (e *Engine) CreateComment(in models.CreateCommentInput) (*models.Comment, error) {
	if err := e.validate.Struct(in); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid comment input: %v", err), Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	userExists := e.store.UserByID(in.Author) != nil
	post := e.store.PostByID(in.Post)
	if !userExists || post == nil || !post.Published {
		return nil, &NotFoundError{Message: "Unable to find user and post"}
	}

	c := &models.Comment{
		ID:     uuid.NewString(),
		Text:   in.Text,
		Author: in.Author,
		Post:   in.Post,
	}
	e.store.InsertComment(c)
	return c, nil
}

// DeleteComment removes the comment with the given id.
func (e *Engine) DeleteComment(id string) (*models.Comment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.store.RemoveComment(id)
	if !ok {
		return nil, &NotFoundError{Message: "Comment not found"}
	}
	return c, nil
}

// removePostComments drops every comment attached to the post. Callers hold
// the write lock.
func (e *Engine) removePostComments(postID string) {
	var ids []string
	for _, c := range e.store.Comments() {
		if c.Post == postID {
			ids = append(ids, c.ID)
		}
	}
	for _, id := range ids {
		e.store.RemoveComment(id)
	}
}
