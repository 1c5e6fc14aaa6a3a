package engine

import (
	"fmt"

	"blogql/internal/models"
)

// Relationship accessors. Each takes a record already obtained from this
// engine and resolves its foreign keys against the store. Single-record
// lookups return an IntegrityError when the key dangles; given the mutation
// engine's cascade rules that can only happen if the store was mutated
// around the engine.

// PostAuthor returns the user who authored the post.
func (e *Engine) PostAuthor(p *models.Post) (*models.User, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	u := e.store.UserByID(p.Author)
	if u == nil {
		return nil, &IntegrityError{Message: fmt.Sprintf("post %s references missing user %s", p.ID, p.Author)}
	}
	return u, nil
}

// CommentAuthor returns the user who authored the comment.
func (e *Engine) CommentAuthor(c *models.Comment) (*models.User, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	u := e.store.UserByID(c.Author)
	if u == nil {
		return nil, &IntegrityError{Message: fmt.Sprintf("comment %s references missing user %s", c.ID, c.Author)}
	}
	return u, nil
}

// CommentPost returns the post the comment is attached to.
func (e *Engine) CommentPost(c *models.Comment) (*models.Post, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p := e.store.PostByID(c.Post)
	if p == nil {
		return nil, &IntegrityError{Message: fmt.Sprintf("comment %s references missing post %s", c.ID, c.Post)}
	}
	return p, nil
}

// UserPosts returns the posts authored by the user, in store order.
func (e *Engine) UserPosts(u *models.User) []*models.Post {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var posts []*models.Post
	for _, p := range e.store.Posts() {
		if p.Author == u.ID {
			posts = append(posts, p)
		}
	}
	return posts
}

// UserComments returns the comments authored by the user, in store order.
func (e *Engine) UserComments(u *models.User) []*models.Comment {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var comments []*models.Comment
	for _, c := range e.store.Comments() {
		if c.Author == u.ID {
			comments = append(comments, c)
		}
	}
	return comments
}

// PostComments returns the comments attached to the post, in store order.
func (e *Engine) PostComments(p *models.Post) []*models.Comment {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var comments []*models.Comment
	for _, c := range e.store.Comments() {
		if c.Post == p.ID {
			comments = append(comments, c)
		}
	}
	return comments
}
