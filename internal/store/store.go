package store

import (
	"blogql/internal/models"
)

// Store is the single owner of the three record collections. Collections keep
// insertion order; every read that returns multiple records preserves it.
//
// Store is not safe for concurrent use on its own. The engine serializes all
// access behind one lock, and only the engine (plus process-start seeding)
// may call the mutation primitives.
type Store struct {
	users    []*models.User
	posts    []*models.Post
	comments []*models.Comment
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Users returns the user collection in insertion order. The returned slice is
// the store's own; callers must not mutate it or the records it points to.
func (s *Store) Users() []*models.User {
	return s.users
}

// Posts returns the post collection in insertion order.
func (s *Store) Posts() []*models.Post {
	return s.posts
}

// Comments returns the comment collection in insertion order.
func (s *Store) Comments() []*models.Comment {
	return s.comments
}

// UserByID returns the user with the given id, or nil.
func (s *Store) UserByID(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByEmail returns the user with the given email (exact, case-sensitive
// match), or nil.
func (s *Store) UserByEmail(email string) *models.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// PostByID returns the post with the given id, or nil.
func (s *Store) PostByID(id string) *models.Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CommentByID returns the comment with the given id, or nil.
func (s *Store) CommentByID(id string) *models.Comment {
	for _, c := range s.comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// InsertUser appends a user to the collection.
func (s *Store) InsertUser(u *models.User) {
	s.users = append(s.users, u)
}

// InsertPost appends a post to the collection.
func (s *Store) InsertPost(p *models.Post) {
	s.posts = append(s.posts, p)
}

// InsertComment appends a comment to the collection.
func (s *Store) InsertComment(c *models.Comment) {
	s.comments = append(s.comments, c)
}

// RemoveUser removes the user with the given id, preserving the order of the
// remaining records. Returns the removed user and whether it was found.
func (s *Store) RemoveUser(id string) (*models.User, bool) {
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return u, true
		}
	}
	return nil, false
}

// RemovePost removes the post with the given id.
func (s *Store) RemovePost(id string) (*models.Post, bool) {
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return p, true
		}
	}
	return nil, false
}

// RemoveComment removes the comment with the given id.
func (s *Store) RemoveComment(id string) (*models.Comment, bool) {
	for i, c := range s.comments {
		if c.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return c, true
		}
	}
	return nil, false
}
