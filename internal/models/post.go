package models

// Post represents a blog post. Author holds the id of the owning User; the
// reverse direction (a user's posts) is always computed, never stored.
type Post struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	Published bool   `json:"published" yaml:"published"`
	Author    string `json:"author" yaml:"author"`
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	Author    string `json:"author" validate:"required"`
}
