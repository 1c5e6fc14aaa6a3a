package models

// Comment represents a comment on a post. Author and Post are foreign keys
// holding the ids of the referenced User and Post.
type Comment struct {
	ID     string `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author" yaml:"author"`
	Post   string `json:"post" yaml:"post"`
}

// CreateCommentInput carries the fields for a new comment.
type CreateCommentInput struct {
	Text   string `json:"text" validate:"required"`
	Author string `json:"author" validate:"required"`
	Post   string `json:"post" validate:"required"`
}
