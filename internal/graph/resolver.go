package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"blogql/internal/engine"
	"blogql/internal/models"
)

// Resolver is the root resolver. It holds the engine and delegates every
// operation to it; no logic of its own beyond type conversion.
type Resolver struct {
	engine *engine.Engine
}

// NewResolver creates the root resolver over the given engine.
func NewResolver(e *engine.Engine) *Resolver {
	return &Resolver{engine: e}
}

// Users resolves users(query: String).
func (r *Resolver) Users(args struct{ Query *string }) []*UserResolver {
	query := ""
	if args.Query != nil {
		query = *args.Query
	}
	users := r.engine.Users(query)
	resolvers := make([]*UserResolver, 0, len(users))
	for _, u := range users {
		resolvers = append(resolvers, &UserResolver{engine: r.engine, user: u})
	}
	return resolvers
}

// Posts resolves posts(query: String).
func (r *Resolver) Posts(args struct{ Query *string }) []*PostResolver {
	query := ""
	if args.Query != nil {
		query = *args.Query
	}
	posts := r.engine.Posts(query)
	resolvers := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &PostResolver{engine: r.engine, post: p})
	}
	return resolvers
}

// Comments resolves comments.
func (r *Resolver) Comments() []*CommentResolver {
	comments := r.engine.Comments()
	resolvers := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		resolvers = append(resolvers, &CommentResolver{engine: r.engine, comment: c})
	}
	return resolvers
}

// Me resolves the demo me query: the first seeded user.
func (r *Resolver) Me() (*UserResolver, error) {
	u, err := r.engine.FirstUser()
	if err != nil {
		return nil, err
	}
	return &UserResolver{engine: r.engine, user: u}, nil
}

// Post resolves the demo post query: the first seeded post.
func (r *Resolver) Post() (*PostResolver, error) {
	p, err := r.engine.FirstPost()
	if err != nil {
		return nil, err
	}
	return &PostResolver{engine: r.engine, post: p}, nil
}

type createUserInput struct {
	Name  string
	Email string
	Age   *int32
}

// CreateUser resolves createUser(data: CreateUserInput!).
func (r *Resolver) CreateUser(args struct{ Data createUserInput }) (*UserResolver, error) {
	in := models.CreateUserInput{
		Name:  args.Data.Name,
		Email: args.Data.Email,
	}
	if args.Data.Age != nil {
		age := int(*args.Data.Age)
		in.Age = &age
	}
	u, err := r.engine.CreateUser(in)
	if err != nil {
		return nil, err
	}
	return &UserResolver{engine: r.engine, user: u}, nil
}

// DeleteUser resolves deleteUser(id: ID!).
func (r *Resolver) DeleteUser(args struct{ ID graphql.ID }) (*UserResolver, error) {
	u, err := r.engine.DeleteUser(string(args.ID))
	if err != nil {
		return nil, err
	}
	return &UserResolver{engine: r.engine, user: u}, nil
}

type createPostInput struct {
	Title     string
	Body      string
	Published bool
	Author    graphql.ID
}

// CreatePost resolves createPost(data: CreatePostInput!).
func (r *Resolver) CreatePost(args struct{ Data createPostInput }) (*PostResolver, error) {
	p, err := r.engine.CreatePost(models.CreatePostInput{
		Title:     args.Data.Title,
		Body:      args.Data.Body,
		Published: args.Data.Published,
		Author:    string(args.Data.Author),
	})
	if err != nil {
		return nil, err
	}
	return &PostResolver{engine: r.engine, post: p}, nil
}

// DeletePost resolves deletePost(id: ID!).
func (r *Resolver) DeletePost(args struct{ ID graphql.ID }) (*PostResolver, error) {
	p, err := r.engine.DeletePost(string(args.ID))
	if err != nil {
		return nil, err
	}
	return &PostResolver{engine: r.engine, post: p}, nil
}

type createCommentInput struct {
	Text   string
	Author graphql.ID
	Post   graphql.ID
}

// CreateComment resolves createComment(data: CreateCommentInput!).
func (r *Resolver) CreateComment(args struct{ Data createCommentInput }) (*CommentResolver, error) {
	c, err := r.engine.CreateComment(models.CreateCommentInput{
		Text:   args.Data.Text,
		Author: string(args.Data.Author),
		Post:   string(args.Data.Post),
	})
	if err != nil {
		return nil, err
	}
	return &CommentResolver{engine: r.engine, comment: c}, nil
}

// DeleteComment resolves deleteComment(id: ID!).
func (r *Resolver) DeleteComment(args struct{ ID graphql.ID }) (*CommentResolver, error) {
	c, err := r.engine.DeleteComment(string(args.ID))
	if err != nil {
		return nil, err
	}
	return &CommentResolver{engine: r.engine, comment: c}, nil
}

// UserResolver resolves the User type. Relation fields go back through the
// engine, so relationships are computed lazily at field-access time.
type UserResolver struct {
	engine *engine.Engine
	user   *models.User
}

func (r *UserResolver) ID() graphql.ID { return graphql.ID(r.user.ID) }
func (r *UserResolver) Name() string   { return r.user.Name }
func (r *UserResolver) Email() string  { return r.user.Email }

func (r *UserResolver) Age() *int32 {
	if r.user.Age == nil {
		return nil
	}
	age := int32(*r.user.Age)
	return &age
}

func (r *UserResolver) Posts() []*PostResolver {
	posts := r.engine.UserPosts(r.user)
	resolvers := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &PostResolver{engine: r.engine, post: p})
	}
	return resolvers
}

func (r *UserResolver) Comments() []*CommentResolver {
	comments := r.engine.UserComments(r.user)
	resolvers := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		resolvers = append(resolvers, &CommentResolver{engine: r.engine, comment: c})
	}
	return resolvers
}

// PostResolver resolves the Post type.
type PostResolver struct {
	engine *engine.Engine
	post   *models.Post
}

func (r *PostResolver) ID() graphql.ID  { return graphql.ID(r.post.ID) }
func (r *PostResolver) Title() string   { return r.post.Title }
func (r *PostResolver) Body() string    { return r.post.Body }
func (r *PostResolver) Published() bool { return r.post.Published }

func (r *PostResolver) Author() (*UserResolver, error) {
	u, err := r.engine.PostAuthor(r.post)
	if err != nil {
		return nil, err
	}
	return &UserResolver{engine: r.engine, user: u}, nil
}

func (r *PostResolver) Comments() []*CommentResolver {
	comments := r.engine.PostComments(r.post)
	resolvers := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		resolvers = append(resolvers, &CommentResolver{engine: r.engine, comment: c})
	}
	return resolvers
}

// CommentResolver resolves the Comment type.
type CommentResolver struct {
	engine  *engine.Engine
	comment *models.Comment
}

func (r *CommentResolver) ID() graphql.ID { return graphql.ID(r.comment.ID) }
func (r *CommentResolver) Text() string   { return r.comment.Text }

func (r *CommentResolver) Author() (*UserResolver, error) {
	u, err := r.engine.CommentAuthor(r.comment)
	if err != nil {
		return nil, err
	}
	return &UserResolver{engine: r.engine, user: u}, nil
}

func (r *CommentResolver) Post() (*PostResolver, error) {
	p, err := r.engine.CommentPost(r.comment)
	if err != nil {
		return nil, err
	}
	return &PostResolver{engine: r.engine, post: p}, nil
}
