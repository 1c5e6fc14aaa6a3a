package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"blogql/internal/engine"
)

// Schema is the application schema. It describes the operations and data
// structures the API exposes; the resolvers in this package implement them.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		users(query: String): [User!]!
		posts(query: String): [Post!]!
		comments: [Comment!]!
		me: User!
		post: Post!
	}

	type Mutation {
		createUser(data: CreateUserInput!): User!
		deleteUser(id: ID!): User!
		createPost(data: CreatePostInput!): Post!
		deletePost(id: ID!): Post!
		createComment(data: CreateCommentInput!): Comment!
		deleteComment(id: ID!): Comment!
	}

	input CreateUserInput {
		name: String!
		email: String!
		age: Int
	}

	input CreatePostInput {
		title: String!
		body: String!
		published: Boolean!
		author: ID!
	}

	input CreateCommentInput {
		text: String!
		author: ID!
		post: ID!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		age: Int
		posts: [Post!]!
		comments: [Comment!]!
	}

	type Post {
		id: ID!
		title: String!
		body: String!
		published: Boolean!
		author: User!
		comments: [Comment!]!
	}

	type Comment {
		id: ID!
		text: String!
		author: User!
		post: Post!
	}
`

// MustSchema parses the schema against a root resolver bound to the engine.
// Panics on a schema/resolver mismatch, which is a programming error.
func MustSchema(e *engine.Engine) *graphql.Schema {
	return graphql.MustParseSchema(Schema, NewResolver(e))
}
