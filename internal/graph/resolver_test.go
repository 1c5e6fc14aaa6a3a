package graph_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogql/internal/engine"
	"blogql/internal/graph"
	"blogql/internal/seed"
	"blogql/internal/store"
)

func TestSchemaParses(t *testing.T) {
	s := store.New()
	require.NoError(t, seed.Demo().Apply(s))
	assert.NotPanics(t, func() {
		graph.MustSchema(engine.New(s))
	})
}

func exec(t *testing.T, query string) map[string]interface{} {
	t.Helper()
	s := store.New()
	require.NoError(t, seed.Demo().Apply(s))
	schema := graph.MustSchema(engine.New(s))

	resp := schema.Exec(context.Background(), query, "", nil)
	require.Empty(t, resp.Errors, "unexpected GraphQL errors")

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

func execErr(t *testing.T, query string) string {
	t.Helper()
	s := store.New()
	require.NoError(t, seed.Demo().Apply(s))
	schema := graph.MustSchema(engine.New(s))

	resp := schema.Exec(context.Background(), query, "", nil)
	require.NotEmpty(t, resp.Errors, "expected a GraphQL error")
	return resp.Errors[0].Message
}

func TestQuery_Users(t *testing.T) {
	data := exec(t, `{ users { id name email } }`)

	users := data["users"].([]interface{})
	require.Len(t, users, 3)
	first := users[0].(map[string]interface{})
	assert.Equal(t, "Andrew", first["name"])
}

func TestQuery_UsersFiltered(t *testing.T) {
	data := exec(t, `{ users(query: "ndr") { name } }`)

	users := data["users"].([]interface{})
	require.Len(t, users, 1)
	assert.Equal(t, "Andrew", users[0].(map[string]interface{})["name"])
}

func TestQuery_PostsWithRelations(t *testing.T) {
	data := exec(t, `{ posts(query: "xyz") { title author { name } comments { text author { name } } } }`)

	posts := data["posts"].([]interface{})
	require.Len(t, posts, 1)
	post := posts[0].(map[string]interface{})
	assert.Equal(t, "ABC title", post["title"])
	assert.Equal(t, "Andrew", post["author"].(map[string]interface{})["name"])

	comments := post["comments"].([]interface{})
	require.Len(t, comments, 2)
	assert.Equal(t, "Mike", comments[0].(map[string]interface{})["author"].(map[string]interface{})["name"])
}

func TestQuery_UserPosts(t *testing.T) {
	data := exec(t, `{ users(query: "Andrew") { posts { title published } } }`)

	users := data["users"].([]interface{})
	require.Len(t, users, 1)
	posts := users[0].(map[string]interface{})["posts"].([]interface{})
	require.Len(t, posts, 2)
	assert.Equal(t, "ABC title", posts[0].(map[string]interface{})["title"])
	assert.Equal(t, false, posts[1].(map[string]interface{})["published"])
}

func TestQuery_Comments(t *testing.T) {
	data := exec(t, `{ comments { id text post { title } } }`)

	comments := data["comments"].([]interface{})
	require.Len(t, comments, 3)
	first := comments[0].(map[string]interface{})
	assert.Equal(t, "This worked well for me. Thanks!", first["text"])
	assert.Equal(t, "ABC title", first["post"].(map[string]interface{})["title"])
}

func TestQuery_MeAndPost(t *testing.T) {
	data := exec(t, `{ me { name email } post { title } }`)

	assert.Equal(t, "Andrew", data["me"].(map[string]interface{})["name"])
	assert.Equal(t, "ABC title", data["post"].(map[string]interface{})["title"])
}

func TestMutation_CreateUser(t *testing.T) {
	data := exec(t, `mutation { createUser(data: {name: "Jess", email: "jess@example.com", age: 30}) { id name email age } }`)

	created := data["createUser"].(map[string]interface{})
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "Jess", created["name"])
	assert.Equal(t, float64(30), created["age"])
}

func TestMutation_CreateUserConflict(t *testing.T) {
	msg := execErr(t, `mutation { createUser(data: {name: "Imposter", email: "sarah@example.com"}) { id } }`)
	assert.Contains(t, msg, "Email taken")
}

func TestMutation_DeleteUser(t *testing.T) {
	s := store.New()
	require.NoError(t, seed.Demo().Apply(s))
	schema := graph.MustSchema(engine.New(s))

	resp := schema.Exec(context.Background(), `mutation { deleteUser(id: "1") { name } }`, "", nil)
	require.Empty(t, resp.Errors)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "Andrew", data["deleteUser"].(map[string]interface{})["name"])

	// Cascade is visible through the same schema.
	resp = schema.Exec(context.Background(), `{ posts { title } comments { id } }`, "", nil)
	require.Empty(t, resp.Errors)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data["posts"].([]interface{}), 1)
	assert.Len(t, data["comments"].([]interface{}), 1)
}

func TestMutation_CreateCommentOnUnpublishedPost(t *testing.T) {
	msg := execErr(t, `mutation { createComment(data: {text: "Too early", author: "2", post: "11"}) { id } }`)
	assert.Contains(t, msg, "Unable to find user and post")
}

func TestMutation_DeletePostNotFound(t *testing.T) {
	msg := execErr(t, `mutation { deletePost(id: "99") { id } }`)
	assert.Contains(t, msg, "Post not found")
}
