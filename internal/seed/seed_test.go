package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogql/internal/models"
	"blogql/internal/seed"
	"blogql/internal/store"
)

func TestDemo_AppliesCleanly(t *testing.T) {
	s := store.New()
	require.NoError(t, seed.Demo().Apply(s))

	assert.Len(t, s.Users(), 3)
	assert.Len(t, s.Posts(), 3)
	assert.Len(t, s.Comments(), 3)

	andrew := s.UserByEmail("andrew@example.com")
	require.NotNil(t, andrew)
	require.NotNil(t, andrew.Age)
	assert.Equal(t, 27, *andrew.Age)
}

func TestFromFile(t *testing.T) {
	data, err := seed.FromFile(filepath.Join("testdata", "seed.yaml"))
	require.NoError(t, err)

	s := store.New()
	require.NoError(t, data.Apply(s))

	assert.Len(t, s.Users(), 2)
	assert.Len(t, s.Posts(), 1)
	assert.Len(t, s.Comments(), 1)
	assert.Equal(t, "Hello world", s.PostByID("p1").Title)
	assert.True(t, s.PostByID("p1").Published)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := seed.FromFile(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: {not: a list}"), 0o644))

	_, err := seed.FromFile(path)
	assert.Error(t, err)
}

func TestApply_RejectsDanglingForeignKeys(t *testing.T) {
	data := seed.Data{
		Users: []*models.User{{ID: "u1", Name: "A", Email: "a@example.com"}},
		Posts: []*models.Post{{ID: "p1", Title: "t", Author: "missing"}},
	}

	s := store.New()
	err := data.Apply(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing user")
	assert.Empty(t, s.Users(), "nothing is applied when the dataset is invalid")
}

func TestApply_RejectsDuplicateEmails(t *testing.T) {
	data := seed.Data{
		Users: []*models.User{
			{ID: "u1", Name: "A", Email: "same@example.com"},
			{ID: "u2", Name: "B", Email: "same@example.com"},
		},
	}

	err := data.Apply(store.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not unique")
}

func TestApply_RejectsReusedIDs(t *testing.T) {
	data := seed.Data{
		Users: []*models.User{{ID: "1", Name: "A", Email: "a@example.com"}},
		Posts: []*models.Post{{ID: "1", Title: "t", Author: "1"}},
	}

	err := data.Apply(store.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used")
}

func TestApply_RejectsCommentOnMissingPost(t *testing.T) {
	data := seed.Data{
		Users:    []*models.User{{ID: "u1", Name: "A", Email: "a@example.com"}},
		Comments: []*models.Comment{{ID: "c1", Text: "hi", Author: "u1", Post: "p9"}},
	}

	err := data.Apply(store.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing post")
}
