// Package seed populates a store at process start, either with the built-in
// demo dataset or from a YAML file. Seeding happens before the engine starts
// serving, so it writes to the store directly; Apply re-checks the
// referential invariants the engine maintains so a bad seed file cannot
// smuggle in a dangling foreign key.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"blogql/internal/models"
	"blogql/internal/store"
)

// Data is a full snapshot of the three collections, in insertion order.
type Data struct {
	Users    []*models.User    `yaml:"users"`
	Posts    []*models.Post    `yaml:"posts"`
	Comments []*models.Comment `yaml:"comments"`
}

// Demo returns the built-in demo dataset.
func Demo() Data {
	age := 27
	return Data{
		Users: []*models.User{
			{ID: "1", Name: "Andrew", Email: "andrew@example.com", Age: &age},
			{ID: "2", Name: "Sarah", Email: "sarah@example.com"},
			{ID: "3", Name: "Mike", Email: "mike@example.com"},
		},
		Posts: []*models.Post{
			{ID: "10", Title: "ABC title", Body: "XYZ title", Published: true, Author: "1"},
			{ID: "11", Title: "TTT title", Body: "BBB body", Published: false, Author: "1"},
			{ID: "12", Title: "111 title", Body: "222 body", Published: true, Author: "2"},
		},
		Comments: []*models.Comment{
			{ID: "102", Text: "This worked well for me. Thanks!", Author: "3", Post: "10"},
			{ID: "103", Text: "Glad you enjoyed it.", Author: "1", Post: "10"},
			{ID: "104", Text: "Nevermind. I got it to work.", Author: "2", Post: "12"},
		},
	}
}

// FromFile loads a dataset from a YAML file.
func FromFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return d, nil
}

// Apply validates the dataset and inserts it into the store in declaration
// order. The store must be empty.
func (d Data) Apply(s *store.Store) error {
	if err := d.check(); err != nil {
		return err
	}
	for _, u := range d.Users {
		s.InsertUser(u)
	}
	for _, p := range d.Posts {
		s.InsertPost(p)
	}
	for _, c := range d.Comments {
		s.InsertComment(c)
	}
	return nil
}

// check verifies id uniqueness, email uniqueness and that every foreign key
// resolves within the dataset itself.
func (d Data) check() error {
	ids := make(map[string]string)
	userIDs := make(map[string]bool)
	postIDs := make(map[string]bool)
	emails := make(map[string]bool)

	for _, u := range d.Users {
		if u.ID == "" || u.Name == "" || u.Email == "" {
			return fmt.Errorf("seed user %q is missing id, name or email", u.ID)
		}
		if kind, dup := ids[u.ID]; dup {
			return fmt.Errorf("seed id %q already used by a %s", u.ID, kind)
		}
		if emails[u.Email] {
			return fmt.Errorf("seed email %q is not unique", u.Email)
		}
		ids[u.ID] = "user"
		userIDs[u.ID] = true
		emails[u.Email] = true
	}

	for _, p := range d.Posts {
		if p.ID == "" || p.Title == "" {
			return fmt.Errorf("seed post %q is missing id or title", p.ID)
		}
		if kind, dup := ids[p.ID]; dup {
			return fmt.Errorf("seed id %q already used by a %s", p.ID, kind)
		}
		if !userIDs[p.Author] {
			return fmt.Errorf("seed post %q references missing user %q", p.ID, p.Author)
		}
		ids[p.ID] = "post"
		postIDs[p.ID] = true
	}

	for _, c := range d.Comments {
		if c.ID == "" || c.Text == "" {
			return fmt.Errorf("seed comment %q is missing id or text", c.ID)
		}
		if kind, dup := ids[c.ID]; dup {
			return fmt.Errorf("seed id %q already used by a %s", c.ID, kind)
		}
		if !userIDs[c.Author] {
			return fmt.Errorf("seed comment %q references missing user %q", c.ID, c.Author)
		}
		if !postIDs[c.Post] {
			return fmt.Errorf("seed comment %q references missing post %q", c.ID, c.Post)
		}
		ids[c.ID] = "comment"
	}

	return nil
}
