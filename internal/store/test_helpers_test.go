package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/periodical/internal/model"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func saveAuthor(t *testing.T, s *Store, name string) *model.Author {
	t.Helper()
	a, err := model.NewAuthor(name)
	require.NoError(t, err)
	require.NoError(t, s.SaveAuthor(context.Background(), a))
	return a
}

func saveMagazine(t *testing.T, s *Store, name, category string) *model.Magazine {
	t.Helper()
	m, err := model.NewMagazine(name, category)
	require.NoError(t, err)
	require.NoError(t, s.SaveMagazine(context.Background(), m))
	return m
}

func saveArticle(t *testing.T, s *Store, title string, author *model.Author, magazine *model.Magazine) *model.Article {
	t.Helper()
	a, err := model.NewArticle(title, title+" content", author.ID(), magazine.ID())
	require.NoError(t, err)
	require.NoError(t, s.SaveArticle(context.Background(), a))
	return a
}
