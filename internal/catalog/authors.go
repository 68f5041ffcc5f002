package catalog

import (
	"context"

	"github.com/roach88/periodical/internal/model"
)

const entityAuthor = "author"

// CreateAuthor constructs and saves a new author.
func (s *Session) CreateAuthor(ctx context.Context, name string) (*model.Author, error) {
	a, err := model.NewAuthor(name)
	if err != nil {
		return nil, s.done(err, "create", entityAuthor, 0)
	}
	if err := s.SaveAuthor(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// SaveAuthor inserts or updates a by identity presence.
func (s *Session) SaveAuthor(ctx context.Context, a *model.Author) error {
	err := s.store.SaveAuthor(ctx, a)
	return s.done(err, "save", entityAuthor, a.ID())
}

// DeleteAuthor deletes a's row and clears its identity.
// Returns a StateError if a was never saved.
func (s *Session) DeleteAuthor(ctx context.Context, a *model.Author) error {
	id := a.ID()
	err := s.store.DeleteAuthor(ctx, a)
	return s.done(err, "delete", entityAuthor, id)
}

// DeleteAuthorByID deletes the row with the given id, if any.
func (s *Session) DeleteAuthorByID(ctx context.Context, id int64) (int64, error) {
	n, err := s.store.DeleteAuthorByID(ctx, id)
	return n, s.done(err, "delete by id", entityAuthor, id)
}

// Author looks up an author by id.
func (s *Session) Author(ctx context.Context, id int64) (*model.Author, error) {
	a, err := s.store.GetAuthor(ctx, id)
	return a, s.done(err, "get", entityAuthor, id)
}

// Authors returns every author.
func (s *Session) Authors(ctx context.Context) ([]*model.Author, error) {
	authors, err := s.store.ListAuthors(ctx)
	return authors, s.done(err, "list", entityAuthor, 0)
}

// AuthorArticles returns the titles of a's articles in insertion order.
func (s *Session) AuthorArticles(ctx context.Context, a *model.Author) ([]string, error) {
	titles, err := s.store.AuthorArticles(ctx, a)
	return titles, s.done(err, "articles", entityAuthor, a.ID())
}
