package catalog

import (
	"context"

	"github.com/roach88/periodical/internal/model"
	"github.com/roach88/periodical/internal/store"
)

const entityMagazine = "magazine"

// CreateMagazine constructs and saves a new magazine.
func (s *Session) CreateMagazine(ctx context.Context, name, category string) (*model.Magazine, error) {
	m, err := model.NewMagazine(name, category)
	if err != nil {
		return nil, s.done(err, "create", entityMagazine, 0)
	}
	if err := s.SaveMagazine(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveMagazine inserts or updates m by identity presence and records it in
// the session's identity map.
func (s *Session) SaveMagazine(ctx context.Context, m *model.Magazine) error {
	if err := s.store.SaveMagazine(ctx, m); err != nil {
		return s.done(err, "save", entityMagazine, m.ID())
	}
	s.magazines[m.ID()] = m
	return s.done(nil, "save", entityMagazine, m.ID())
}

// Magazine returns the instance this session saved under id, falling back
// to the store when the session has not seen it. Loaded magazines are not
// added to the identity map; only saved instances are.
func (s *Session) Magazine(ctx context.Context, id int64) (*model.Magazine, error) {
	if m, ok := s.magazines[id]; ok {
		return m, nil
	}
	m, err := s.store.GetMagazine(ctx, id)
	return m, s.done(err, "get", entityMagazine, id)
}

// Tracked reports whether the identity map holds an instance for id.
func (s *Session) Tracked(id int64) bool {
	_, ok := s.magazines[id]
	return ok
}

// Magazines returns every magazine from the store.
func (s *Session) Magazines(ctx context.Context) ([]*model.Magazine, error) {
	magazines, err := s.store.ListMagazines(ctx)
	return magazines, s.done(err, "list", entityMagazine, 0)
}

// DeleteMagazine deletes m's row, clears its identity and forgets it.
func (s *Session) DeleteMagazine(ctx context.Context, m *model.Magazine) error {
	id := m.ID()
	err := s.store.DeleteMagazine(ctx, m)
	if err == nil {
		delete(s.magazines, id)
	}
	return s.done(err, "delete", entityMagazine, id)
}

// DeleteMagazineByID deletes the row with the given id and purges the
// identity map entry if present.
func (s *Session) DeleteMagazineByID(ctx context.Context, id int64) (int64, error) {
	n, err := s.store.DeleteMagazineByID(ctx, id)
	if err == nil {
		delete(s.magazines, id)
	}
	return n, s.done(err, "delete by id", entityMagazine, id)
}

// DropMagazines drops the magazines table and empties the identity map.
func (s *Session) DropMagazines(ctx context.Context) error {
	return s.DropTable(ctx, store.TableMagazines)
}

// MagazineArticles returns the titles of m's articles via a join.
func (s *Session) MagazineArticles(ctx context.Context, m *model.Magazine) ([]string, error) {
	titles, err := s.store.MagazineArticles(ctx, m)
	return titles, s.done(err, "articles", entityMagazine, m.ID())
}

// Contributors returns one author name per article in m.
func (s *Session) Contributors(ctx context.Context, m *model.Magazine) ([]string, error) {
	names, err := s.store.Contributors(ctx, m)
	return names, s.done(err, "contributors", entityMagazine, m.ID())
}

// ArticleTitles returns the titles of m's articles via a direct filter.
func (s *Session) ArticleTitles(ctx context.Context, m *model.Magazine) ([]string, error) {
	titles, err := s.store.ArticleTitles(ctx, m)
	return titles, s.done(err, "article titles", entityMagazine, m.ID())
}

// ContributingAuthors returns the authors with more than two articles in m.
func (s *Session) ContributingAuthors(ctx context.Context, m *model.Magazine) ([]*model.Author, error) {
	authors, err := s.store.ContributingAuthors(ctx, m)
	return authors, s.done(err, "contributing authors", entityMagazine, m.ID())
}
