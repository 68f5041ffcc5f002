package catalog

import (
	"context"

	"github.com/roach88/periodical/internal/model"
)

const entityArticle = "article"

// CreateArticle constructs and saves a new article.
// The referenced author and magazine are not checked for existence.
func (s *Session) CreateArticle(ctx context.Context, title, content string, authorID, magazineID int64) (*model.Article, error) {
	a, err := model.NewArticle(title, content, authorID, magazineID)
	if err != nil {
		return nil, s.done(err, "create", entityArticle, 0)
	}
	if err := s.SaveArticle(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// SaveArticle inserts or updates a by identity presence.
func (s *Session) SaveArticle(ctx context.Context, a *model.Article) error {
	err := s.store.SaveArticle(ctx, a)
	return s.done(err, "save", entityArticle, a.ID())
}

// DeleteArticle deletes a's row and clears its identity.
func (s *Session) DeleteArticle(ctx context.Context, a *model.Article) error {
	id := a.ID()
	err := s.store.DeleteArticle(ctx, a)
	return s.done(err, "delete", entityArticle, id)
}

// DeleteArticleByID deletes the row with the given id, if any.
func (s *Session) DeleteArticleByID(ctx context.Context, id int64) (int64, error) {
	n, err := s.store.DeleteArticleByID(ctx, id)
	return n, s.done(err, "delete by id", entityArticle, id)
}

// Article looks up an article by id.
func (s *Session) Article(ctx context.Context, id int64) (*model.Article, error) {
	a, err := s.store.GetArticle(ctx, id)
	return a, s.done(err, "get", entityArticle, id)
}

// Articles returns every article.
func (s *Session) Articles(ctx context.Context) ([]*model.Article, error) {
	articles, err := s.store.ListArticles(ctx)
	return articles, s.done(err, "list", entityArticle, 0)
}

// ArticleAuthorName returns the name of a's author.
// Returns a NotFoundError if the author row is missing.
func (s *Session) ArticleAuthorName(ctx context.Context, a *model.Article) (string, error) {
	name, err := s.store.ArticleAuthorName(ctx, a)
	return name, s.done(err, "author name", entityArticle, a.ID())
}
