package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/periodical/internal/model"
)

const entityArticle = "article"

// SaveArticle inserts the article when it has no identity and adopts the
// generated id; otherwise it updates every column of the existing row.
// Saving twice therefore never duplicates the article.
func (s *Store) SaveArticle(ctx context.Context, a *model.Article) error {
	if !a.Persisted() {
		return s.withConn(ctx, entityArticle, "insert", func(conn *sql.Conn) error {
			res, err := conn.ExecContext(ctx, `
				INSERT INTO articles (title, content, author_id, magazine_id)
				VALUES (?, ?, ?, ?)
			`, a.Title(), a.Content(), a.AuthorID(), a.MagazineID())
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("last insert id: %w", err)
			}
			return a.AssignID(id)
		})
	}

	return s.withConn(ctx, entityArticle, "update", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `
			UPDATE articles
			SET title = ?, content = ?, author_id = ?, magazine_id = ?
			WHERE id = ?
		`, a.Title(), a.Content(), a.AuthorID(), a.MagazineID(), a.ID())
		if err != nil {
			return err
		}
		return requireAffected(res, entityArticle, a.ID())
	})
}

// DeleteArticle removes the article's row and clears the instance identity.
// Returns a StateError if the article was never saved.
func (s *Store) DeleteArticle(ctx context.Context, a *model.Article) error {
	if !a.Persisted() {
		return model.StateError(entityArticle, "delete", "cannot delete an article with no id")
	}
	if _, err := s.DeleteArticleByID(ctx, a.ID()); err != nil {
		return err
	}
	a.ClearID()
	return nil
}

// DeleteArticleByID removes the row with the given id.
// Returns the number of rows removed (0 or 1).
func (s *Store) DeleteArticleByID(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := s.withConn(ctx, entityArticle, "delete", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}

// GetArticle retrieves a single article by id, identity included.
// Returns a NotFoundError if no row matches.
func (s *Store) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	var a *model.Article
	err := s.withConn(ctx, entityArticle, "get", func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, `
			SELECT id, title, content, author_id, magazine_id
			FROM articles
			WHERE id = ?
		`, id)

		var err error
		a, err = scanArticle(row)
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotFoundError(entityArticle, id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListArticles returns every article ordered by id.
func (s *Store) ListArticles(ctx context.Context) ([]*model.Article, error) {
	articles := []*model.Article{}
	err := s.withConn(ctx, entityArticle, "list", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT id, title, content, author_id, magazine_id
			FROM articles
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanArticle(rows)
			if err != nil {
				return err
			}
			articles = append(articles, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// ArticleAuthorName returns the name of the author the article references.
// Returns a NotFoundError if that author row does not exist.
func (s *Store) ArticleAuthorName(ctx context.Context, a *model.Article) (string, error) {
	var name string
	err := s.withConn(ctx, entityArticle, "author name", func(conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, `
			SELECT name
			FROM authors
			WHERE id = ?
		`, a.AuthorID()).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotFoundError(entityAuthor, a.AuthorID())
		}
		return err
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticle scans (id, title, content, author_id, magazine_id).
// NULL references become 0.
func scanArticle(row rowScanner) (*model.Article, error) {
	var (
		id                   int64
		title, content       string
		authorID, magazineID sql.NullInt64
	)
	if err := row.Scan(&id, &title, &content, &authorID, &magazineID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan article: %w", err)
	}
	return model.RestoreArticle(id, title, content, authorID.Int64, magazineID.Int64)
}
