package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/periodical/internal/model"
)

const entityAuthor = "author"

// SaveAuthor inserts the author when it has no identity and adopts the
// generated id; otherwise it updates the name of the existing row.
func (s *Store) SaveAuthor(ctx context.Context, a *model.Author) error {
	if !a.Persisted() {
		return s.withConn(ctx, entityAuthor, "insert", func(conn *sql.Conn) error {
			res, err := conn.ExecContext(ctx, `INSERT INTO authors (name) VALUES (?)`, a.Name())
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

	return s.withConn(ctx, entityAuthor, "update", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `UPDATE authors SET name = ? WHERE id = ?`, a.Name(), a.ID())
		if err != nil {
			return err
		}
		return requireAffected(res, entityAuthor, a.ID())
	})
}

// DeleteAuthor removes the author's row and clears the instance identity.
// Returns a StateError, touching no row, if the author was never saved.
// Articles written by the author are left in place.
func (s *Store) DeleteAuthor(ctx context.Context, a *model.Author) error {
	if !a.Persisted() {
		return model.StateError(entityAuthor, "delete", "cannot delete an author with no id")
	}
	if _, err := s.DeleteAuthorByID(ctx, a.ID()); err != nil {
		return err
	}
	a.ClearID()
	return nil
}

// DeleteAuthorByID removes the row with the given id.
// Returns the number of rows removed (0 or 1).
func (s *Store) DeleteAuthorByID(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := s.withConn(ctx, entityAuthor, "delete", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `DELETE FROM authors WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}

// GetAuthor retrieves a single author by id.
// Returns a NotFoundError if no row matches.
func (s *Store) GetAuthor(ctx context.Context, id int64) (*model.Author, error) {
	var a *model.Author
	err := s.withConn(ctx, entityAuthor, "get", func(conn *sql.Conn) error {
		var (
			rowID int64
			name  string
		)
		err := conn.QueryRowContext(ctx, `
			SELECT id, name
			FROM authors
			WHERE id = ?
		`, id).Scan(&rowID, &name)
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotFoundError(entityAuthor, id)
		}
		if err != nil {
			return err
		}
		a, err = model.RestoreAuthor(rowID, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAuthors returns every author ordered by id.
func (s *Store) ListAuthors(ctx context.Context) ([]*model.Author, error) {
	authors := []*model.Author{}
	err := s.withConn(ctx, entityAuthor, "list", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT id, name
			FROM authors
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		authors, err = scanAuthors(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// AuthorArticles returns the titles of every article whose author_id is the
// author's id, in insertion order. An unsaved author has no articles.
func (s *Store) AuthorArticles(ctx context.Context, a *model.Author) ([]string, error) {
	if !a.Persisted() {
		return []string{}, nil
	}

	var titles []string
	err := s.withConn(ctx, entityAuthor, "articles", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT ar.title
			FROM articles ar
			LEFT JOIN authors au ON ar.author_id = au.id
			WHERE ar.author_id = ?
			ORDER BY ar.id ASC
		`, a.ID())
		if err != nil {
			return err
		}
		defer rows.Close()

		titles, err = scanStrings(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return titles, nil
}

// scanAuthors drains rows of (id, name) into authors.
func scanAuthors(rows *sql.Rows) ([]*model.Author, error) {
	authors := []*model.Author{}
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		a, err := model.RestoreAuthor(id, name)
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}
	return authors, nil
}

// scanStrings drains a single-column result into a slice.
// Returns an empty slice instead of nil.
func scanStrings(rows *sql.Rows) ([]string, error) {
	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return values, nil
}

// requireAffected turns an UPDATE that matched no row into a NotFoundError.
func requireAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return model.NotFoundError(entity, id)
	}
	return nil
}
