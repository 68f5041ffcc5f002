package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/periodical/internal/model"
)

const entityMagazine = "magazine"

// SaveMagazine inserts the magazine when it has no identity and adopts the
// generated id; otherwise it updates name and category of the existing row.
func (s *Store) SaveMagazine(ctx context.Context, m *model.Magazine) error {
	if !m.Persisted() {
		return s.withConn(ctx, entityMagazine, "insert", func(conn *sql.Conn) error {
			res, err := conn.ExecContext(ctx, `
				INSERT INTO magazines (name, category)
				VALUES (?, ?)
			`, m.Name(), m.Category())
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("last insert id: %w", err)
			}
			return m.AssignID(id)
		})
	}

	return s.withConn(ctx, entityMagazine, "update", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `
			UPDATE magazines
			SET name = ?, category = ?
			WHERE id = ?
		`, m.Name(), m.Category(), m.ID())
		if err != nil {
			return err
		}
		return requireAffected(res, entityMagazine, m.ID())
	})
}

// DeleteMagazine removes the magazine's row and clears the instance identity.
// Returns a StateError if the magazine was never saved.
func (s *Store) DeleteMagazine(ctx context.Context, m *model.Magazine) error {
	if !m.Persisted() {
		return model.StateError(entityMagazine, "delete", "cannot delete a magazine with no id")
	}
	if _, err := s.DeleteMagazineByID(ctx, m.ID()); err != nil {
		return err
	}
	m.ClearID()
	return nil
}

// DeleteMagazineByID removes the row with the given id.
// Returns the number of rows removed (0 or 1).
func (s *Store) DeleteMagazineByID(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := s.withConn(ctx, entityMagazine, "delete", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `DELETE FROM magazines WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}

// GetMagazine retrieves a single magazine by id.
// Returns a NotFoundError if no row matches.
func (s *Store) GetMagazine(ctx context.Context, id int64) (*model.Magazine, error) {
	var m *model.Magazine
	err := s.withConn(ctx, entityMagazine, "get", func(conn *sql.Conn) error {
		var (
			rowID          int64
			name, category string
		)
		err := conn.QueryRowContext(ctx, `
			SELECT id, name, category
			FROM magazines
			WHERE id = ?
		`, id).Scan(&rowID, &name, &category)
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotFoundError(entityMagazine, id)
		}
		if err != nil {
			return err
		}
		m, err = model.RestoreMagazine(rowID, name, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMagazines returns every magazine ordered by id.
func (s *Store) ListMagazines(ctx context.Context) ([]*model.Magazine, error) {
	magazines := []*model.Magazine{}
	err := s.withConn(ctx, entityMagazine, "list", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT id, name, category
			FROM magazines
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				id             int64
				name, category string
			)
			if err := rows.Scan(&id, &name, &category); err != nil {
				return fmt.Errorf("scan magazine: %w", err)
			}
			m, err := model.RestoreMagazine(id, name, category)
			if err != nil {
				return err
			}
			magazines = append(magazines, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return magazines, nil
}

// MagazineArticles returns the titles of the magazine's articles in
// insertion order, joining magazines to articles.
func (s *Store) MagazineArticles(ctx context.Context, m *model.Magazine) ([]string, error) {
	// The LEFT JOIN yields one NULL-title row for a magazine without
	// articles; ar.id IS NOT NULL drops it.
	return s.magazineStrings(ctx, m, "articles", `
		SELECT ar.title
		FROM magazines m
		LEFT JOIN articles ar ON ar.magazine_id = m.id
		WHERE m.id = ? AND ar.id IS NOT NULL
		ORDER BY ar.id ASC
	`)
}

// Contributors returns the name of the author of every article in the
// magazine, in article insertion order. Names are not deduplicated: an author
// with two articles in the magazine appears twice.
func (s *Store) Contributors(ctx context.Context, m *model.Magazine) ([]string, error) {
	return s.magazineStrings(ctx, m, "contributors", `
		SELECT au.name
		FROM authors au
		JOIN articles ar ON ar.author_id = au.id
		JOIN magazines m ON ar.magazine_id = m.id
		WHERE m.id = ?
		ORDER BY ar.id ASC
	`)
}

// ArticleTitles returns the titles of the magazine's articles by filtering
// articles on magazine_id directly. For well-formed data it matches
// MagazineArticles.
func (s *Store) ArticleTitles(ctx context.Context, m *model.Magazine) ([]string, error) {
	return s.magazineStrings(ctx, m, "article titles", `
		SELECT title
		FROM articles
		WHERE magazine_id = ?
		ORDER BY id ASC
	`)
}

// ContributingAuthors returns the authors with strictly more than two
// articles in this magazine, ordered by author id. Articles the same author
// wrote for other magazines do not count.
func (s *Store) ContributingAuthors(ctx context.Context, m *model.Magazine) ([]*model.Author, error) {
	if !m.Persisted() {
		return []*model.Author{}, nil
	}

	var authors []*model.Author
	err := s.withConn(ctx, entityMagazine, "contributing authors", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT au.id, au.name
			FROM authors au
			JOIN articles ar ON ar.author_id = au.id
			WHERE ar.magazine_id = ?
			GROUP BY au.id, au.name
			HAVING COUNT(ar.id) > 2
			ORDER BY au.id ASC
		`, m.ID())
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

// magazineStrings runs a single-column query keyed by the magazine id.
// An unsaved magazine yields an empty slice without touching storage.
func (s *Store) magazineStrings(ctx context.Context, m *model.Magazine, op, query string) ([]string, error) {
	if !m.Persisted() {
		return []string{}, nil
	}

	var values []string
	err := s.withConn(ctx, entityMagazine, op, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, m.ID())
		if err != nil {
			return err
		}
		defer rows.Close()

		values, err = scanStrings(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
