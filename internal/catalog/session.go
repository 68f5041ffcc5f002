package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roach88/periodical/internal/model"
	"github.com/roach88/periodical/internal/store"
)

// Session is a unit of work over one store.
type Session struct {
	id        string
	store     *store.Store
	log       zerolog.Logger
	magazines map[int64]*model.Magazine
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The session id is added as the "session" field.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithIDGenerator overrides the session id generator (for testing).
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Session) { s.id = g.Generate() }
}

// NewSession creates a session over st. Logging is disabled unless
// WithLogger is given.
func NewSession(st *store.Store, opts ...Option) *Session {
	s := &Session{
		store:     st,
		log:       zerolog.Nop(),
		magazines: make(map[int64]*model.Magazine),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = UUIDv7Generator{}.Generate()
	}
	s.log = s.log.With().Str("session", s.id).Logger()
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Store returns the underlying store.
func (s *Session) Store() *store.Store { return s.store }

// Setup creates the tables if they do not exist.
func (s *Session) Setup(ctx context.Context) error {
	err := s.store.CreateTables(ctx)
	return s.done(err, "create tables", "", 0)
}

// DropAll drops every managed table and empties the identity map.
func (s *Session) DropAll(ctx context.Context) error {
	for _, table := range store.Tables {
		if err := s.DropTable(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

// DropTable drops one managed table. Dropping magazines empties the
// identity map.
func (s *Session) DropTable(ctx context.Context, table string) error {
	err := s.store.DropTable(ctx, table)
	if err == nil && table == store.TableMagazines {
		clear(s.magazines)
	}
	return s.done(err, "drop table", table, 0)
}

// done logs the outcome of one operation and returns err unchanged.
func (s *Session) done(err error, op, entity string, id int64) error {
	if err != nil {
		ev := s.log.Error().Err(err).Str("op", op).Str("code", string(model.CodeOf(err)))
		if entity != "" {
			ev = ev.Str("entity", entity)
		}
		if id != 0 {
			ev = ev.Int64("id", id)
		}
		ev.Msg("operation failed")
		return err
	}

	ev := s.log.Debug().Str("op", op)
	if entity != "" {
		ev = ev.Str("entity", entity)
	}
	if id != 0 {
		ev = ev.Int64("id", id)
	}
	ev.Msg("operation complete")
	return nil
}
