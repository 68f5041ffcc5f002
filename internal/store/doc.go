// Package store provides SQLite-backed storage for periodical entities.
//
// The store owns three tables:
//   - authors: id, name
//   - magazines: id, name, category
//   - articles: id, title, content, author_id, magazine_id
//
// # Access Rules
//
// Every operation acquires its own connection from the pool and releases it
// before returning, on success and on failure alike. Values are always bound
// as parameters; no value is ever formatted into SQL text. SELECT statements
// name their columns explicitly and never use SELECT *.
//
// List queries order by primary key, which for INTEGER PRIMARY KEY tables is
// insertion order. List queries return empty slices, never nil.
//
// Referential integrity between articles and their author and magazine is
// not enforced here. Deleting an author leaves its articles in place.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - MaxOpenConns=1: SQLite has a single writer
//
// All failures surface as *model.Error values with CodeStorage, wrapping the
// driver error.
package store
