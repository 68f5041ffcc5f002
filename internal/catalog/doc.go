// Package catalog provides Session, the caller-owned entry point for working
// with authors, magazines and articles.
//
// A Session wraps one *store.Store and adds:
//   - An explicit magazine identity map (id -> *model.Magazine) filled by
//     SaveMagazine and purged by magazine deletes and drops
//   - Structured logging of every operation, tagged with a session id
//
// Errors from the store are logged and returned to the caller unchanged;
// nothing is swallowed.
//
// A Session is not safe for concurrent use. Create one per goroutine or
// guard it externally.
package catalog
