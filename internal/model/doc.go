// Package model provides the entity types for periodical.
//
// This package contains entity definitions, their field rules and the error
// taxonomy. It imports nothing internal; store, catalog and cli all build on
// it.
//
// Key design constraints:
//   - Construction is pure: constructors validate and never touch storage
//   - Identity is zero until the store assigns one on first insert
//   - Author names are set exactly once per in-memory instance
//   - Text fields are NFC-normalized before length rules are applied
package model
