package testutil

import (
	"path/filepath"
	"testing"

	"github.com/roach88/periodical/internal/store"
)

// OpenStore opens a fresh store in a per-test temp directory and closes it
// when the test ends.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()
	return OpenStoreAt(t, filepath.Join(t.TempDir(), "test.db"))
}

// OpenStoreAt opens the store at path and closes it when the test ends.
func OpenStoreAt(t *testing.T, path string) *store.Store {
	t.Helper()
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open(%q) failed: %v", path, err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
