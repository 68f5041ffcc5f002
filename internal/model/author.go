package model

import "fmt"

const entityAuthor = "author"

// Author is a person who writes articles.
//
// The name is set exactly once per instance: NewAuthor sets it, and SetName
// succeeds only on a zero-value Author.
type Author struct {
	id   int64
	name string
}

// NewAuthor returns an unsaved Author with the given name.
// Returns a ValidationError if name is empty.
func NewAuthor(name string) (*Author, error) {
	a := &Author{}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAuthor rebuilds a persisted Author from stored fields.
func RestoreAuthor(id int64, name string) (*Author, error) {
	a, err := NewAuthor(name)
	if err != nil {
		return nil, err
	}
	if err := a.AssignID(id); err != nil {
		return nil, err
	}
	return a, nil
}

// ID returns the storage identity, or 0 if the author was never saved.
func (a *Author) ID() int64 { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// Persisted reports whether the author has a storage identity.
func (a *Author) Persisted() bool { return a.id != 0 }

// SetName assigns the name of a zero-value Author.
// Returns a StateError if a name is already set.
func (a *Author) SetName(name string) error {
	if a.name != "" {
		return StateError(entityAuthor, "set name", "cannot modify name after it has been set")
	}
	name = normalize(name)
	if err := requireText(entityAuthor, "name", name); err != nil {
		return err
	}
	a.name = name
	return nil
}

// AssignID records the identity generated by storage.
// Re-assigning the same id is a no-op; a different id is a StateError.
func (a *Author) AssignID(id int64) error {
	return assignID(entityAuthor, &a.id, id)
}

// ClearID forgets the storage identity after the row was deleted.
func (a *Author) ClearID() { a.id = 0 }

func (a *Author) String() string {
	return fmt.Sprintf("<Author %s>", a.name)
}

// assignID implements the shared identity rule for all entities.
func assignID(entity string, dst *int64, id int64) error {
	if err := requireID(entity, "id", id); err != nil {
		return err
	}
	if *dst != 0 && *dst != id {
		return StateError(entity, "assign id", fmt.Sprintf("identity %d cannot be reassigned to %d", *dst, id))
	}
	*dst = id
	return nil
}
