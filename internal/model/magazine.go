package model

import "fmt"

const entityMagazine = "magazine"

// Magazine is a publication that articles belong to.
type Magazine struct {
	id       int64
	name     string
	category string
}

// NewMagazine returns an unsaved Magazine.
// Returns a ValidationError if the name is outside [2,16] characters or the
// category is empty. Construction never persists; call Save explicitly.
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// RestoreMagazine rebuilds a persisted Magazine from stored fields.
func RestoreMagazine(id int64, name, category string) (*Magazine, error) {
	m, err := NewMagazine(name, category)
	if err != nil {
		return nil, err
	}
	if err := m.AssignID(id); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Magazine) ID() int64        { return m.id }
func (m *Magazine) Name() string     { return m.name }
func (m *Magazine) Category() string { return m.category }
func (m *Magazine) Persisted() bool  { return m.id != 0 }

// SetName validates and assigns the magazine name.
// The previous name is kept when validation fails.
func (m *Magazine) SetName(name string) error {
	name = normalize(name)
	if err := checkField(entityMagazine, "name", name, magazineNameTag); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory validates and assigns the magazine category.
func (m *Magazine) SetCategory(category string) error {
	category = normalize(category)
	if err := requireText(entityMagazine, "category", category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// AssignID records the identity generated by storage.
func (m *Magazine) AssignID(id int64) error {
	return assignID(entityMagazine, &m.id, id)
}

// ClearID forgets the storage identity after the row was deleted.
func (m *Magazine) ClearID() { m.id = 0 }

func (m *Magazine) String() string {
	return fmt.Sprintf("<Magazine %s>", m.name)
}
