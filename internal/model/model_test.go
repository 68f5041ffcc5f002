package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	names := []string{"J", "John Doe", "José Saramago", strings.Repeat("x", 200)}
	for _, name := range names {
		t.Run(name[:1], func(t *testing.T) {
			a, err := NewAuthor(name)
			require.NoError(t, err)
			assert.Equal(t, name, a.Name())
			assert.Zero(t, a.ID())
			assert.False(t, a.Persisted())
		})
	}
}

func TestNewAuthor_EmptyName(t *testing.T) {
	a, err := NewAuthor("")
	require.Error(t, err)
	assert.Nil(t, a)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "longer than 0 characters")
}

func TestAuthor_NameIsImmutable(t *testing.T) {
	a, err := NewAuthor("John Doe")
	require.NoError(t, err)

	err = a.SetName("Jane Smith")
	require.Error(t, err)
	assert.True(t, IsStateError(err))
	assert.Equal(t, "John Doe", a.Name())

	// Same value is still a second assignment.
	err = a.SetName("John Doe")
	assert.True(t, IsStateError(err))
}

func TestAuthor_ZeroValueSetNameOnce(t *testing.T) {
	var a Author
	require.NoError(t, a.SetName("John Doe"))
	assert.Equal(t, "John Doe", a.Name())
	assert.True(t, IsStateError(a.SetName("Other")))
}

func TestAuthor_ZeroValueRejectsEmptyName(t *testing.T) {
	var a Author
	assert.True(t, IsValidationError(a.SetName("")))
	// A failed assignment leaves the name unset.
	require.NoError(t, a.SetName("John Doe"))
}

func TestAuthor_NFCNormalization(t *testing.T) {
	decomposed := "José"
	a, err := NewAuthor(decomposed)
	require.NoError(t, err)
	assert.Equal(t, "José", a.Name())
}

func TestAuthor_String(t *testing.T) {
	a, err := NewAuthor("John Doe")
	require.NoError(t, err)
	assert.Equal(t, "<Author John Doe>", a.String())
}

func TestAssignID(t *testing.T) {
	a, err := NewAuthor("John Doe")
	require.NoError(t, err)

	require.NoError(t, a.AssignID(7))
	assert.Equal(t, int64(7), a.ID())
	assert.True(t, a.Persisted())

	// Same id is accepted.
	require.NoError(t, a.AssignID(7))

	err = a.AssignID(8)
	assert.True(t, IsStateError(err))
	assert.Equal(t, int64(7), a.ID())

	assert.True(t, IsValidationError(a.AssignID(0)))
	assert.True(t, IsValidationError(a.AssignID(-1)))

	a.ClearID()
	assert.False(t, a.Persisted())
	require.NoError(t, a.AssignID(9))
}

func TestRestoreAuthor(t *testing.T) {
	a, err := RestoreAuthor(3, "Jane Smith")
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.ID())
	assert.Equal(t, "Jane Smith", a.Name())

	_, err = RestoreAuthor(0, "Jane Smith")
	assert.True(t, IsValidationError(err))
}

func TestNewMagazine_NameLength(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"", false},
		{"T", false},
		{"TW", true},
		{"Tech Weekly", true},
		{strings.Repeat("a", 16), true},
		{strings.Repeat("a", 17), false},
		{strings.Repeat("é", 16), true},
		{strings.Repeat("é", 16), true}, // 32 code points, 16 after NFC
		{strings.Repeat("é", 17), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMagazine(tt.name, "Technology")
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, normalize(tt.name), m.Name())
				assert.False(t, m.Persisted(), "construction must not persist")
				return
			}
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestNewMagazine_EmptyCategory(t *testing.T) {
	m, err := NewMagazine("Tech Weekly", "")
	require.Error(t, err)
	assert.Nil(t, m)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "category")
}

func TestMagazine_SettersKeepOldValueOnFailure(t *testing.T) {
	m, err := NewMagazine("Tech Weekly", "Technology")
	require.NoError(t, err)

	assert.True(t, IsValidationError(m.SetName("X")))
	assert.Equal(t, "Tech Weekly", m.Name())

	assert.True(t, IsValidationError(m.SetCategory("")))
	assert.Equal(t, "Technology", m.Category())

	require.NoError(t, m.SetName("Science Now"))
	require.NoError(t, m.SetCategory("Science"))
	assert.Equal(t, "<Magazine Science Now>", m.String())
}

func TestNewArticle(t *testing.T) {
	a, err := NewArticle("Test Title", "Test Content", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Test Title", a.Title())
	assert.Equal(t, "Test Content", a.Content())
	assert.Equal(t, int64(1), a.AuthorID())
	assert.Equal(t, int64(2), a.MagazineID())
	assert.False(t, a.Persisted())
	assert.Equal(t, "<Article Test Title>", a.String())
}

func TestNewArticle_Presence(t *testing.T) {
	tests := []struct {
		desc                 string
		title, content       string
		authorID, magazineID int64
		field                string
	}{
		{"empty title", "", "c", 1, 1, "title"},
		{"empty content", "t", "", 1, 1, "content"},
		{"missing author", "t", "c", 0, 1, "author_id"},
		{"missing magazine", "t", "c", 1, 0, "magazine_id"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := NewArticle(tt.title, tt.content, tt.authorID, tt.magazineID)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestRestoreArticle_AllowsMissingReferences(t *testing.T) {
	a, err := RestoreArticle(4, "t", "c", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), a.ID())
	assert.Zero(t, a.AuthorID())
}

func TestErrorHelpers(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := StorageError("author", "save", cause)

	assert.True(t, IsStorageError(err))
	assert.False(t, IsValidationError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "STORAGE: save author: storage failure: disk I/O error", err.Error())

	wrapped := errors.Join(errors.New("context"), NotFoundError("magazine", 9))
	assert.True(t, IsNotFoundError(wrapped))
	assert.Equal(t, CodeNotFound, CodeOf(wrapped))

	assert.Equal(t, ErrorCode(""), CodeOf(cause))
	assert.Equal(t, "NOT_FOUND: magazine: id 9 not found", NotFoundError("magazine", 9).Error())
}
