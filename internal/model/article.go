package model

import "fmt"

const entityArticle = "article"

// Article is a piece written by one Author for one Magazine.
//
// AuthorID and MagazineID are plain references: the store does not enforce
// that the rows exist.
type Article struct {
	id         int64
	title      string
	content    string
	authorID   int64
	magazineID int64
}

// NewArticle returns an unsaved Article.
// Only presence is checked: title and content must be non-empty and both
// references must be positive ids.
func NewArticle(title, content string, authorID, magazineID int64) (*Article, error) {
	title = normalize(title)
	content = normalize(content)

	if err := requireText(entityArticle, "title", title); err != nil {
		return nil, err
	}
	if err := requireText(entityArticle, "content", content); err != nil {
		return nil, err
	}
	if err := requireID(entityArticle, "author_id", authorID); err != nil {
		return nil, err
	}
	if err := requireID(entityArticle, "magazine_id", magazineID); err != nil {
		return nil, err
	}

	return &Article{
		title:      title,
		content:    content,
		authorID:   authorID,
		magazineID: magazineID,
	}, nil
}

// RestoreArticle rebuilds a persisted Article from stored fields.
// References are taken as stored; a NULL column arrives here as 0.
func RestoreArticle(id int64, title, content string, authorID, magazineID int64) (*Article, error) {
	if err := requireText(entityArticle, "title", title); err != nil {
		return nil, err
	}
	if err := requireText(entityArticle, "content", content); err != nil {
		return nil, err
	}
	a := &Article{
		title:      title,
		content:    content,
		authorID:   authorID,
		magazineID: magazineID,
	}
	if err := a.AssignID(id); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Article) ID() int64         { return a.id }
func (a *Article) Title() string     { return a.title }
func (a *Article) Content() string   { return a.content }
func (a *Article) AuthorID() int64   { return a.authorID }
func (a *Article) MagazineID() int64 { return a.magazineID }
func (a *Article) Persisted() bool   { return a.id != 0 }

// AssignID records the identity generated by storage.
func (a *Article) AssignID(id int64) error {
	return assignID(entityArticle, &a.id, id)
}

// ClearID forgets the storage identity after the row was deleted.
func (a *Article) ClearID() { a.id = 0 }

func (a *Article) String() string {
	return fmt.Sprintf("<Article %s>", a.title)
}

// SetTitle replaces the title; persisted on the next save.
func (a *Article) SetTitle(title string) error {
	title = normalize(title)
	if err := requireText(entityArticle, "title", title); err != nil {
		return err
	}
	a.title = title
	return nil
}

// SetContent replaces the content; persisted on the next save.
func (a *Article) SetContent(content string) error {
	content = normalize(content)
	if err := requireText(entityArticle, "content", content); err != nil {
		return err
	}
	a.content = content
	return nil
}
