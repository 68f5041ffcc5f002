package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/periodical/internal/model"
)

// AuthorView is the output shape of an author.
type AuthorView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (v AuthorView) Text() string {
	return fmt.Sprintf("%d\t%s\n", v.ID, v.Name)
}

// MagazineView is the output shape of a magazine.
type MagazineView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (v MagazineView) Text() string {
	return fmt.Sprintf("%d\t%s\t%s\n", v.ID, v.Name, v.Category)
}

// ArticleView is the output shape of an article.
type ArticleView struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"author_id"`
	MagazineID int64  `json:"magazine_id"`
}

func (v ArticleView) Text() string {
	return fmt.Sprintf("%d\t%s\tauthor=%d\tmagazine=%d\n", v.ID, v.Title, v.AuthorID, v.MagazineID)
}

// ReportView summarizes one magazine and its relationships.
type ReportView struct {
	Magazine            MagazineView `json:"magazine"`
	Articles            []string     `json:"articles"`
	Contributors        []string     `json:"contributors"`
	ContributingAuthors []AuthorView `json:"contributing_authors"`
}

func (v ReportView) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Magazine: %s (%s) #%d\n", v.Magazine.Name, v.Magazine.Category, v.Magazine.ID)
	writeSection(&b, "Articles", v.Articles)
	writeSection(&b, "Contributors", v.Contributors)
	names := make([]string, len(v.ContributingAuthors))
	for i, a := range v.ContributingAuthors {
		names[i] = a.Name
	}
	writeSection(&b, "Contributing authors", names)
	return b.String()
}

// DeletedView reports how many rows a delete removed.
type DeletedView struct {
	Entity  string `json:"entity"`
	ID      int64  `json:"id"`
	Deleted int64  `json:"deleted"`
}

func (v DeletedView) Text() string {
	return fmt.Sprintf("deleted %d %s row(s) with id %d\n", v.Deleted, v.Entity, v.ID)
}

// Lines renders a string list one per line.
type Lines []string

func (l Lines) Text() string {
	if len(l) == 0 {
		return ""
	}
	return strings.Join(l, "\n") + "\n"
}

// Rows renders a list of views, one Text() after another.
type Rows[T texter] []T

func (r Rows[T]) Text() string {
	var b strings.Builder
	for _, row := range r {
		b.WriteString(row.Text())
	}
	return b.String()
}

// Message is a plain text result.
type Message struct {
	Message string `json:"message"`
}

func (m Message) Text() string {
	return m.Message + "\n"
}

func writeSection(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

func authorView(a *model.Author) AuthorView {
	return AuthorView{ID: a.ID(), Name: a.Name()}
}

func authorViews(authors []*model.Author) Rows[AuthorView] {
	views := make(Rows[AuthorView], len(authors))
	for i, a := range authors {
		views[i] = authorView(a)
	}
	return views
}

func magazineView(m *model.Magazine) MagazineView {
	return MagazineView{ID: m.ID(), Name: m.Name(), Category: m.Category()}
}

func magazineViews(magazines []*model.Magazine) Rows[MagazineView] {
	views := make(Rows[MagazineView], len(magazines))
	for i, m := range magazines {
		views[i] = magazineView(m)
	}
	return views
}

func articleView(a *model.Article) ArticleView {
	return ArticleView{
		ID:         a.ID(),
		Title:      a.Title(),
		Content:    a.Content(),
		AuthorID:   a.AuthorID(),
		MagazineID: a.MagazineID(),
	}
}

func articleViews(articles []*model.Article) Rows[ArticleView] {
	views := make(Rows[ArticleView], len(articles))
	for i, a := range articles {
		views[i] = articleView(a)
	}
	return views
}
