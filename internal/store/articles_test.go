package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/periodical/internal/model"
)

func TestSaveArticle_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	author := saveAuthor(t, s, "John Doe")
	m := saveMagazine(t, s, "Tech Weekly", "Technology")

	a, err := model.NewArticle("Test Title", "Test Content", author.ID(), m.ID())
	require.NoError(t, err)
	require.NoError(t, s.SaveArticle(ctx, a))
	require.True(t, a.Persisted())

	got, err := s.GetArticle(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, a.ID(), got.ID(), "identity must survive the round trip")
	assert.Equal(t, "Test Title", got.Title())
	assert.Equal(t, "Test Content", got.Content())
	assert.Equal(t, author.ID(), got.AuthorID())
	assert.Equal(t, m.ID(), got.MagazineID())
}

func TestSaveArticle_SecondSaveUpdates(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	author := saveAuthor(t, s, "John Doe")
	m := saveMagazine(t, s, "Tech Weekly", "Technology")
	a := saveArticle(t, s, "Draft", author, m)
	id := a.ID()

	require.NoError(t, a.SetTitle("Final"))
	require.NoError(t, a.SetContent("Edited"))
	require.NoError(t, s.SaveArticle(ctx, a))
	assert.Equal(t, id, a.ID())

	all, err := s.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "re-saving must not duplicate the row")
	assert.Equal(t, "Final", all[0].Title())
	assert.Equal(t, "Edited", all[0].Content())
}

func TestDeleteArticle(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	author := saveAuthor(t, s, "John Doe")
	m := saveMagazine(t, s, "Tech Weekly", "Technology")

	unsaved, err := model.NewArticle("t", "c", author.ID(), m.ID())
	require.NoError(t, err)
	assert.True(t, model.IsStateError(s.DeleteArticle(ctx, unsaved)))

	a := saveArticle(t, s, "Test Title", author, m)
	id := a.ID()
	require.NoError(t, s.DeleteArticle(ctx, a))
	assert.False(t, a.Persisted())

	_, err = s.GetArticle(ctx, id)
	assert.True(t, model.IsNotFoundError(err))

	// A cleared article saves as a new row.
	require.NoError(t, s.SaveArticle(ctx, a))
	assert.True(t, a.Persisted())
	all, err := s.ListArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteArticleByID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	author := saveAuthor(t, s, "John Doe")
	m := saveMagazine(t, s, "Tech Weekly", "Technology")
	a := saveArticle(t, s, "Test Title", author, m)

	n, err := s.DeleteArticleByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGetArticle_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetArticle(context.Background(), 1)
	assert.True(t, model.IsNotFoundError(err))
}

func TestGetArticle_NullReferences(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.db.Exec(`INSERT INTO articles (title, content) VALUES ('Loose', 'No refs')`)
	require.NoError(t, err)

	a, err := s.GetArticle(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, a.AuthorID())
	assert.Zero(t, a.MagazineID())
}

func TestListArticles(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	all, err := s.ListArticles(ctx)
	require.NoError(t, err)
	require.NotNil(t, all)
	assert.Empty(t, all)

	author := saveAuthor(t, s, "John Doe")
	m := saveMagazine(t, s, "Tech Weekly", "Technology")
	saveArticle(t, s, "Test Title 1", author, m)
	saveArticle(t, s, "Test Title 2", author, m)

	all, err = s.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Test Title 1", all[0].Title())
	assert.Equal(t, int64(1), all[0].ID())
	assert.Equal(t, "Test Title 2", all[1].Title())
}

func TestArticleAuthorName(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	author := saveAuthor(t, s, "John Doe")
	m := saveMagazine(t, s, "Tech Weekly", "Technology")
	a := saveArticle(t, s, "Test Title", author, m)

	name, err := s.ArticleAuthorName(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", name)
}

func TestArticleAuthorName_MissingAuthor(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	a, err := model.NewArticle("Test Title", "Test Content", 404, 1)
	require.NoError(t, err)

	name, err := s.ArticleAuthorName(ctx, a)
	require.Error(t, err)
	assert.Empty(t, name)
	assert.True(t, model.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "author")
}
