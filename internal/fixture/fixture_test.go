package fixture

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/periodical/internal/catalog"
	"github.com/roach88/periodical/internal/model"
	"github.com/roach88/periodical/internal/testutil"
)

func TestLoad_Press(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "press.yaml"))
	require.NoError(t, err)

	require.Len(t, f.Authors, 2)
	assert.Equal(t, Author{Key: "jd", Name: "John Doe"}, f.Authors[0])
	require.Len(t, f.Magazines, 2)
	assert.Equal(t, "Technology", f.Magazines[0].Category)
	require.Len(t, f.Articles, 5)
	assert.Equal(t, "sn", f.Articles[4].Magazine)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read fixture")
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Authors)
	assert.Empty(t, f.Magazines)
	assert.Empty(t, f.Articles)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "magazine name too short",
			doc:  "magazines: [{key: m, name: X, category: News}]",
			want: "name",
		},
		{
			name: "magazine name too long",
			doc:  "magazines: [{key: m, name: Seventeen Letters, category: News}]",
			want: "name",
		},
		{
			name: "empty author name",
			doc:  `authors: [{key: a, name: ""}]`,
			want: "name",
		},
		{
			name: "missing category",
			doc:  "magazines: [{key: m, name: Tech Weekly}]",
			want: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, model.IsValidationError(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("authors: [{key: a, name: A, age: 40}]"))
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("authors: [unterminated"))
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
}

func TestApply(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "press.yaml"))
	require.NoError(t, err)

	s := catalog.NewSession(testutil.OpenStore(t))
	ctx := context.Background()

	res, err := Apply(ctx, s, f)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"jd": 1, "js": 2}, res.Authors)
	assert.Equal(t, map[string]int64{"tw": 1, "sn": 2}, res.Magazines)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, res.Articles)

	tw, err := s.Magazine(ctx, res.Magazines["tw"])
	require.NoError(t, err)

	names, err := s.Contributors(ctx, tw)
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Jane Smith", "John Doe", "John Doe"}, names)

	prolific, err := s.ContributingAuthors(ctx, tw)
	require.NoError(t, err)
	require.Len(t, prolific, 1)
	assert.Equal(t, "John Doe", prolific[0].Name())
}

func TestApply_UnknownKeys(t *testing.T) {
	s := catalog.NewSession(testutil.OpenStore(t))
	ctx := context.Background()

	f := &Fixture{
		Authors:   []Author{{Key: "jd", Name: "John Doe"}},
		Magazines: []Magazine{{Key: "tw", Name: "Tech Weekly", Category: "Technology"}},
		Articles:  []Article{{Title: "T", Content: "C", Author: "zz", Magazine: "tw"}},
	}
	_, err := Apply(ctx, s, f)
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	assert.Contains(t, err.Error(), `unknown author key "zz"`)

	f.Articles[0].Author = "jd"
	f.Articles[0].Magazine = "zz"
	_, err = Apply(ctx, s, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown magazine key "zz"`)

	// Rejected before any row was written
	authors, err := s.Authors(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)
	magazines, err := s.Magazines(ctx)
	require.NoError(t, err)
	assert.Empty(t, magazines)
}

func TestApply_DuplicateKeys(t *testing.T) {
	s := catalog.NewSession(testutil.OpenStore(t))
	ctx := context.Background()

	f := &Fixture{
		Authors: []Author{{Key: "a", Name: "One"}, {Key: "a", Name: "Two"}},
	}
	res, err := Apply(ctx, s, f)
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	assert.Empty(t, res.Authors)

	authors, err := s.Authors(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestParse_KeyChecks(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown author key",
			doc: `authors: [{key: jd, name: John Doe}]
magazines: [{key: tw, name: Tech Weekly, category: Technology}]
articles: [{title: T, content: C, author: zz, magazine: tw}]`,
			want: `article 0: unknown author key "zz"`,
		},
		{
			name: "unknown magazine key",
			doc: `authors: [{key: jd, name: John Doe}]
magazines: [{key: tw, name: Tech Weekly, category: Technology}]
articles: [{title: T, content: C, author: jd, magazine: zz}]`,
			want: `article 0: unknown magazine key "zz"`,
		},
		{
			name: "duplicate author key",
			doc:  "authors: [{key: a, name: One}, {key: a, name: Two}]",
			want: `duplicate author key "a"`,
		},
		{
			name: "duplicate magazine key",
			doc:  "magazines: [{key: m, name: Tech Weekly, category: T}, {key: m, name: Science Now, category: S}]",
			want: `duplicate magazine key "m"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, model.IsValidationError(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_MagazineNameCountedAfterNFC(t *testing.T) {
	// 16 decomposed "e\u0301" compose to 16 runes; the raw string has 32
	name := strings.Repeat("e\u0301", 16)
	_, err := model.NewMagazine(name, "News")
	require.NoError(t, err)

	f := &Fixture{Magazines: []Magazine{{Key: "m", Name: name, Category: "News"}}}
	require.NoError(t, Validate(f))

	f.Magazines[0].Name = strings.Repeat("e\u0301", 17)
	require.Error(t, Validate(f))
}
