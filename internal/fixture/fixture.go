// Package fixture loads seed data for periodical from YAML documents.
//
// A fixture names authors and magazines by key and lets articles refer to
// them by those keys:
//
//	authors:
//	  - {key: jd, name: John Doe}
//	magazines:
//	  - {key: tw, name: Tech Weekly, category: Technology}
//	articles:
//	  - {title: Test Title 1, content: Body, author: jd, magazine: tw}
//
// Documents are decoded with yaml.v3 and checked against the embedded CUE
// schema in fixture.cue before anything is written.
package fixture

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/periodical/internal/catalog"
	"github.com/roach88/periodical/internal/model"
)

//go:embed fixture.cue
var schemaSrc string

const entityFixture = "fixture"

// Fixture is a decoded seed document.
type Fixture struct {
	Authors   []Author   `yaml:"authors,omitempty" json:"authors"`
	Magazines []Magazine `yaml:"magazines,omitempty" json:"magazines"`
	Articles  []Article  `yaml:"articles,omitempty" json:"articles"`
}

// Author is an author entry, addressed by Key from articles.
type Author struct {
	Key  string `yaml:"key" json:"key"`
	Name string `yaml:"name" json:"name"`
}

// Magazine is a magazine entry, addressed by Key from articles.
type Magazine struct {
	Key      string `yaml:"key" json:"key"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
}

// Article is an article entry referencing an author key and a magazine key.
type Article struct {
	Title    string `yaml:"title" json:"title"`
	Content  string `yaml:"content" json:"content"`
	Author   string `yaml:"author" json:"author"`
	Magazine string `yaml:"magazine" json:"magazine"`
}

// Result maps fixture keys to the ids assigned by the store.
type Result struct {
	Authors   map[string]int64 `json:"authors"`
	Magazines map[string]int64 `json:"magazines"`
	Articles  []int64          `json:"articles"`
}

// Load reads and parses the fixture file at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML fixture and validates it against the CUE schema.
// Unknown fields are rejected. An empty document is an empty fixture.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, &model.Error{
			Code:    model.CodeValidation,
			Entity:  entityFixture,
			Message: "invalid YAML",
			Err:     err,
		}
	}

	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks f against the #Fixture definition in fixture.cue, then
// checks that keys are unique per kind and that every article references a
// declared author and magazine. Strings are NFC-normalized before the schema
// check so lengths are counted the way the model counts them.
func Validate(f *Fixture) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc, cue.Filename("fixture.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile fixture schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Fixture"))
	v := def.Unify(ctx.Encode(encodable(f)))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return &model.Error{
			Code:    model.CodeValidation,
			Entity:  entityFixture,
			Message: firstCUEError(err),
			Err:     err,
		}
	}
	return checkKeys(f)
}

// checkKeys rejects duplicate keys and article references to undeclared keys.
func checkKeys(f *Fixture) error {
	authors := make(map[string]bool, len(f.Authors))
	for _, fa := range f.Authors {
		if authors[fa.Key] {
			return model.ValidationError(entityFixture, fmt.Sprintf("duplicate author key %q", fa.Key))
		}
		authors[fa.Key] = true
	}

	magazines := make(map[string]bool, len(f.Magazines))
	for _, fm := range f.Magazines {
		if magazines[fm.Key] {
			return model.ValidationError(entityFixture, fmt.Sprintf("duplicate magazine key %q", fm.Key))
		}
		magazines[fm.Key] = true
	}

	for i, fa := range f.Articles {
		if !authors[fa.Author] {
			return model.ValidationError(entityFixture,
				fmt.Sprintf("article %d: unknown author key %q", i, fa.Author))
		}
		if !magazines[fa.Magazine] {
			return model.ValidationError(entityFixture,
				fmt.Sprintf("article %d: unknown magazine key %q", i, fa.Magazine))
		}
	}
	return nil
}

// Apply validates f, then saves every author, then every magazine, then
// every article through s, resolving article references by key.
//
// Nothing is written when f is invalid. Apply is not atomic: rows saved
// before a storage failure stay saved.
func Apply(ctx context.Context, s *catalog.Session, f *Fixture) (*Result, error) {
	res := &Result{
		Authors:   make(map[string]int64, len(f.Authors)),
		Magazines: make(map[string]int64, len(f.Magazines)),
		Articles:  make([]int64, 0, len(f.Articles)),
	}
	if err := Validate(f); err != nil {
		return res, err
	}

	for _, fa := range f.Authors {
		a, err := s.CreateAuthor(ctx, fa.Name)
		if err != nil {
			return res, fmt.Errorf("author %q: %w", fa.Key, err)
		}
		res.Authors[fa.Key] = a.ID()
	}

	for _, fm := range f.Magazines {
		m, err := s.CreateMagazine(ctx, fm.Name, fm.Category)
		if err != nil {
			return res, fmt.Errorf("magazine %q: %w", fm.Key, err)
		}
		res.Magazines[fm.Key] = m.ID()
	}

	for i, fa := range f.Articles {
		a, err := s.CreateArticle(ctx, fa.Title, fa.Content, res.Authors[fa.Author], res.Magazines[fa.Magazine])
		if err != nil {
			return res, fmt.Errorf("article %d: %w", i, err)
		}
		res.Articles = append(res.Articles, a.ID())
	}

	return res, nil
}

// firstCUEError returns the message of the first CUE error, led by the
// failing path.
func firstCUEError(err error) string {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	msg := errs[0].Error()
	path := strings.Join(errs[0].Path(), ".")
	if path == "" || strings.HasPrefix(msg, path) {
		return msg
	}
	return path + ": " + msg
}

// encodable returns an NFC-normalized copy of f with nil lists replaced by
// empty ones, so every list encodes as a CUE list rather than null.
func encodable(f *Fixture) Fixture {
	out := Fixture{
		Authors:   make([]Author, len(f.Authors)),
		Magazines: make([]Magazine, len(f.Magazines)),
		Articles:  make([]Article, len(f.Articles)),
	}
	for i, a := range f.Authors {
		out.Authors[i] = Author{Key: nfc(a.Key), Name: nfc(a.Name)}
	}
	for i, m := range f.Magazines {
		out.Magazines[i] = Magazine{Key: nfc(m.Key), Name: nfc(m.Name), Category: nfc(m.Category)}
	}
	for i, a := range f.Articles {
		out.Articles[i] = Article{
			Title:    nfc(a.Title),
			Content:  nfc(a.Content),
			Author:   nfc(a.Author),
			Magazine: nfc(a.Magazine),
		}
	}
	return out
}

func nfc(s string) string {
	return norm.NFC.String(s)
}
