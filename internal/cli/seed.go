package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/periodical/internal/catalog"
	"github.com/roach88/periodical/internal/fixture"
)

// SeedResult is the output of seed.
type SeedResult struct {
	File      string           `json:"file"`
	Authors   map[string]int64 `json:"authors"`
	Magazines map[string]int64 `json:"magazines"`
	Articles  []int64          `json:"articles"`
}

func (r SeedResult) Text() string {
	return fmt.Sprintf("seeded %s: %d author(s), %d magazine(s), %d article(s)\n",
		r.File, len(r.Authors), len(r.Magazines), len(r.Articles))
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Load authors, magazines and articles from a YAML fixture",
		Long: `Load a YAML fixture into the database.

The fixture is validated before anything is written: schema, unique keys
and article references. Rows are saved in order (authors, magazines,
articles); rows saved before a storage failure remain.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSeed(opts *RootOptions, path string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		fx, err := fixture.Load(path)
		if err != nil {
			return f.Fail(err)
		}
		f.VerboseLog("Loaded %d author(s), %d magazine(s), %d article(s) from %s",
			len(fx.Authors), len(fx.Magazines), len(fx.Articles), path)

		res, err := fixture.Apply(ctx, s, fx)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(SeedResult{
			File:      path,
			Authors:   res.Authors,
			Magazines: res.Magazines,
			Articles:  res.Articles,
		})
	})
}
