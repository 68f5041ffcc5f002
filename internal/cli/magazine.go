package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/periodical/internal/catalog"
	"github.com/roach88/periodical/internal/model"
)

// magazineQuery renders one relationship query of a saved magazine.
type magazineQuery func(ctx context.Context, s *catalog.Session, m *model.Magazine) (any, error)

// NewMagazineCommand creates the magazine command group.
func NewMagazineCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "magazine",
		Short: "Manage magazines",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <category>",
		Short: "Create and save a magazine",
		Long: `Create and save a magazine.

The name must be between 2 and 16 characters; the category must be non-empty.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMagazineAdd(rootOpts, args[0], args[1], cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "list",
		Short:         "List all magazines",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMagazineList(rootOpts, cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a magazine row",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMagazineDelete(rootOpts, args[0], cmd)
		},
	})

	cmd.AddCommand(newMagazineQueryCommand(rootOpts, "show <id>", "Show one magazine", showMagazine))
	cmd.AddCommand(newMagazineQueryCommand(rootOpts, "articles <id>", "List article titles via the magazine join", magazineArticles))
	cmd.AddCommand(newMagazineQueryCommand(rootOpts, "contributors <id>", "List the author of every article, with repeats", magazineContributors))
	cmd.AddCommand(newMagazineQueryCommand(rootOpts, "titles <id>", "List article titles", magazineTitles))
	cmd.AddCommand(newMagazineQueryCommand(rootOpts, "prolific <id>", "List authors with more than two articles", magazineProlific))
	cmd.AddCommand(newMagazineQueryCommand(rootOpts, "report <id>", "Summarize a magazine and its relationships", magazineReport))

	return cmd
}

// newMagazineQueryCommand builds a subcommand that loads magazine <id> and
// prints the result of query.
func newMagazineQueryCommand(rootOpts *RootOptions, use, short string, query magazineQuery) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMagazineQuery(rootOpts, args[0], query, cmd)
		},
	}
}

func runMagazineAdd(opts *RootOptions, name, category string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		m, err := s.CreateMagazine(ctx, name, category)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(magazineView(m))
	})
}

func runMagazineList(opts *RootOptions, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		magazines, err := s.Magazines(ctx)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(magazineViews(magazines))
	})
}

func runMagazineDelete(opts *RootOptions, arg string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		id, err := parseID(f, arg)
		if err != nil {
			return err
		}
		n, err := s.DeleteMagazineByID(ctx, id)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(DeletedView{Entity: "magazine", ID: id, Deleted: n})
	})
}

func runMagazineQuery(opts *RootOptions, arg string, query magazineQuery, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		id, err := parseID(f, arg)
		if err != nil {
			return err
		}
		m, err := s.Magazine(ctx, id)
		if err != nil {
			return f.Fail(err)
		}
		out, err := query(ctx, s, m)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(out)
	})
}

func showMagazine(_ context.Context, _ *catalog.Session, m *model.Magazine) (any, error) {
	return magazineView(m), nil
}

func magazineArticles(ctx context.Context, s *catalog.Session, m *model.Magazine) (any, error) {
	titles, err := s.MagazineArticles(ctx, m)
	return Lines(titles), err
}

func magazineContributors(ctx context.Context, s *catalog.Session, m *model.Magazine) (any, error) {
	names, err := s.Contributors(ctx, m)
	return Lines(names), err
}

func magazineTitles(ctx context.Context, s *catalog.Session, m *model.Magazine) (any, error) {
	titles, err := s.ArticleTitles(ctx, m)
	return Lines(titles), err
}

func magazineProlific(ctx context.Context, s *catalog.Session, m *model.Magazine) (any, error) {
	authors, err := s.ContributingAuthors(ctx, m)
	return authorViews(authors), err
}

func magazineReport(ctx context.Context, s *catalog.Session, m *model.Magazine) (any, error) {
	titles, err := s.ArticleTitles(ctx, m)
	if err != nil {
		return nil, err
	}
	contributors, err := s.Contributors(ctx, m)
	if err != nil {
		return nil, err
	}
	prolific, err := s.ContributingAuthors(ctx, m)
	if err != nil {
		return nil, err
	}
	return ReportView{
		Magazine:            magazineView(m),
		Articles:            titles,
		Contributors:        contributors,
		ContributingAuthors: authorViews(prolific),
	}, nil
}
