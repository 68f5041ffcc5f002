package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/periodical/internal/catalog"
)

// NewAuthorCommand creates the author command group.
func NewAuthorCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "author",
		Short: "Manage authors",
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "add <name>",
		Short:         "Create and save an author",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorAdd(rootOpts, args[0], cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "list",
		Short:         "List all authors",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorList(rootOpts, cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "show <id>",
		Short:         "Show one author",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorShow(rootOpts, args[0], cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "articles <id>",
		Short:         "List the titles of an author's articles",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorArticles(rootOpts, args[0], cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete an author row",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorDelete(rootOpts, args[0], cmd)
		},
	})

	return cmd
}

func runAuthorAdd(opts *RootOptions, name string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		a, err := s.CreateAuthor(ctx, name)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(authorView(a))
	})
}

func runAuthorList(opts *RootOptions, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		authors, err := s.Authors(ctx)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(authorViews(authors))
	})
}

func runAuthorShow(opts *RootOptions, arg string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		id, err := parseID(f, arg)
		if err != nil {
			return err
		}
		a, err := s.Author(ctx, id)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(authorView(a))
	})
}

func runAuthorArticles(opts *RootOptions, arg string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		id, err := parseID(f, arg)
		if err != nil {
			return err
		}
		a, err := s.Author(ctx, id)
		if err != nil {
			return f.Fail(err)
		}
		titles, err := s.AuthorArticles(ctx, a)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(Lines(titles))
	})
}

func runAuthorDelete(opts *RootOptions, arg string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		id, err := parseID(f, arg)
		if err != nil {
			return err
		}
		n, err := s.DeleteAuthorByID(ctx, id)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(DeletedView{Entity: "author", ID: id, Deleted: n})
	})
}
