package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/periodical/internal/catalog"
)

// ArticleAddOptions holds flags for article add.
type ArticleAddOptions struct {
	Title      string
	Content    string
	AuthorID   int64
	MagazineID int64
}

// NewArticleCommand creates the article command group.
func NewArticleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article",
		Short: "Manage articles",
	}

	addOpts := &ArticleAddOptions{}
	add := &cobra.Command{
		Use:   "add",
		Short: "Create and save an article",
		Long: `Create and save an article written by --author for --magazine.

Both ids must be positive; they are not checked against existing rows.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticleAdd(rootOpts, addOpts, cmd)
		},
	}
	add.Flags().StringVar(&addOpts.Title, "title", "", "article title")
	add.Flags().StringVar(&addOpts.Content, "content", "", "article content")
	add.Flags().Int64Var(&addOpts.AuthorID, "author", 0, "author id")
	add.Flags().Int64Var(&addOpts.MagazineID, "magazine", 0, "magazine id")
	_ = add.MarkFlagRequired("title")
	_ = add.MarkFlagRequired("content")
	_ = add.MarkFlagRequired("author")
	_ = add.MarkFlagRequired("magazine")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:           "list",
		Short:         "List all articles",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticleList(rootOpts, cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "show <id>",
		Short:         "Show one article",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticleShow(rootOpts, args[0], cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "author <id>",
		Short:         "Show the name of an article's author",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticleAuthor(rootOpts, args[0], cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete an article row",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArticleDelete(rootOpts, args[0], cmd)
		},
	})

	return cmd
}

func runArticleAdd(opts *RootOptions, addOpts *ArticleAddOptions, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		a, err := s.CreateArticle(ctx, addOpts.Title, addOpts.Content, addOpts.AuthorID, addOpts.MagazineID)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(articleView(a))
	})
}

func runArticleList(opts *RootOptions, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		articles, err := s.Articles(ctx)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(articleViews(articles))
	})
}

func runArticleShow(opts *RootOptions, arg string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		id, err := parseID(f, arg)
		if err != nil {
			return err
		}
		a, err := s.Article(ctx, id)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(articleView(a))
	})
}

func runArticleAuthor(opts *RootOptions, arg string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		id, err := parseID(f, arg)
		if err != nil {
			return err
		}
		a, err := s.Article(ctx, id)
		if err != nil {
			return f.Fail(err)
		}
		name, err := s.ArticleAuthorName(ctx, a)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(AuthorView{ID: a.AuthorID(), Name: name})
	})
}

func runArticleDelete(opts *RootOptions, arg string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		id, err := parseID(f, arg)
		if err != nil {
			return err
		}
		n, err := s.DeleteArticleByID(ctx, id)
		if err != nil {
			return f.Fail(err)
		}
		return f.Success(DeletedView{Entity: "article", ID: id, Deleted: n})
	})
}
