package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/periodical/internal/catalog"
	"github.com/roach88/periodical/internal/store"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the authors, magazines and articles tables",
		Long: `Create the catalog tables if they do not already exist.

Running init against an initialized database is a no-op.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}

	return cmd
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		if err := s.Setup(ctx); err != nil {
			return f.Fail(err)
		}
		return f.Success(Message{Message: fmt.Sprintf("created tables %v", store.Tables)})
	})
}

// NewDropCommand creates the drop command.
func NewDropCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop [table...]",
		Short: "Drop catalog tables",
		Long: `Drop the named catalog tables, or all of them when none are named.

Valid table names are authors, magazines and articles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrop(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runDrop(opts *RootOptions, tables []string, cmd *cobra.Command) error {
	return withSession(opts, cmd, func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error {
		if len(tables) == 0 {
			if err := s.DropAll(ctx); err != nil {
				return f.Fail(err)
			}
			return f.Success(Message{Message: fmt.Sprintf("dropped tables %v", store.Tables)})
		}

		for _, table := range tables {
			if err := s.DropTable(ctx, table); err != nil {
				return f.Fail(err)
			}
			f.VerboseLog("Dropped %s", table)
		}
		return f.Success(Message{Message: fmt.Sprintf("dropped tables %v", tables)})
	})
}
