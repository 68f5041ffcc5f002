package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/periodical/internal/catalog"
	"github.com/roach88/periodical/internal/config"
	"github.com/roach88/periodical/internal/logger"
	"github.com/roach88/periodical/internal/store"
)

// sessionFunc is the body of a command that needs an open session.
type sessionFunc func(ctx context.Context, s *catalog.Session, f *OutputFormatter) error

// newFormatter builds the formatter for cmd from the global flags.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// withSession loads configuration, opens the database, runs fn with a fresh
// session, and closes the database. Logs go to the command's stderr.
func withSession(opts *RootOptions, cmd *cobra.Command, fn sessionFunc) error {
	f := newFormatter(opts, cmd)

	cfg, err := config.Load()
	if err != nil {
		return f.FailWith(ErrCodeGeneric, ExitCommandError, err)
	}
	if opts.Database != "" {
		cfg.Database.Path = opts.Database
	}

	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return f.FailWith(ErrCodeGeneric, ExitCommandError, err)
	}
	if opts.Verbose {
		log = logger.Verbose(log)
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return f.FailWith(ErrCodeDatabase, ExitCommandError, fmt.Errorf("failed to open database: %w", err))
		}
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return f.FailWith(ErrCodeDatabase, ExitCommandError, err)
	}
	defer st.Close()

	s := catalog.NewSession(st, catalog.WithLogger(log))
	f.VerboseLog("Opened %s (session %s)", cfg.Database.Path, s.ID())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, s, f)
}

// parseID parses a positive integer id argument.
func parseID(f *OutputFormatter, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, f.FailWith(ErrCodeArgs, ExitCommandError, fmt.Errorf("invalid id %q: must be a positive integer", arg))
	}
	return id, nil
}
