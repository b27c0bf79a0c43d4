// Package cli wires the listing pipeline behind the dps command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rgoodwin/dps/internal/docker"
	"github.com/rgoodwin/dps/internal/group"
	"github.com/rgoodwin/dps/internal/render"
)

type options struct {
	running bool
	noColor bool
	flat    bool
	verbose bool
}

// New builds the root command. dps takes no positional arguments; the
// zero-flag invocation prints the full grouped table.
func New(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "dps",
		Short:         "List Docker containers grouped by compose working directory",
		Long: `dps shells out to the docker CLI, classifies each container by its status
text, groups containers by their compose project working directory, and
prints a color-coded table.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(opts.verbose)
			src := &docker.CLI{All: !opts.running}
			return run(cmd.Context(), src, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.running, "running", false, "only show running containers")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.flat, "flat", false, "skip group headers, print one flat table")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// run executes the pipeline: load, group, render. It is separated from the
// cobra plumbing so tests can drive it with a canned source.
func run(ctx context.Context, src docker.Source, w io.Writer, opts *options) error {
	records, err := docker.Load(ctx, src)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "No containers found")
		return nil
	}

	groups := group.ByWorkdir(records)
	render.Table(w, groups, render.Options{
		NoColor: opts.noColor,
		Flat:    opts.flat,
	})
	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}
