// Package cli provides the command-line interface for spritesize.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/spritesize/internal/batch"
	"github.com/jmylchreest/spritesize/internal/resample"
	"github.com/jmylchreest/spritesize/internal/version"
)

// resolveDir locates the sprite directory. Tests replace it.
var resolveDir = ExecutableDir

// options holds the values of the persistent flags.
type options struct {
	verbose bool
	quiet   bool
	engine  string
}

// NewRootCmd builds the spritesize command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "spritesize",
		Short: "Resize numbered sprites to 128x128",
		Long: fmt.Sprintf(`spritesize resizes the sprites %s to %s that sit next to the
executable to %dx%d pixels using a Lanczos filter, overwriting each file in place.

Missing sprites are reported and skipped. A sprite that cannot be decoded or
written is reported and the batch carries on with the next one.`,
			batch.Filename(batch.FirstIndex), batch.Filename(batch.LastIndex),
			batch.TargetWidth, batch.TargetHeight),
		Args:         cobra.NoArgs,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(cmd, opts)
		},
	}

	registerFlags(rootCmd.PersistentFlags(), opts)
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// registerFlags adds the global flags to fs.
func registerFlags(fs *pflag.FlagSet, opts *options) {
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "only report errors")
	fs.StringVar(&opts.engine, "engine", resample.DefaultEngine, fmt.Sprintf("resample engine (%s)", strings.Join(resample.Names(), ", ")))
}

// runResize executes the batch over the executable's directory.
func runResize(cmd *cobra.Command, opts *options) error {
	resampler, err := resample.New(opts.engine)
	if err != nil {
		return err
	}

	dir, err := resolveDir()
	if err != nil {
		return fmt.Errorf("failed to locate sprite directory: %w", err)
	}

	out := cmd.OutOrStdout()
	logger := newLogger(out, opts.verbose, opts.quiet)
	logger.Debug("scanning sprites", "dir", dir, "engine", resampler.Name())

	rz := batch.NewResizer(dir,
		batch.WithResampler(resampler),
		batch.WithLogger(logger),
	)
	summary := rz.Run(cmd.Context())

	logger.Info("batch complete",
		"resized", summary.Resized(),
		"missing", summary.NotFound(),
		"failed", summary.Failed(),
	)

	if opts.verbose {
		fmt.Fprint(out, renderReport(&summary))
	}

	// Per-file failures never change the exit status.
	return nil
}

// ExecutableDir returns the directory containing the running executable,
// with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to determine executable path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	return filepath.Dir(resolved), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
