package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/napalmtorch/slugalloc/internal/logger"
	"github.com/napalmtorch/slugalloc/region/alloc"
	"github.com/napalmtorch/slugalloc/shell"
)

const probeSize = 512

// options holds the flag values for one invocation.
type options struct {
	bottom  string
	top     string
	log     bool
	logDir  string
	noColor bool
	noProbe bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "slugsh",
		Short: "Interactive shell for the slug memory allocator",
		Long: `slugsh manages a fixed address range with a compacting allocator and
reads commands from standard input:

  CLS            clear the screen
  ALLOC <size>   allocate size bytes
  FREE <offset>  free the chunk starting at offset (decimal)

Example:
  slugsh --bottom 0x100000 --top 0x1000000
  slugsh --log-file ~/.slugsh/logs`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.bottom, "bottom", "0x100000", "Lowest managed address")
	cmd.PersistentFlags().StringVar(&opts.top, "top", "0x1000000", "One past the highest managed address")
	cmd.PersistentFlags().BoolVar(&opts.log, "log", true, "Print allocator diagnostics to the terminal")
	cmd.PersistentFlags().StringVar(&opts.logDir, "log-file", "", "Directory for JSON log files")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&opts.noProbe, "no-probe", false, "Skip the startup allocate/free probe")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseAddr accepts 0x-prefixed hex, 0-prefixed octal, or decimal.
func parseAddr(flag, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s %q: %w", flag, s, err)
	}
	return uint32(v), nil
}

func runShell(in io.Reader, out io.Writer, opts *options) error {
	bottom, err := parseAddr("bottom", opts.bottom)
	if err != nil {
		return err
	}
	top, err := parseAddr("top", opts.top)
	if err != nil {
		return err
	}

	con := newTermConsole(out, opts.noColor)
	con.Banner()

	logOpts := logger.Options{
		Enabled: opts.log || opts.logDir != "",
		LogDir:  opts.logDir,
	}
	if opts.log {
		logOpts.Console = out
	}
	closeLog, err := logger.Init(logOpts)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	a, err := alloc.New(alloc.Config{Start: bottom, End: top, Logger: logger.L})
	if err != nil {
		return err
	}
	defer a.Close()

	if !opts.noProbe {
		if err := probe(a); err != nil {
			logger.Warn("startup probe failed", "err", err)
		}
	}

	return shell.New(a, shell.Options{Console: con, Logger: logger.L}).Run(in)
}

// probe allocates and frees one chunk to exercise the allocator before the
// shell starts.
func probe(a *alloc.Allocator) error {
	c, err := a.Allocate(probeSize, false, "boot_probe")
	if err != nil {
		return err
	}
	if err := a.Free(c); err != nil {
		return err
	}
	if a.Len() != 0 || a.Frontier() != a.End() {
		return errors.New("allocator not empty after probe")
	}
	return nil
}
