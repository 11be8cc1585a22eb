// Package cmd provides the root command and CLI setup for fndecorate.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mouse-blink/fndecorate/internal/adapter"
	"github.com/mouse-blink/fndecorate/internal/controller"
	"github.com/mouse-blink/fndecorate/internal/domain"
	m "github.com/mouse-blink/fndecorate/internal/model"
	"github.com/spf13/cobra"
)

var workflow domain.Workflow
var configLoader adapter.ConfigLoader

func init() {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	ui := controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))

	configLoader = adapter.NewConfigLoader()
	workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewOverlayStore(fsAdapter),
		ui,
		domain.NewTransformer(adapter.NewLocalGoFileAdapter()),
	)
}

var parallelFlag int
var excludeFlags []string
var cacheFlag string
var verboseFlag bool
var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fndecorate [paths...]",
		Short: "Apply //fndecorate:use decorators to Go functions",
		Long: `fndecorate wraps Go functions annotated with //fndecorate:use directives
in calls to decorator functions. Sources are never modified: transformed
copies are written to a cache directory together with an overlay file for
"go build -overlay".

  go build -overlay .fndecorate/overlay.json ./...

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, args)
			if err != nil {
				return err
			}

			return workflow.Generate(domain.GenerateArgs{
				ListArgs: opts.listArgs(),
				Cache:    opts.cache,
			})
		},
	}
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files transformed in parallel")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.PersistentFlags().StringVarP(&cacheFlag, "cache", "c", domain.DefaultCache, "directory for transformed files and overlay.json")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log progress at debug level")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "configuration file (default "+adapter.DefaultConfigFile+" if present)")

	return cmd
}

type options struct {
	paths   []m.Path
	exclude []string
	threads int
	cache   m.Path
}

func (o options) listArgs() domain.ListArgs {
	return domain.ListArgs{Paths: o.paths, Exclude: o.exclude, Threads: o.threads}
}

// resolveOptions merges the configuration file with the command line. Flags
// that were set explicitly win over file values. It also configures logging.
func resolveOptions(cmd *cobra.Command, args []string) (options, error) {
	path, required := m.Path(adapter.DefaultConfigFile), false
	if configFlag != "" {
		path, required = m.Path(configFlag), true
	}

	cfg, err := configLoader.Load(path, required)
	if err != nil {
		return options{}, err
	}

	flags := cmd.Flags()

	opts := options{
		paths:   parsePaths(args),
		exclude: cfg.Exclude,
		threads: parallelFlag,
		cache:   m.Path(cacheFlag),
	}

	if flags.Changed("exclude") {
		opts.exclude = excludeFlags
	}

	if !flags.Changed("parallel") && cfg.Parallel > 0 {
		opts.threads = cfg.Parallel
	}

	if !flags.Changed("cache") && cfg.Cache != "" {
		opts.cache = m.Path(cfg.Cache)
	}

	if opts.threads < 1 {
		return options{}, fmt.Errorf("--parallel must be at least 1, got %d", opts.threads)
	}

	verbose := cfg.Verbose
	if flags.Changed("verbose") {
		verbose = verboseFlag
	}

	setupLogging(cmd.ErrOrStderr(), verbose)

	return opts, nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	var abort *m.DebugAbort
	if errors.As(err, &abort) {
		fmt.Fprintln(w, abort.Error())
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
}
