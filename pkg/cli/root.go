// Package cli implements the mockdata command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockdata/internal/cliconfig"
	"github.com/getmockd/mockdata/pkg/logging"
	"github.com/getmockd/mockdata/pkg/random"
	"github.com/getmockd/mockdata/pkg/template"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// app holds the state shared by every command of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfg    *cliconfig.Config
	logger *slog.Logger

	// Persistent flags
	seed      uint64
	maxDepth  int
	format    string
	indent    int
	logLevel  string
	logFormat string
}

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "mockdata",
		Short: "mockdata generates synthetic data from templates",
		Long: `mockdata generates synthetic JSON and YAML documents from templates.

Template keys may carry a rule suffix ("name|min-max", "id|+1",
"price|1-100.2") and string values may hold placeholders ("@email",
"@integer(1, 10)", "@../sibling"). Templates are JSON or YAML files.

Settings come from flags, MOCKDATA_* environment variables, a local
.mockdatarc.yaml and the global mockdata/config.yaml, in that order.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.Uint64Var(&a.seed, "seed", 0, "Seed for reproducible output (default: random)")
	pf.IntVar(&a.maxDepth, "max-depth", cliconfig.DefaultMaxDepth, "Maximum template nesting depth")
	pf.StringVarP(&a.format, "format", "f", cliconfig.DefaultFormat, "Output format: json or yaml")
	pf.IntVar(&a.indent, "indent", cliconfig.DefaultIndent, "Indentation width, 0 for compact JSON")
	pf.StringVar(&a.logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", cliconfig.DefaultLogFormat, "Log format: text or json")

	root.AddCommand(
		newGenerateCmd(a),
		newRandomCmd(a),
		newListCmd(a),
		newCheckCmd(a),
		newInitCmd(a),
		newConfigCmd(a),
	)
	return root
}

// loadConfig resolves the layered configuration, applies changed flags on
// top and builds the logger.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := cliconfig.LoadAll()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	fromFlags := &cliconfig.Config{SetFields: make(map[string]bool)}
	if flags.Changed("seed") {
		fromFlags.Seed = a.seed
		fromFlags.HasSeed = true
	}
	if flags.Changed("max-depth") {
		fromFlags.MaxDepth = a.maxDepth
		fromFlags.SetFields["maxDepth"] = true
	}
	if flags.Changed("format") {
		fromFlags.Format = a.format
	}
	if flags.Changed("indent") {
		fromFlags.Indent = a.indent
		fromFlags.SetFields["indent"] = true
	}
	if flags.Changed("log-level") {
		fromFlags.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		fromFlags.LogFormat = a.logFormat
	}
	cliconfig.MergeConfig(cfg, fromFlags, cliconfig.SourceFlag)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.FromStrings(cfg.LogLevel, cfg.LogFormat, a.stderr)
	a.logger.Debug("configuration loaded", "sources", cfg.Sources)
	return nil
}

// newEngine creates a generator seeded from the configuration.
func (a *app) newEngine() (*template.Engine, *random.Random) {
	var opts []random.Option
	if a.cfg.HasSeed {
		opts = append(opts, random.WithSeed(a.cfg.Seed))
	}
	r := random.New(opts...)
	e := template.New(
		template.WithProvider(r),
		template.WithMaxDepth(a.cfg.MaxDepth),
		template.WithLogger(a.logger),
	)
	return e, r
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// Main runs the CLI against the process arguments and standard streams.
func Main() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}
