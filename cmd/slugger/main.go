package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/slugger/internal/pipeline"
	"github.com/ajitpratap0/slugger/pkg/config"
	"github.com/ajitpratap0/slugger/pkg/logger"
	"github.com/ajitpratap0/slugger/pkg/metrics"
	"github.com/ajitpratap0/slugger/pkg/models"
	"github.com/ajitpratap0/slugger/pkg/observability"
	"github.com/ajitpratap0/slugger/pkg/render"
)

var version = "0.1.0"

// globalFlags holds the persistent flags shared by every analytics command.
type globalFlags struct {
	configFile  string
	dataPath    string
	limit       int
	compression string
	logLevel    string
	output      string
	trace       bool
	tracePretty bool
	metrics     bool
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "slugger",
		Short: "Slugger - in-memory baseball batting analytics",
		Long: `Slugger loads a Lahman-style Batting.csv into memory and answers questions about it:
list players, sort by any stat, look a player up by id, rank the top k by a stat
and compute team batting averages.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "Path to a YAML configuration file")
	pf.StringVarP(&flags.dataPath, "data", "d", "", "Path to Batting.csv (.gz, .zst and .lz4 are decompressed)")
	pf.IntVarP(&flags.limit, "limit", "n", 0, "Number of data rows to read; 0 reads the whole file (default 20 without a config file)")
	pf.StringVar(&flags.compression, "compression", "", "Input compression: auto, none, gzip, zstd, lz4")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVarP(&flags.output, "output", "o", "", "Output format (text, json)")
	pf.BoolVar(&flags.trace, "trace", false, "Print a trace span per operation to stderr")
	pf.BoolVar(&flags.tracePretty, "trace-pretty", false, "Indent trace spans (implies --trace)")
	pf.BoolVar(&flags.metrics, "metrics", false, "Print Prometheus metrics to stderr after the command")

	root.AddCommand(
		newVersionCommand(),
		newFieldsCommand(flags),
		newListCommand(flags),
		newSortCommand(flags),
		newFindCommand(flags),
		newTopCommand(flags),
		newTeamsCommand(flags),
		newDemoCommand(flags),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Slugger v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func newFieldsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the fields usable as sort and ranking keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			r, err := render.New(cfg.Output.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.Fields(models.Fields())
		},
	}
}

func newListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List loaded players in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, "list", func(ctx context.Context, s *pipeline.Session) error {
				return s.List(ctx)
			})
		},
	}
}

func newSortCommand(flags *globalFlags) *cobra.Command {
	var ascending bool

	cmd := &cobra.Command{
		Use:   "sort <field>",
		Short: "Sort players by a field and list them",
		Long: `Sort players by a field (stable merge sort) and list them.
Sorting is descending unless --asc is given. Run "slugger fields" for valid keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, "sort", func(ctx context.Context, s *pipeline.Session) error {
				if err := s.Sort(ctx, args[0], !ascending); err != nil {
					return err
				}
				return s.List(ctx)
			})
		},
	}
	cmd.Flags().BoolVar(&ascending, "asc", false, "Sort ascending instead of descending")
	return cmd
}

func newFindCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "find <player-id>...",
		Short: "Look players up by id with binary search",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, "find", func(ctx context.Context, s *pipeline.Session) error {
				for _, id := range args {
					if _, err := s.Find(ctx, id); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newTopCommand(flags *globalFlags) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "top <field>",
		Short: "Rank the top k players by a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, "top", func(ctx context.Context, s *pipeline.Session) error {
				return s.Top(ctx, k, args[0])
			})
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 3, "Number of players to rank")
	return cmd
}

func newTeamsCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Show the mean batting average of every team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, flags, "teams", func(ctx context.Context, s *pipeline.Session) error {
				return s.Teams(ctx)
			})
		},
	}
}

func newDemoCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every operation in sequence on the data file",
		Long: `Load the data file, list it, sort it by batting average and by home runs,
search for ` + pipeline.DemoPresentID + ` and ` + pipeline.DemoMissingID + `, rank the top 3 by home runs
and by average, and show team averages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, flags, "demo", func(ctx context.Context, s *pipeline.Session) error {
				return s.Demo(ctx)
			})
		},
	}
}

// withSession loads the data file and then runs fn.
func withSession(cmd *cobra.Command, flags *globalFlags, name string, fn func(context.Context, *pipeline.Session) error) error {
	return runSession(cmd, flags, name, func(ctx context.Context, s *pipeline.Session) error {
		if err := s.Load(ctx); err != nil {
			return err
		}
		return fn(ctx, s)
	})
}

// runSession resolves configuration, sets up logging, tracing and metrics,
// builds a session and runs fn against it.
func runSession(cmd *cobra.Command, flags *globalFlags, name string, fn func(context.Context, *pipeline.Session) error) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Encoding:    cfg.Logging.Encoding,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	}); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.WithValue(cmd.Context(), logger.CommandKey, name)
	ctx = context.WithValue(ctx, logger.DatasetKey, cfg.Data.Path)
	log := logger.WithContext(ctx)

	tracer, err := observability.NewTracer(observability.TracingConfig{
		Enabled:        cfg.Observability.Tracing,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: version,
		Writer:         cmd.ErrOrStderr(),
		PrettyPrint:    cfg.Observability.PrettyTrace,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := tracer.Shutdown(context.Background()); err != nil {
			log.Warn("failed to shut down tracer", zap.Error(err))
		}
	}()

	var reg *metrics.Registry
	if cfg.Observability.Metrics {
		reg = metrics.NewRegistry()
	}

	r, err := render.New(cfg.Output.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	session, err := pipeline.NewSession(pipeline.Options{
		Config:   cfg,
		Renderer: r,
		Tracer:   tracer,
		Metrics:  reg,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	log.Debug("running command", zap.Int("limit", cfg.Data.Limit), zap.String("output", cfg.Output.Format))
	runErr := fn(ctx, session)

	if reg != nil {
		if err := reg.WriteText(cmd.ErrOrStderr()); err != nil {
			log.Warn("failed to write metrics", zap.Error(err))
		}
	}
	return runErr
}

// resolveConfig loads the configuration file, if any, over the defaults and
// applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configFile != "" {
		loaded, err := config.LoadFile(flags.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("data") {
		cfg.Data.Path = flags.dataPath
	}
	if changed("limit") {
		cfg.Data.Limit = flags.limit
	}
	if changed("compression") {
		cfg.Data.Compression = flags.compression
	}
	if changed("log-level") {
		cfg.Logging.Level = strings.ToLower(flags.logLevel)
	}
	if changed("output") {
		cfg.Output.Format = strings.ToLower(flags.output)
	}
	if changed("trace") {
		cfg.Observability.Tracing = flags.trace
	}
	if changed("trace-pretty") {
		cfg.Observability.PrettyTrace = flags.tracePretty
		if flags.tracePretty {
			cfg.Observability.Tracing = true
		}
	}
	if changed("metrics") {
		cfg.Observability.Metrics = flags.metrics
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
