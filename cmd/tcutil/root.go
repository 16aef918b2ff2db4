package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/five82/tcutil/internal/config"
	"github.com/five82/tcutil/internal/logging"
	"github.com/five82/tcutil/internal/reporter"
	"github.com/spf13/cobra"
)

// globalArgs holds the flags shared by every command.
type globalArgs struct {
	configPath string
	logDir     string
	verbose    bool
	noLog      bool
	json       bool
	frames     int
}

// session is the per-command state built from config and flags.
type session struct {
	cfg *config.Config
	log *logging.Logger
	rep reporter.Reporter
}

func (s *session) close() {
	if s.log != nil {
		s.log.Info("tcutil finished")
		_ = s.log.Close()
	}
	logging.SetGlobal(nil)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalArgs{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Inspect and convert Matroska v1/v2 timecode files",
		Long: `tcutil reads timecode files in the v1 (default rate plus overrides) and
v2 (one timestamp per frame) formats. It prints summaries, maps frames to
times and back, and converts between the formats, optionally moving the
default frame rate onto a new one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file")
	pf.StringVarP(&g.logDir, "log-dir", "l", "", "Directory for run logs")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose output for troubleshooting")
	pf.BoolVar(&g.noLog, "no-log", false, "Disable run log creation")
	pf.BoolVar(&g.json, "json", false, "Emit newline-delimited JSON events")
	pf.IntVarP(&g.frames, "frames", "f", 0, "Total frame count, pads v1 input with default-rate frames")

	root.AddCommand(
		newInfoCmd(g, stdout, stderr),
		newConvertCmd(g, stdout, stderr),
		newFrameCmd(g, stdout, stderr),
		newTimeCmd(g, stdout, stderr),
		newVersionCmd(stdout),
	)
	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(stdout, "%s version %s\n", appName, appVersion)
		},
	}
}

// openOptions controls how a command's session is set up.
type openOptions struct {
	// runLog writes a run log even without --log-dir.
	runLog bool
	// stdoutBusy routes terminal output to stderr because the timecode itself
	// is written to stdout.
	stdoutBusy bool
	// apply copies command-specific flags into the config.
	apply func(cmd *cobra.Command, cfg *config.Config) error
}

// open loads the config file and environment, applies explicitly set flags on
// top, and builds the logger and reporter.
func (g *globalArgs) open(cmd *cobra.Command, stdout, stderr io.Writer, opts openOptions) (*session, error) {
	cfg, err := config.Load(g.configPath, "", "")
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-dir") {
		cfg.LogDir = g.logDir
	}
	if flags.Changed("verbose") {
		cfg.Verbose = g.verbose
	}
	if flags.Changed("no-log") {
		cfg.NoLog = g.noLog
	}
	if flags.Changed("json") {
		cfg.JSON = g.json
	}
	if flags.Changed("frames") {
		cfg.TotalFrames = g.frames
	}
	if opts.apply != nil {
		if err := opts.apply(cmd, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &session{cfg: cfg}

	if !cfg.NoLog && (opts.runLog || cfg.LogDir != "") {
		logDir := cfg.LogDir
		if logDir == "" {
			logDir = defaultLogDir()
		}
		s.log, err = logging.Setup(logging.Options{
			Dir:        logDir,
			Level:      cfg.EffectiveLogLevel(),
			Format:     cfg.LogFormat,
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to setup logging: %w", err)
		}
		logging.SetGlobal(s.log)
	}

	out := stdout
	if opts.stdoutBusy {
		out = stderr
	}

	var rep reporter.Reporter
	if cfg.JSON {
		rep = reporter.NewJSONReporterWithWriter(out)
	} else {
		rep = reporter.NewTerminalReporterWithWriters(out, stderr, cfg.Verbose)
	}
	if s.log != nil {
		rep = reporter.NewCompositeReporter(rep, reporter.NewLogReporter(s.log))
		rep.Verbose(fmt.Sprintf("Run log: %s", s.log.FilePath()))
	}
	s.rep = rep

	return s, nil
}

// defaultLogDir is the per-user cache directory, or the working directory
// when none is available.
func defaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "logs"
	}
	return filepath.Join(dir, appName, "logs")
}
