package main

import (
	"fmt"
	"io"
	"os"

	"github.com/five82/tcutil/internal/config"
	"github.com/five82/tcutil/internal/discovery"
	"github.com/five82/tcutil/internal/processing"
	"github.com/five82/tcutil/internal/streamio"
	"github.com/five82/tcutil/internal/util"
	"github.com/spf13/cobra"
)

// convertArgs holds the parsed flags of the convert command.
type convertArgs struct {
	to        string
	rate      string
	fix       bool
	compress  bool
	force     bool
	verify    bool
	outputDir string
}

func newConvertCmd(g *globalArgs, stdout, stderr io.Writer) *cobra.Command {
	var ca convertArgs

	cmd := &cobra.Command{
		Use:   "convert <input> [output]",
		Short: "Convert between timecode v1 and v2",
		Long: `Convert a timecode file to the other format, or to the format given by --to.

Without an output argument the result is written next to the input with
".v1" or ".v2" inserted before the extension. "-" as output writes to
standard output and "-" as input reads standard input. A directory input
converts every timecode file found in it. Existing files are never replaced
unless --force is given.

--rate sets the default frame rate of the output. With --fix, frames that
ran at the input's default rate are moved onto the new rate while explicit
overrides keep theirs.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, g, &ca, args, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&ca.to, "to", "t", "", "Output format: v1 or v2 (default: the other format)")
	f.StringVarP(&ca.rate, "rate", "r", "", `Target frame rate, decimal or ratio such as "24000/1001"`)
	f.BoolVar(&ca.fix, "fix", false, "Move default-rate frames onto --rate")
	f.BoolVar(&ca.compress, "xz", false, "Write xz-compressed output")
	f.BoolVar(&ca.force, "force", false, "Overwrite existing output files")
	f.BoolVar(&ca.verify, "verify", false, "Re-read written files and compare them with the source")
	f.StringVarP(&ca.outputDir, "output-dir", "o", "", "Directory for converted files")

	return cmd
}

func runConvert(cmd *cobra.Command, g *globalArgs, ca *convertArgs, args []string, stdout, stderr io.Writer) error {
	inputPath := args[0]
	outputArg := ""
	if len(args) > 1 {
		outputArg = args[1]
	}

	inputIsDir := false
	if inputPath != streamio.Stdio {
		info, err := os.Stat(inputPath)
		if err != nil {
			return fmt.Errorf("input path does not exist: %s", inputPath)
		}
		inputIsDir = info.IsDir()
	}

	target, err := util.ResolveOutputArg(inputPath, outputArg)
	if err != nil {
		return fmt.Errorf("invalid output %q: %w", outputArg, err)
	}

	s, err := g.open(cmd, stdout, stderr, openOptions{
		runLog:     true,
		stdoutBusy: target.Stdout || (inputPath == streamio.Stdio && outputArg == "" && ca.outputDir == ""),
		apply: func(cmd *cobra.Command, cfg *config.Config) error {
			return ca.apply(cmd, cfg)
		},
	})
	if err != nil {
		return err
	}
	defer s.close()

	// Piping stdin through convert without an output dir goes to stdout.
	if inputPath == streamio.Stdio && outputArg == "" && s.cfg.OutputDir == "" {
		target.Stdout = true
	}

	var filesToProcess []string
	if inputIsDir {
		result, err := discovery.FindTimecodeFiles(inputPath, s.log)
		if err != nil {
			return err
		}
		filesToProcess = result.Paths()
	} else {
		filesToProcess = []string{inputPath}
		s.log.Info("Processing single file: %s", inputPath)
	}

	_, err = processing.ProcessFiles(cmd.Context(), s.cfg, filesToProcess, target, s.rep, s.log)
	return err
}

// apply copies explicitly set convert flags over the loaded config.
func (ca *convertArgs) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("to") {
		cfg.OutputVersion = ca.to
	}
	if f.Changed("rate") {
		rate, err := util.ParseFrameRate(ca.rate)
		if err != nil {
			return err
		}
		cfg.TargetRate = rate
	}
	if f.Changed("fix") {
		cfg.Fix = ca.fix
	}
	if f.Changed("xz") {
		cfg.Compress = ca.compress
	}
	if f.Changed("force") {
		cfg.Overwrite = ca.force
	}
	if f.Changed("verify") {
		cfg.Verify = ca.verify
	}
	if f.Changed("output-dir") {
		cfg.OutputDir = ca.outputDir
	}
	return nil
}
