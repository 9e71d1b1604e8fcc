package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-merger/internal/config"
	"github.com/nguyentantai21042004/transcript-merger/internal/logger"
	"github.com/nguyentantai21042004/transcript-merger/internal/processor"
)

var (
	cfgFile    string
	verbosity  int
	dedupLevel string
	format     string
	normalize  bool
	noProgress bool

	rootCmd = &cobra.Command{
		Use:   "transcript-merger INPUT OUTPUT",
		Short: "Merge overlapping transcript lines and remove repeated words",
		Long: `transcript-merger joins the lines of a streaming transcript, where each
line repeats the tail of the previous one, into a single text. Words repeated
back to back are then dropped (or every repeat, with --dedup all) and the
result is written to OUTPUT.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMerge,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "YAML config file")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO/DEBUG, -vv DEBUG)")
	flags.StringVar(&dedupLevel, "dedup", "", "Deduplication level: consecutive or all (default consecutive)")
	flags.StringVar(&format, "format", "", "Output format: text or docx (default text)")
	flags.BoolVar(&normalize, "normalize", false, "Normalize input to Unicode NFC before merging")
	flags.BoolVar(&noProgress, "no-progress", false, "Disable progress bars")

	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	_, _, proc, err := setup(cmd)
	if err != nil {
		return err
	}
	return proc.Process(cmd.Context(), args[0], args[1])
}

// setup loads configuration, applies flag overrides and builds the processor
func setup(cmd *cobra.Command) (*config.Config, logger.Logger, processor.Processor, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dedup") {
		cfg.Merge.Dedup = dedupLevel
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("normalize") {
		cfg.Input.NormalizeUnicode = normalize
	}
	if noProgress {
		cfg.Progress.Disabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid options: %w", err)
	}

	log := logger.New(logger.LevelForVerbosity(cfg.Logging.Level, verbosity))
	log.Debug(cmd.Context(), "Command %s started (dedup=%s, format=%s)", cmd.Name(), cfg.Merge.Dedup, cfg.Output.Format)

	var opts []processor.Option
	if !cfg.Progress.Disabled && isTerminal(os.Stderr) {
		opts = append(opts, processor.WithProgress(os.Stderr))
	}

	proc, err := processor.New(cfg, log, opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, proc, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
