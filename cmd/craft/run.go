package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"spacecraft/internal/config"
	"spacecraft/internal/craft"
	"spacecraft/internal/interpreter"
	"spacecraft/internal/logging"
	"spacecraft/internal/output"
)

type runOptions struct {
	configPath string
	start      string
	facing     string
	script     string
	format     string
	logLevel   string
	maxSteps   int
	strict     bool
	trace      bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [commands...]",
		Short: "Apply a batch of commands and print the final state",
		Long: `Applies commands given as arguments ("f r u b l" or "f,r,u,b,l") or read
from a script file. Scripts may use "repeat N { ... }" and "def name = { ... }".`,
		Example: `  craft run f r u b l
  craft run --start 3,4,5 --facing Down b u
  craft run --script flight.craft --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommands(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	flags.StringVar(&opts.start, "start", "", "starting coordinate as x,y,z (default 0,0,0)")
	flags.StringVar(&opts.facing, "facing", "", "starting facing (default North)")
	flags.StringVarP(&opts.script, "script", "s", "", "read commands from a script file")
	flags.StringVarP(&opts.format, "format", "o", "", "output format: text, json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	flags.BoolVar(&opts.strict, "strict", false, "fail on unknown command symbols instead of skipping them")
	flags.BoolVar(&opts.trace, "trace", false, "print every applied step to stderr")
	flags.IntVar(&opts.maxSteps, "max-steps", interpreter.DefaultMaxSteps, "stop after this many steps (0 for no limit)")
	return cmd
}

// resolveConfig layers flags over the config file over defaults.
func resolveConfig(cmd *cobra.Command, opts runOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		c, err := craft.ParseCoordinate(opts.start)
		if err != nil {
			return config.Config{}, fmt.Errorf("--start: %w", err)
		}
		cfg.Start = c
	}
	if flags.Changed("facing") {
		f, err := craft.ParseFacing(opts.facing)
		if err != nil {
			return config.Config{}, fmt.Errorf("--facing: %w", err)
		}
		cfg.Facing = f
	}
	if flags.Changed("format") {
		f, err := config.ParseFormat(opts.format)
		if err != nil {
			return config.Config{}, fmt.Errorf("--format: %w", err)
		}
		cfg.Format = f
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

func runCommands(cmd *cobra.Command, args []string, opts runOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	log := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)

	src := strings.Join(args, " ")
	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		src = string(data) + "\n" + src
	}

	c := craft.New(craft.WithPosition(cfg.Start), craft.WithFacing(cfg.Facing))
	ctx := interpreter.NewContext(c)
	ctx.Strict = cfg.Strict
	ctx.Log = log
	ctx.MaxSteps = opts.maxSteps
	if opts.trace {
		ctx.Trace = interpreter.NewTracer(cmd.ErrOrStderr())
	}

	log.Debug().Stringer("start", cfg.Start).Stringer("facing", cfg.Facing).Bool("strict", cfg.Strict).Msg("starting batch")
	if err := interpreter.Run(ctx, src); err != nil {
		return fmt.Errorf("run commands: %w", err)
	}
	if len(ctx.Skipped) > 0 {
		log.Warn().Int("count", len(ctx.Skipped)).Msg("unknown symbols skipped")
	}

	return output.Write(cmd.OutOrStdout(), cfg.Format, output.NewReport(c, ctx.Skipped))
}
