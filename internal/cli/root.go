// Package cli wires the modelctx commands: fetchers, local scan and the
// combined auto report.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"modelctx/internal/common/fsutil"
	"modelctx/internal/config"
	"modelctx/internal/hub"
	"modelctx/internal/lmstudio"
)

// ErrHandled marks a failure whose message was already printed by the
// command itself; main exits 1 without printing anything further.
var ErrHandled = errors.New("handled")

// Options carries the per-run settings shared by every command.
type Options struct {
	HubURL    string
	Timeout   time.Duration
	ModelDirs []string // extra scan dirs on top of the LM Studio defaults
	LogLevel  string

	cfgPath string
	log     zerolog.Logger
}

func defaultOptions() *Options {
	return &Options{
		HubURL:   hub.DefaultBaseURL,
		Timeout:  hub.DefaultTimeout,
		LogLevel: "warn",
	}
}

// hubClient builds the hub client for this run.
func (o *Options) hubClient() *hub.Client {
	return hub.New(o.HubURL, o.Timeout, o.log)
}

// scanDirs is the LM Studio defaults plus any extra configured directories.
func (o *Options) scanDirs() []string {
	return append(lmstudio.DefaultDirs(), fsutil.ExpandAll(o.ModelDirs)...)
}

// BuildRootCmd constructs the command tree with default options.
func BuildRootCmd() *cobra.Command { return buildRootCmdWith(defaultOptions()) }

func buildRootCmdWith(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:           "modelctx",
		Short:         "Fetch model context-window metadata from Hugging Face and LM Studio",
		SilenceUsage:  true,
		SilenceErrors: true,
		// unknown subcommands land here as plain args
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s\n\n", args[0])
			}
			_ = cmd.Help()
			return ErrHandled
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgPath, "config", "", "Optional config file (.yaml, .json or .toml)")
	pf.StringVar(&opts.HubURL, "hub-url", opts.HubURL, "Model hub base URL")
	pf.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "Per-request HTTP timeout")
	pf.StringSliceVar(&opts.ModelDirs, "model-dirs", nil, "Extra local model directories to scan")
	pf.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level: debug|info|warn|error")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := opts.loadConfigFile(cmd); err != nil {
			return err
		}
		opts.log = newLogger(opts.LogLevel)
		return nil
	}

	requireModelID := func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("model_id required")
		}
		return nil
	}

	root.AddCommand(&cobra.Command{
		Use:     "huggingface <model_id>",
		Short:   "Fetch a model's config.json and print its context fields",
		Example: "  modelctx huggingface mlx-community/Qwen3-30B-A3B-Instruct-MLX",
		Args:    requireModelID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHuggingface(cmd.OutOrStdout(), opts, args[0])
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "hub <model_id>",
		Short: "Fetch model metadata from the hub API",
		Args:  requireModelID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHub(cmd.OutOrStdout(), opts, args[0])
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "lmstudio",
		Short: "List models installed by LM Studio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLMStudio(cmd.OutOrStdout(), opts)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "context <model_id>",
		Short: "Print just the context-window record as JSON",
		Args:  requireModelID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContext(cmd.OutOrStdout(), opts, args[0])
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "auto <model_id>",
		Short: "Try all sources to find the context window",
		Args:  requireModelID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuto(cmd.OutOrStdout(), opts, args[0])
		},
	})

	return root
}

// loadConfigFile folds file values under the flags: a flag set on the
// command line always wins over the file, the file wins over defaults.
func (o *Options) loadConfigFile(cmd *cobra.Command) error {
	if o.cfgPath == "" {
		return nil
	}
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Root().PersistentFlags()
	if cfg.HubURL != "" && !flags.Changed("hub-url") {
		o.HubURL = cfg.HubURL
	}
	if cfg.TimeoutMS > 0 && !flags.Changed("timeout") {
		o.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	if len(cfg.ModelDirs) > 0 && !flags.Changed("model-dirs") {
		o.ModelDirs = cfg.ModelDirs
	}
	if cfg.LogLevel != "" && !flags.Changed("log-level") {
		o.LogLevel = cfg.LogLevel
	}
	return nil
}
