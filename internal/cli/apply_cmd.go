package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benedict2310/deployseo/internal/config"
	"github.com/benedict2310/deployseo/internal/envmode"
	"github.com/benedict2310/deployseo/internal/output"
	"github.com/benedict2310/deployseo/internal/seo"
)

type applyReport struct {
	classifyReport `yaml:",inline"`
	ConfigFile     string     `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	Root           string     `json:"root" yaml:"root"`
	Result         seo.Result `json:"result" yaml:"result"`
}

func newApplyCmd(flags *globalFlags, env envmode.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Write robots.txt and the production marker for the detected mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, flags, env)
		},
	}
}

func runApply(cmd *cobra.Command, flags *globalFlags, env envmode.Env) error {
	format, err := output.ParseFormat(flags.output)
	if err != nil {
		return usageError(err)
	}
	resolved, err := resolveEnv(flags, env)
	if err != nil {
		return usageError(err)
	}
	cfg, configFile, err := config.Load(flags.config, flags.root, resolved)
	if err != nil {
		return usageError(err)
	}
	if level := strings.TrimSpace(flags.logLevel); level != "" {
		cfg.LogLevel = level
	}
	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return usageError(err)
	}

	report := applyReport{
		classifyReport: classifyReport{
			Mode:      envmode.Classify(resolved),
			Variables: envmode.Describe(resolved),
		},
		ConfigFile: configFile,
		Root:       cfg.Root,
	}

	var progress io.Writer = io.Discard
	if !format.Structured() {
		out := cmd.OutOrStdout()
		progress = out
		fmt.Fprintln(out, "Running deployment automation...")
		if err := writeEnvironment(out, report.classifyReport); err != nil {
			return err
		}
	}

	logger.Debug("applying seo state", "root", cfg.Root, "config_file", configFile, "mode", string(report.Mode))
	result, err := seo.Apply(cmd.Context(), report.Mode, seo.NewDirFS(cfg.Root), seo.Options{
		RobotsPath: cfg.RobotsPath,
		MarkerPath: cfg.MarkerPath,
		SitemapURL: cfg.SitemapURL,
		Out:        progress,
		Logger:     logger,
	})
	if err != nil {
		return failureError(err)
	}
	report.Result = result

	if format.Structured() {
		return output.WriteStructured(cmd.OutOrStdout(), format, report)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deployment automation complete!")
	return nil
}
