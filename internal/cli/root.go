package cli

import (
	"github.com/spf13/cobra"

	"github.com/benedict2310/deployseo/internal/envmode"
)

type globalFlags struct {
	root     string
	config   string
	envFile  string
	logLevel string
	output   string
}

// NewRootCmd builds the deployseo command tree. env is the environment the
// commands classify; callers pass a snapshot of the process environment.
func NewRootCmd(version string, env envmode.Env) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "deployseo",
		Short: "Set robots.txt and the production marker for the current deployment",
		Long: "deployseo classifies the environment as Production or Development from\n" +
			"VERCEL, NETLIFY, NODE_ENV, GITHUB_ACTIONS and CI, then rewrites\n" +
			"public/robots.txt and creates or removes src/.production-env.\n" +
			"Running it without a subcommand is the same as running apply.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, flags, env)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.root, "root", "", "Project root containing public/ and src/ (default \".\")")
	pf.StringVar(&flags.config, "config", "", "Path to a deployseo config file")
	pf.StringVar(&flags.envFile, "env-file", "", "Dotenv file merged beneath the process environment")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level for stderr logs (debug|info|warn|error)")
	pf.StringVarP(&flags.output, "output", "o", "text", "Output format (text|json|yaml)")

	cmd.AddCommand(newApplyCmd(flags, env))
	cmd.AddCommand(newClassifyCmd(flags, env))
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}
