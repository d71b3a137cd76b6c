package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/benedict2310/deployseo/internal/envmode"
	"github.com/benedict2310/deployseo/internal/output"
)

type classifyReport struct {
	Mode      envmode.Mode       `json:"mode" yaml:"mode"`
	Variables []envmode.Variable `json:"variables" yaml:"variables"`
}

func newClassifyCmd(flags *globalFlags, env envmode.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Print the detected deployment mode without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(flags.output)
			if err != nil {
				return usageError(err)
			}
			resolved, err := resolveEnv(flags, env)
			if err != nil {
				return usageError(err)
			}
			report := classifyReport{
				Mode:      envmode.Classify(resolved),
				Variables: envmode.Describe(resolved),
			}
			if format.Structured() {
				return output.WriteStructured(cmd.OutOrStdout(), format, report)
			}
			return writeEnvironment(cmd.OutOrStdout(), report)
		},
	}
}

func resolveEnv(flags *globalFlags, env envmode.Env) (envmode.Env, error) {
	return envmode.LoadEnvFile(flags.envFile, env)
}

func writeEnvironment(w io.Writer, report classifyReport) error {
	fmt.Fprintf(w, "Environment: %s\n", report.Mode)
	fmt.Fprintln(w, "Environment variables:")
	rows := make([][]string, 0, len(report.Variables))
	for _, v := range report.Variables {
		rows = append(rows, []string{v.Name + ":", v.Value})
	}
	return output.WriteTable(w, "  - ", nil, rows)
}
