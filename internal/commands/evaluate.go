// internal/commands/evaluate.go
package screeneval

import (
	"github.com/screenlab/screeneval/internal/eval"
	"github.com/spf13/cobra"
)

// evaluateCmd represents the evaluate command.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the screening prompt against every labeled case and report accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return eval.RunEvaluateCommand(GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
