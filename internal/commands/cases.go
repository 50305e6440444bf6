// internal/commands/cases.go
package screeneval

import (
	"github.com/screenlab/screeneval/internal/eval"
	"github.com/spf13/cobra"
)

// casesCmd previews the case table without touching the service.
var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Load and preview the labeled case table without calling the service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return eval.RunCasesCommand(GetConfig(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(casesCmd)
}
