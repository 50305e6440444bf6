// internal/commands/show_config.go
package screeneval

import (
	"github.com/screenlab/screeneval/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Cases:       viper.GetString("cases"),
			MismatchLog: viper.GetString("mismatchLog"),
			Model:       viper.GetString("model"),
			BaseURL:     viper.GetString("baseURL"),
			Timeout:     viper.GetInt("timeout"),
			Debug:       viper.GetBool("debug"),
			LogFile:     viper.GetString("logFile"),
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig(), fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
