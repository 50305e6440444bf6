// internal/commands/root.go
package screeneval

import (
	"fmt"
	"os"
	"strconv"

	"github.com/screenlab/screeneval/internal/appconfig"
	"github.com/screenlab/screeneval/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screeneval",
	Short: "screeneval — measures an AML screening prompt against labeled watchlist cases",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// If the user did NOT set a flag, copy the config value into the
		// flag so both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}
		for _, name := range []string{"cases", "mismatchLog", "model", "baseURL", "logFile"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		if !cmd.Flags().Changed("timeout") {
			_ = cmd.Flags().Set("timeout", strconv.Itoa(viper.GetInt("timeout")))
		}
		if !cmd.Flags().Changed("temperature") {
			_ = cmd.Flags().Set("temperature", strconv.FormatFloat(viper.GetFloat64("temperature"), 'f', -1, 64))
		}

		// Materialize the fully merged configuration (flags > config >
		// defaults) into a stable snapshot for the subcommands.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging of service traffic")
	rootCmd.PersistentFlags().String("cases", "", "path to the labeled case table (CSV)")
	rootCmd.PersistentFlags().String("mismatchLog", "", "path of the mismatch log written each run")
	rootCmd.PersistentFlags().String("model", "", "model identifier sent to the service")
	rootCmd.PersistentFlags().String("baseURL", "", "chat-completions endpoint root")
	rootCmd.PersistentFlags().Float64("temperature", 0.1, "sampling temperature for the service")
	rootCmd.PersistentFlags().Int("timeout", 0, "seconds to wait per service request (0 = default)")
	rootCmd.PersistentFlags().String("logFile", "", "path to the application log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("cases", rootCmd.PersistentFlags().Lookup("cases"))
	_ = viper.BindPFlag("mismatchLog", rootCmd.PersistentFlags().Lookup("mismatchLog"))
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("baseURL", rootCmd.PersistentFlags().Lookup("baseURL"))
	_ = viper.BindPFlag("temperature", rootCmd.PersistentFlags().Lookup("temperature"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
