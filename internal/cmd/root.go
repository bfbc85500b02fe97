// Package cmd wires the flowdeck CLI: the TUI page, one-shot listing and
// deletion, and the local demo server.
package cmd

import (
	"strings"

	"flowdeck/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "flowdeck",
	Short: "Terminal dashboard for a remote flow service",
	Long: `Flowdeck connects to a flow service, lists the currently running
flow instances, and lets you delete one after confirmation.

Running flowdeck without a subcommand opens the interactive page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand opens the page.
		return runWatch(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/flowdeck/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "flow service base URL")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/flowdeck")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("FLOWDECK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., FLOWDECK_SERVER_URL for server.url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
