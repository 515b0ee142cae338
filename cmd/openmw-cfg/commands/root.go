// Package commands provides the CLI commands for openmw-cfg.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmw-tools/openmw-cfg/internal/config"
	"github.com/openmw-tools/openmw-cfg/internal/logging"
	"github.com/openmw-tools/openmw-cfg/internal/paths"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "openmw-cfg",
	Short: "openmw-cfg - inspect and edit OpenMW configuration chains",
	Long: `openmw-cfg resolves a chain of openmw.cfg files into one merged
configuration, shows the effective values the engine would see, and can
edit and rewrite the user configuration file without destroying comments
or ordering.

Run 'openmw-cfg show' to print the resolved configuration, or
'openmw-cfg lint' to verify that a chain loads cleanly.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Pretty: true,
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "cfg", "", "Path to an openmw.cfg file or its directory (default: the platform config directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "Log level (DEBUG|INFO|WARN|ERROR)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("openmw-cfg %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newResolver() *config.Resolver {
	return config.NewResolver(config.DirProviders{
		UserConfig: paths.DefaultConfigDir,
		UserData:   paths.DefaultUserDataDir,
	})
}

// loadConfiguration resolves the chain rooted at --cfg, or at the platform
// default config directory when the flag is unset.
func loadConfiguration() (*config.Configuration, error) {
	target := cfgPath
	if target == "" {
		target = paths.DefaultConfigDir()
	}
	return config.Load(target, newResolver())
}
