package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Load the configuration chain and report whether it is valid",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		fmt.Printf("%s: ok\n", cfg.RootConfig())
		fmt.Printf("  chain length:      %d\n", 1+len(cfg.SubConfigs()))
		fmt.Printf("  data directories:  %d\n", len(cfg.DataDirectories()))
		fmt.Printf("  content files:     %d\n", len(cfg.ContentFiles()))
		fmt.Printf("  fallback archives: %d\n", len(cfg.FallbackArchives()))
		fmt.Printf("  game settings:     %d\n", len(cfg.EffectiveGameSettings()))
		if !cfg.UserConfigWritable() {
			fmt.Printf("  note: user config %s is not writable\n", cfg.UserConfigFile())
		}
		return nil
	},
}
