package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add CATEGORY NAME",
	Short: "Append a content, archive or groundcover entry and save",
	Long: `Append an entry to one of the name lists and rewrite the user
configuration. CATEGORY is content, archive or groundcover. Adding a name
already present anywhere in the chain is an error.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		category, name := args[0], args[1]
		switch category {
		case "content":
			err = cfg.AddContentFile(name)
		case "archive":
			err = cfg.AddFallbackArchive(name)
		case "groundcover":
			err = cfg.AddGroundcover(name)
		default:
			return fmt.Errorf("unknown category %q (want content, archive or groundcover)", category)
		}
		if err != nil {
			return err
		}
		return cfg.Save()
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove CATEGORY NAME",
	Short: "Remove a content, archive or groundcover entry and save",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		category, name := args[0], args[1]
		var removed bool
		switch category {
		case "content":
			removed = cfg.RemoveContentFile(name)
		case "archive":
			removed = cfg.RemoveFallbackArchive(name)
		case "groundcover":
			removed = cfg.RemoveGroundcover(name)
		default:
			return fmt.Errorf("unknown category %q (want content, archive or groundcover)", category)
		}
		if !removed {
			return fmt.Errorf("%s %q is not in the configuration", category, name)
		}
		return cfg.Save()
	},
}
