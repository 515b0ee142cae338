package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmw-tools/openmw-cfg/internal/config"
)

var setCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set one value and rewrite the user configuration",
	Long: `Set the effective value of one setting and save the user config.
KEY is a singleton directive (data-local, resources, user-data, encoding)
or a fallback game setting key; game setting values are typed by their
literal text, e.g. '128,64,255' for a color or '1.5' for a float.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "data-local":
			cfg.SetDataLocal(value)
		case "resources":
			cfg.SetResources(value)
		case "user-data", "userdata":
			cfg.SetUserData(value)
		case "encoding":
			enc, ok := config.ParseEncoding(value)
			if !ok {
				return fmt.Errorf("invalid encoding %q (want win1250, win1251 or win1252)", value)
			}
			cfg.SetEncoding(enc)
		default:
			cfg.SetGameSetting(key, value)
		}
		return cfg.Save()
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a setting and rewrite the user configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		key := args[0]
		var removed bool
		switch key {
		case "data-local":
			removed = cfg.ClearCategory(config.KindDataLocal) > 0
		case "resources":
			removed = cfg.ClearCategory(config.KindResources) > 0
		case "user-data", "userdata":
			removed = cfg.ClearCategory(config.KindUserData) > 0
		case "encoding":
			removed = cfg.ClearCategory(config.KindEncoding) > 0
		default:
			removed = cfg.RemoveGameSetting(key)
		}
		if !removed {
			return fmt.Errorf("%q is not set anywhere in the chain", key)
		}
		return cfg.Save()
	},
}
