package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one effective value",
	Long: `Print the effective value of one setting. KEY is a singleton
directive (data-local, resources, user-data, encoding), a fallback game
setting key, or an unrecognized pass-through key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		key := args[0]
		switch key {
		case "data-local":
			if dl := cfg.DataLocal(); dl != nil {
				fmt.Println(dl.Parsed())
				return nil
			}
		case "resources":
			if res := cfg.Resources(); res != nil {
				fmt.Println(res.Parsed())
				return nil
			}
		case "user-data", "userdata":
			if ud := cfg.UserData(); ud != nil {
				fmt.Println(ud.Parsed())
				return nil
			}
		case "encoding":
			if enc := cfg.Encoding(); enc != nil {
				fmt.Println(enc.Value())
				return nil
			}
		default:
			if gs := cfg.GameSetting(key); gs != nil {
				fmt.Println(gs.Value())
				return nil
			}
			if v, ok := cfg.Generic(key); ok {
				fmt.Println(v)
				return nil
			}
		}
		return fmt.Errorf("%q is not set anywhere in the chain", key)
	},
}
