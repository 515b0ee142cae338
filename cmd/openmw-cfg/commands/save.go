package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/openmw-tools/openmw-cfg/internal/config"
)

var (
	saveTarget string
	saveDiff   bool
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite a configuration file from the loaded chain",
	Long: `Rewrite the user configuration file (the last file of the chain),
preserving comments, ordering and unresolved values. With --target, rewrite
the openmw.cfg of a named sub-configuration directory instead; the
directory must already be part of the chain. With --diff, print what would
change without writing anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		target := cfg.UserConfigFile()
		if saveTarget != "" {
			dir, err := filepath.Abs(saveTarget)
			if err != nil {
				return err
			}
			target = filepath.Join(dir, config.ConfigFileName)
		}

		if saveDiff {
			return printDiff(cfg, target)
		}
		if saveTarget != "" {
			return cfg.SaveSubConfig(filepath.Dir(target))
		}
		return cfg.Save()
	},
}

func printDiff(cfg *config.Configuration, target string) error {
	current, err := os.ReadFile(target)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	rendered := cfg.RenderFile(target)

	if string(current) == rendered {
		fmt.Printf("%s is up to date\n", target)
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(current), rendered, false)
	fmt.Print(dmp.DiffPrettyText(diffs))
	return nil
}

func init() {
	saveCmd.Flags().StringVar(&saveTarget, "target", "", "Sub-configuration directory to rewrite instead of the user config")
	saveCmd.Flags().BoolVar(&saveDiff, "diff", false, "Print the pending changes instead of writing")
}
