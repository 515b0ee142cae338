package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/openmw-tools/openmw-cfg/internal/config"
	"github.com/openmw-tools/openmw-cfg/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload and re-validate the chain whenever one of its files changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}
		fmt.Printf("watching %d configuration files (ctrl-c to stop)\n", 1+len(cfg.SubConfigs()))

		watcher, err := watch.NewWatcher(chainFiles(cfg), func(path string) {
			reloaded, err := loadConfiguration()
			if err != nil {
				log.Error().Err(err).Str("changed", path).Msg("chain no longer loads")
				return
			}
			log.Info().
				Str("changed", path).
				Int("settings", len(reloaded.Settings())).
				Msg("chain reloaded")
		})
		if err != nil {
			return err
		}
		watcher.Start()
		defer watcher.Stop()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		return nil
	},
}

// chainFiles lists every config file of the loaded chain, root included.
func chainFiles(cfg *config.Configuration) []string {
	files := []string{cfg.RootConfig()}
	for _, sub := range cfg.SubConfigs() {
		files = append(files, filepath.Join(sub.Parsed(), config.ConfigFileName))
	}
	return files
}
