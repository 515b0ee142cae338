package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openmw-tools/openmw-cfg/internal/config"
)

var showFormat string

// effectiveView is the flattened configuration as exported to json/yaml.
type effectiveView struct {
	RootConfig       string            `json:"root_config" yaml:"root_config"`
	UserConfig       string            `json:"user_config" yaml:"user_config"`
	SubConfigs       []string          `json:"sub_configs,omitempty" yaml:"sub_configs,omitempty"`
	Resources        string            `json:"resources,omitempty" yaml:"resources,omitempty"`
	UserData         string            `json:"user_data,omitempty" yaml:"user_data,omitempty"`
	DataLocal        string            `json:"data_local,omitempty" yaml:"data_local,omitempty"`
	Encoding         string            `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	DataDirectories  []string          `json:"data_directories,omitempty" yaml:"data_directories,omitempty"`
	ContentFiles     []string          `json:"content_files,omitempty" yaml:"content_files,omitempty"`
	FallbackArchives []string          `json:"fallback_archives,omitempty" yaml:"fallback_archives,omitempty"`
	Groundcover      []string          `json:"groundcover,omitempty" yaml:"groundcover,omitempty"`
	GameSettings     map[string]string `json:"game_settings,omitempty" yaml:"game_settings,omitempty"`
	Generic          map[string]string `json:"generic,omitempty" yaml:"generic,omitempty"`
}

func newEffectiveView(cfg *config.Configuration) effectiveView {
	view := effectiveView{
		RootConfig:       cfg.RootConfig(),
		UserConfig:       cfg.UserConfigFile(),
		DataDirectories:  cfg.DataDirectories(),
		ContentFiles:     cfg.ContentFiles(),
		FallbackArchives: cfg.FallbackArchives(),
		Groundcover:      cfg.Groundcover(),
	}
	for _, sub := range cfg.SubConfigs() {
		view.SubConfigs = append(view.SubConfigs, sub.Parsed())
	}
	if res := cfg.Resources(); res != nil {
		view.Resources = res.Parsed()
	}
	if ud := cfg.UserData(); ud != nil {
		view.UserData = ud.Parsed()
	}
	if dl := cfg.DataLocal(); dl != nil {
		view.DataLocal = dl.Parsed()
	}
	if enc := cfg.Encoding(); enc != nil {
		view.Encoding = enc.Value().String()
	}
	if settings := cfg.EffectiveGameSettings(); len(settings) > 0 {
		view.GameSettings = make(map[string]string, len(settings))
		for _, gs := range settings {
			view.GameSettings[gs.Key()] = gs.Value()
		}
	}
	if generics := cfg.GenericSettings(); len(generics) > 0 {
		view.Generic = make(map[string]string, len(generics))
		for _, g := range generics {
			view.Generic[g.Key()] = g.Value()
		}
	}
	return view
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		switch showFormat {
		case "text":
			for _, line := range cfg.EffectiveLines() {
				fmt.Println(line)
			}
			return nil
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(newEffectiveView(cfg))
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(newEffectiveView(cfg))
		default:
			return fmt.Errorf("unknown format %q (want text, json or yaml)", showFormat)
		}
	},
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "text", "Output format (text|json|yaml)")
}
