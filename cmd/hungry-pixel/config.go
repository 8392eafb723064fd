package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hungry-pixel/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML, after the
search path and flag overrides are applied. The source is printed to
stderr.

Search order:
  --config <path>
  ~/.hungry-pixel/config.yaml
  <resources>/config.yaml
  built-in defaults

With --defaults the built-in file is printed as shipped, comments included,
as a starting point for ~/.hungry-pixel/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagDefaults {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}
		cfg, source, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", source)
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in configuration file")
}
