package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/walker/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config",
	Long: `Prints the config the walker would run with, after the search path
and command line overrides are applied.

Search order:
  --config <path>
  ~/.walker/config.yaml
  ./configs/walker.yaml
  built-in defaults

With --defaults the commented built-in config is printed instead, which is
a good starting point for a config file:

  walker config --defaults > ~/.walker/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", configSource(src))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	fmt.Printf("# source: %s\n", configSource(src))
	fmt.Print(string(out))
	return nil
}
